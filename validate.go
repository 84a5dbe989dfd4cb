package qualify

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance.
var validate = validator.New()

// Valid qualifies structs (or pointers to structs) whose `validate` tags
// pass. Any validation failure, including a non-struct value, disqualifies.
//
// Example:
//
//	type Signup struct {
//	    Email string `validate:"required,email"`
//	    Age   int    `validate:"gte=18"`
//	}
//
//	eligible := qualify.Valid[Signup]().And(notBanned)
func Valid[T any]() Func[T] {
	return func(v T) bool {
		return validate.Struct(v) == nil
	}
}

// Matches qualifies values that pass a single validator tag, such as
// "email", "uuid4" or "min=1,max=10".
func Matches[T any](tag string) Func[T] {
	return func(v T) bool {
		return validate.Var(v, tag) == nil
	}
}
