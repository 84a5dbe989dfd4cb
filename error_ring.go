package qualify

import "sync"

// errorRing keeps the most recent build errors of a Reloadable, oldest first.
// A nil ring records nothing.
type errorRing struct {
	mu    sync.Mutex
	limit int
	buf   []error
}

// newErrorRing returns a ring retaining up to limit errors, or nil when
// limit is not positive.
func newErrorRing(limit int) *errorRing {
	if limit <= 0 {
		return nil
	}
	return &errorRing{limit: limit, buf: make([]error, 0, limit)}
}

func (r *errorRing) push(err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.buf) == r.limit {
		copy(r.buf, r.buf[1:])
		r.buf = r.buf[:len(r.buf)-1]
	}
	r.buf = append(r.buf, err)
}

func (r *errorRing) all() []error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.buf) == 0 {
		return nil
	}
	out := make([]error, len(r.buf))
	copy(out, r.buf)
	return out
}
