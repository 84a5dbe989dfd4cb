package qualify

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Members decodes the raw data a Watcher emits into the members of an
// AllowList.
type Members[T any] func(raw []byte) ([]T, error)

// JSONMembers decodes a JSON array of T.
func JSONMembers[T any]() Members[T] {
	return func(raw []byte) ([]T, error) {
		var members []T
		if err := json.Unmarshal(raw, &members); err != nil {
			return nil, fmt.Errorf("invalid JSON member list: %w", err)
		}
		return members, nil
	}
}

// YAMLMembers decodes a YAML sequence of T. JSON arrays are accepted too.
func YAMLMembers[T any]() Members[T] {
	return func(raw []byte) ([]T, error) {
		var members []T
		if err := yaml.Unmarshal(raw, &members); err != nil {
			return nil, fmt.Errorf("invalid YAML member list: %w", err)
		}
		return members, nil
	}
}

// LineMembers reads one member per line. Surrounding whitespace is trimmed;
// blank lines and lines starting with '#' are skipped.
func LineMembers(raw []byte) ([]string, error) {
	var members []string
	for line := range bytes.Lines(raw) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		members = append(members, string(line))
	}
	return members, nil
}
