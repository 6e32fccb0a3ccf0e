package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned by cell queries outside the board.
	ErrOutOfBounds = errors.New("engine: cell out of bounds")

	// ErrConfiguration marks a missing or malformed level descriptor field.
	ErrConfiguration = errors.New("engine: invalid level configuration")
)

// ConfigError describes which level field failed validation.
// It matches ErrConfiguration with errors.Is.
type ConfigError struct {
	Level int
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("engine: level %d: field %q: %v", e.Level+1, e.Field, e.Err)
	}
	return fmt.Sprintf("engine: level %d: field %q is missing or invalid", e.Level+1, e.Field)
}

func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrConfiguration, e.Err}
	}
	return []error{ErrConfiguration}
}
