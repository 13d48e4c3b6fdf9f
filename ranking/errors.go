package ranking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWeatherInput is returned when a weather field is NaN or infinite.
	ErrInvalidWeatherInput = errors.New("invalid weather input")
	// ErrInvalidPreferences is returned when a threshold is NaN or infinite.
	ErrInvalidPreferences = errors.New("invalid preferences")
)

// InputError names the field that failed validation. It unwraps to one of the
// sentinel errors above.
type InputError struct {
	Kind  error
	Field string
	Value float64
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %s is %v", e.Kind, e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return e.Kind
}
