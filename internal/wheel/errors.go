package wheel

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel matched by errors.Is for every
// configuration validation failure.
var ErrInvalidConfig = errors.New("wheel: invalid configuration")

// InvalidConfigError reports which constraint a Config violated.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("wheel: invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
