// Package errs holds the error kinds shared by the application and the SDL
// host. It imports nothing from the module so either side can depend on it.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNoFont indicates no usable font file was found for the text renderer.
	ErrNoFont = errors.New("no usable font found")

	// ErrInvalidStyle indicates a style table in the config file could not be
	// turned into a list style.
	ErrInvalidStyle = errors.New("invalid style")

	// ErrInvalidConfig indicates a config value outside its accepted range.
	ErrInvalidConfig = errors.New("invalid config")
)

// InfrastructureError represents a failure of the environment the program
// runs in (SDL failed to start, a font is missing, the embedded locales are
// broken) rather than of anything the user did.
//
// These errors are fatal: the CLI logs them and exits non-zero.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("massrename: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("massrename: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
