package massrename

import "github.com/BrandonKowalski/massrename/internal/errs"

// Sentinel errors for common conditions. They are shared with the SDL host,
// so errors.Is matches them whichever side returned the error.
var (
	// ErrNoFont indicates no usable font file was found for the text renderer.
	ErrNoFont = errs.ErrNoFont

	// ErrInvalidStyle indicates a style table in the config file could not be
	// turned into a list style.
	ErrInvalidStyle = errs.ErrInvalidStyle

	// ErrInvalidConfig indicates a config value outside its accepted range.
	ErrInvalidConfig = errs.ErrInvalidConfig
)

// InfrastructureError represents a failure of the environment the program
// runs in rather than of anything the user did. The CLI logs these and exits
// non-zero.
type InfrastructureError = errs.InfrastructureError

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return errs.NewInfrastructureError(op, err)
}

// IsInfrastructureError checks if an error is an infrastructure error,
// including those raised by the SDL host.
func IsInfrastructureError(err error) bool {
	return errs.IsInfrastructureError(err)
}
