package swipeaction

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidArgument indicates a tunable was given a value outside its
	// legal range. The configuration is left unchanged.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoMatchingAnimation is wrapped by the InvariantViolationError raised
	// when a completion arrives with no animation in flight.
	ErrNoMatchingAnimation = errors.New("animation completed with none in flight")
)

// InvariantViolationError reports a sequencing defect inside the engine or
// its integration, such as an animation completing that was never begun.
// It is raised with panic: continuing would corrupt the next batch.
type InvariantViolationError struct {
	Op  string // Operation that detected the violation (e.g., "complete_animation")
	Err error  // Underlying cause
}

func (e *InvariantViolationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("swipeaction: invariant violated in %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("swipeaction: invariant violated in %s", e.Op)
}

func (e *InvariantViolationError) Unwrap() error {
	return e.Err
}

// IsInvariantViolation checks if an error (or a recovered panic value that is
// an error) is an invariant violation.
func IsInvariantViolation(err error) bool {
	var iv *InvariantViolationError
	return errors.As(err, &iv)
}

// InfrastructureError represents a platform-level failure: an input device
// that cannot be opened, an icon that fails to rasterise, a texture upload or
// a settings file that cannot be read.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "open_device", "load_settings")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("swipeaction: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("swipeaction: %s", e.Op)
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

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
