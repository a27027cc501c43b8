package sweep

import "errors"

// Sentinel errors returned by the sweep and the path parsers. They are wrapped with the
// location they refer to, use errors.Is to test for them.
var (
	// ErrNonFinite is returned when a curve evaluates to or has roots at NaN or infinity.
	// This is a precondition violation and the sweep is aborted.
	ErrNonFinite = errors.New("non-finite geometry")

	// ErrIterationLimit is returned when the sweep exceeds its iteration ceiling, which
	// happens for degenerate input that keeps splitting sections.
	ErrIterationLimit = errors.New("sweep iteration limit exceeded")

	// ErrUnsupported is returned for input the parsers do not handle.
	ErrUnsupported = errors.New("unsupported")
)
