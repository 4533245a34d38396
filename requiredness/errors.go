package requiredness

import "errors"

var (
	// ErrInvalidContext is returned for a context that is neither a known
	// HTTP method nor "response".
	ErrInvalidContext = errors.New("invalid requiredness context")

	// ErrMalformedOverride is returned when requiredDetails has a shape that
	// is not a boolean, a known key, or a boolean leaf.
	ErrMalformedOverride = errors.New("malformed required override")
)
