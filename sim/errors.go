package sim

import "errors"

// Sentinel errors returned by the scheduling engine. Callers match them with
// errors.Is; the wrapped message carries the offending value.
var (
	// ErrOutOfBounds reports a request track outside [0, diskSize).
	ErrOutOfBounds = errors.New("request out of bounds")

	// ErrUnknownAlgorithm reports an algorithm name that does not normalize
	// to one of the supported policies.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrInvalidParameter reports a policy parameter outside its domain,
	// e.g. an N-Step SCAN batch size below 1.
	ErrInvalidParameter = errors.New("invalid parameter")
)
