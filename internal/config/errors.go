package config

import "errors"

// Validation errors returned by Config.Validate().
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoSeedURI is returned when no seed URI was supplied.
	ErrNoSeedURI = errors.New("no seed URI specified")

	// ErrInvalidThreadMax is returned when ThreadMax is negative.
	// Zero means "unbounded" and is valid; negative is not.
	ErrInvalidThreadMax = errors.New("invalid thread limit: must be zero (unbounded) or positive")
)
