package rover

import "errors"

var (
	// ErrOrientationType indicates a heading token that is not string-like.
	ErrOrientationType = errors.New("rover: orientation must be a string")
	// ErrOrientationValue indicates a heading other than N, E, S or W.
	ErrOrientationValue = errors.New("rover: orientation must be one of N, E, S or W")
	// ErrInvalidOrientationState indicates a corrupted internal bearing.
	ErrInvalidOrientationState = errors.New("rover: cannot determine orientation")
)
