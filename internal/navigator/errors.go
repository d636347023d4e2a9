package navigator

import "errors"

var (
	// ErrGridTooLarge indicates a grid bound above MaxGridBound.
	ErrGridTooLarge = errors.New("navigator: maximum grid size is 50")
	// ErrInvalidCommand indicates a command other than L, R or F.
	ErrInvalidCommand = errors.New("navigator: invalid command")
	// ErrNoRobot indicates Navigate was called before a successful Setup.
	ErrNoRobot = errors.New("navigator: no robot has been set up")
)
