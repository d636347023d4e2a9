package mission

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a script that does not follow the mission format.
	ErrSyntax = errors.New("mission: syntax error")
	// ErrNoScript indicates Execute was given nothing to run.
	ErrNoScript = errors.New("mission: no script")
)

func wrapParseError(err error) error {
	return fmt.Errorf("%w: %v", ErrSyntax, err)
}

// RobotError reports a robot that could not be set up or driven.
type RobotError struct {
	Line  int // line of the robot's pose
	Index int // zero-based robot number
	Err   error
}

func (e *RobotError) Error() string {
	return fmt.Sprintf("mission: robot %d (line %d): %v", e.Index+1, e.Line, e.Err)
}

func (e *RobotError) Unwrap() error {
	return e.Err
}
