package rover

import (
	"fmt"
	"strconv"
)

// Orientation is a cardinal heading.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

// quarterTurn is the bearing change of a single rotation, in degrees.
const quarterTurn = 90

// Bearing returns the heading in degrees clockwise from north.
func (o Orientation) Bearing() int {
	return int(o) * quarterTurn
}

// FromBearing converts degrees back to an Orientation.
// Only 0, 90, 180 and 270 are valid.
func FromBearing(deg int) (Orientation, error) {
	switch deg {
	case 0:
		return North, nil
	case 90:
		return East, nil
	case 180:
		return South, nil
	case 270:
		return West, nil
	}
	return North, fmt.Errorf("%w: bearing %d", ErrInvalidOrientationState, deg)
}

// String returns the compass letter.
func (o Orientation) String() string {
	switch o {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// ParseOrientation accepts exactly one of N, E, S or W.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return North, fmt.Errorf("%w: %q", ErrOrientationValue, s)
}

// OrientationOf parses a loosely typed heading token.
// Strings, byte slices and fmt.Stringer values are accepted; anything else
// is rejected with ErrOrientationType.
func OrientationOf(v any) (Orientation, error) {
	switch t := v.(type) {
	case string:
		return ParseOrientation(t)
	case []byte:
		return ParseOrientation(string(t))
	case fmt.Stringer:
		return ParseOrientation(t.String())
	}
	return North, fmt.Errorf("%w: got %T", ErrOrientationType, v)
}

// Position is a pose on the plateau.
type Position struct {
	X, Y        int
	Orientation Orientation
}

// Step returns the position one cell ahead, keeping the orientation.
func (p Position) Step() Position {
	switch p.Orientation {
	case North:
		p.Y++
	case South:
		p.Y--
	case East:
		p.X++
	case West:
		p.X--
	}
	return p
}

func (p Position) String() string {
	return strconv.Itoa(p.X) + " " + strconv.Itoa(p.Y) + " " + p.Orientation.String()
}
