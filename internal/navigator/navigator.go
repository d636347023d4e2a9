package navigator

import (
	"fmt"

	"github.com/vinser/marsrover/internal/rover"
)

// MaxGridBound is the largest accepted value for either grid bound.
const MaxGridBound = 50

// Result is the outcome of driving one robot through a command string.
// When Lost is set, Position is the last pose inside the grid.
type Result struct {
	Position rover.Position
	Lost     bool
}

func (r Result) String() string {
	if r.Lost {
		return r.Position.String() + " LOST"
	}
	return r.Position.String()
}

// Navigator drives robots, one at a time, over the grid [0, maxX] x [0, maxY]
// and remembers every pose a robot was lost from.
type Navigator struct {
	maxX, maxY int
	scents     *rover.Scents
	robot      *rover.Robot
	trail      []rover.Position
	suppressed int
}

// New returns a navigator with an empty scent record. Bounds above
// MaxGridBound are rejected; negative bounds are the caller's business.
func New(maxX, maxY int) (*Navigator, error) {
	if maxX > MaxGridBound || maxY > MaxGridBound {
		return nil, fmt.Errorf("%w: got %d x %d", ErrGridTooLarge, maxX, maxY)
	}
	return &Navigator{
		maxX:   maxX,
		maxY:   maxY,
		scents: rover.NewScents(),
	}, nil
}

// Bounds returns the inclusive maximum coordinates.
func (n *Navigator) Bounds() (maxX, maxY int) {
	return n.maxX, n.maxY
}

// InBounds reports whether x, y lies on the grid.
func (n *Navigator) InBounds(x, y int) bool {
	return x >= 0 && x <= n.maxX && y >= 0 && y <= n.maxY
}

// Setup replaces the active robot with a new one at x, y facing heading.
// The pose is not bounds checked. On error the previous robot stays active.
func (n *Navigator) Setup(x, y int, heading any) error {
	r, err := rover.New(x, y, heading, n.scents)
	if err != nil {
		return err
	}
	n.robot = r
	n.trail = n.trail[:0]
	n.suppressed = 0
	return nil
}

// Robot returns the active robot, or nil before the first Setup.
func (n *Navigator) Robot() *rover.Robot {
	return n.robot
}

// Scents returns a copy of the recorded scent marks in the order they were
// left.
func (n *Navigator) Scents() []rover.Position {
	return n.scents.All()
}

// Trail returns the poses the active robot went through during the last
// Navigate call, starting with the pose it began from.
func (n *Navigator) Trail() []rover.Position {
	out := make([]rover.Position, len(n.trail))
	copy(out, n.trail)
	return out
}

// Suppressed returns how many forward moves a scent cancelled during the
// last Navigate call.
func (n *Navigator) Suppressed() int {
	return n.suppressed
}

// Navigate applies commands to the active robot in order. It stops at the
// first command that takes the robot off the grid, marks the pose the robot
// had before that command and reports it as lost. An unknown command aborts
// the call with ErrInvalidCommand; commands before it have already been
// applied.
func (n *Navigator) Navigate(commands string) (Result, error) {
	if n.robot == nil {
		return Result{}, ErrNoRobot
	}
	pos, err := n.robot.Position()
	if err != nil {
		return Result{}, err
	}
	n.trail = append(n.trail[:0], pos)
	n.suppressed = 0

	for i, c := range commands {
		before := pos

		switch Command(c) {
		case Left:
			n.robot.RotateLeft()
		case Right:
			n.robot.RotateRight()
		case Forward:
			if n.scents.Contains(pos) {
				n.suppressed++
			}
			if err := n.robot.MoveForward(); err != nil {
				return Result{}, err
			}
		default:
			return Result{}, invalidCommand(c, i)
		}

		pos, err = n.robot.Position()
		if err != nil {
			return Result{}, err
		}
		if !n.InBounds(pos.X, pos.Y) {
			n.scents.Add(before)
			return Result{Position: before, Lost: true}, nil
		}
		n.trail = append(n.trail, pos)
	}
	return Result{Position: pos}, nil
}
