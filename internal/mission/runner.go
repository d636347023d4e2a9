package mission

import (
	"bufio"
	"io"

	"github.com/google/uuid"
	"github.com/vinser/marsrover/internal/navigator"
	"github.com/vinser/marsrover/internal/rover"
)

// Outcome is what happened to one robot of a script.
type Outcome struct {
	ID       string
	Line     int
	Commands string
	Result   navigator.Result
}

// Report collects the outcomes of a script in robot order.
type Report struct {
	MaxX, MaxY int
	Outcomes   []Outcome
	Scents     []rover.Position
}

// Lost returns the number of lost robots.
func (r *Report) Lost() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Result.Lost {
			n++
		}
	}
	return n
}

// Write prints one line per robot: "x y O", with " LOST" appended for lost
// robots.
func (r *Report) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, o := range r.Outcomes {
		if _, err := bw.WriteString(o.Result.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Execute runs every robot of s, in order, on one navigator so that scents
// carry over from robot to robot. The first robot that fails stops the run;
// the report then holds the robots completed so far.
func Execute(s *Script) (*Report, error) {
	if s == nil || s.Plateau == nil {
		return nil, ErrNoScript
	}
	nav, err := navigator.New(s.Plateau.MaxX, s.Plateau.MaxY)
	if err != nil {
		return nil, err
	}

	rep := &Report{MaxX: s.Plateau.MaxX, MaxY: s.Plateau.MaxY}
	for i, r := range s.Robots {
		if err := nav.Setup(r.X, r.Y, r.Heading); err != nil {
			rep.Scents = nav.Scents()
			return rep, &RobotError{Line: r.Pos.Line, Index: i, Err: err}
		}
		res, err := nav.Navigate(r.Commands)
		if err != nil {
			rep.Scents = nav.Scents()
			return rep, &RobotError{Line: r.Pos.Line, Index: i, Err: err}
		}
		rep.Outcomes = append(rep.Outcomes, Outcome{
			ID:       uuid.NewString(),
			Line:     r.Pos.Line,
			Commands: r.Commands,
			Result:   res,
		})
	}
	rep.Scents = nav.Scents()
	return rep, nil
}
