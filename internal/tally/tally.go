package tally

import "github.com/vinser/marsrover/internal/navigator"

// Tally counts robot outcomes for the current session.
type Tally struct {
	delivered  int
	lost       int
	saved      int
	lostStreak int
}

func New() *Tally {
	return &Tally{}
}

// Record adds the outcome of one robot. saved reports whether a scent kept
// the robot on the plateau at least once.
func (t *Tally) Record(res navigator.Result, saved bool) {
	if res.Lost {
		t.lost++
		t.lostStreak++
		return
	}
	t.delivered++
	t.lostStreak = 0
	if saved {
		t.saved++
	}
}

func (t *Tally) Delivered() int {
	return t.delivered
}

func (t *Tally) Lost() int {
	return t.lost
}

// Saved returns how many delivered robots owe their survival to a scent.
func (t *Tally) Saved() int {
	return t.saved
}

func (t *Tally) Robots() int {
	return t.delivered + t.lost
}

// LostStreak returns the number of robots lost in a row, most recent first.
func (t *Tally) LostStreak() int {
	return t.lostStreak
}
