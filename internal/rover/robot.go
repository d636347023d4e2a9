package rover

// Robot is a single rover on the plateau. It knows nothing about the grid
// bounds and will happily drive to negative or huge coordinates.
type Robot struct {
	x, y    int
	bearing int // degrees, one of 0, 90, 180, 270
	scents  ScentReader
}

// New places a robot at x, y facing heading. The scents are shared with the
// owner and only read by the robot; nil means no scents.
func New(x, y int, heading any, scents ScentReader) (*Robot, error) {
	if scents == nil {
		scents = (*Scents)(nil)
	}
	r := &Robot{x: x, y: y, scents: scents}
	if err := r.SetOrientation(heading); err != nil {
		return nil, err
	}
	return r, nil
}

// Orientation derives the compass heading from the internal bearing.
func (r *Robot) Orientation() (Orientation, error) {
	return FromBearing(r.bearing)
}

// SetOrientation sets the heading from a string-like token.
func (r *Robot) SetOrientation(v any) error {
	o, err := OrientationOf(v)
	if err != nil {
		return err
	}
	r.bearing = o.Bearing()
	return nil
}

// Position returns the current pose.
func (r *Robot) Position() (Position, error) {
	o, err := r.Orientation()
	if err != nil {
		return Position{}, err
	}
	return Position{X: r.x, Y: r.y, Orientation: o}, nil
}

// RotateLeft turns 90 degrees counterclockwise.
func (r *Robot) RotateLeft() {
	r.bearing = (r.bearing - quarterTurn + 360) % 360
}

// RotateRight turns 90 degrees clockwise.
func (r *Robot) RotateRight() {
	r.bearing = (r.bearing + quarterTurn) % 360
}

// MoveForward advances one cell along the current heading, unless the
// current pose is scented, in which case the robot stays put.
func (r *Robot) MoveForward() error {
	pos, err := r.Position()
	if err != nil {
		return err
	}
	if r.scents.Contains(pos) {
		return nil
	}
	next := pos.Step()
	r.x, r.y = next.X, next.Y
	return nil
}
