package rover

// ScentReader reports whether a pose is scented. Robots only read scents.
type ScentReader interface {
	Contains(p Position) bool
}

// Scents is the append-only record of poses robots were lost from.
// Marks are never removed or deduplicated. The zero value is ready to use.
type Scents struct {
	marks []Position
}

// NewScents returns an empty collection.
func NewScents() *Scents {
	return &Scents{}
}

// Add appends a mark.
func (s *Scents) Add(p Position) {
	s.marks = append(s.marks, p)
}

// Contains reports whether p exactly matches a mark.
func (s *Scents) Contains(p Position) bool {
	if s == nil {
		return false
	}
	for _, m := range s.marks {
		if m == p {
			return true
		}
	}
	return false
}

// Len returns the number of marks, duplicates included.
func (s *Scents) Len() int {
	if s == nil {
		return 0
	}
	return len(s.marks)
}

// All returns a copy of the marks in insertion order.
func (s *Scents) All() []Position {
	if s == nil {
		return nil
	}
	out := make([]Position, len(s.marks))
	copy(out, s.marks)
	return out
}
