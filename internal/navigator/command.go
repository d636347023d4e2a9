package navigator

import "fmt"

// Command is a single robot instruction.
type Command rune

const (
	Left    Command = 'L'
	Right   Command = 'R'
	Forward Command = 'F'
)

// Valid reports whether c is a known instruction.
func (c Command) Valid() bool {
	switch c {
	case Left, Right, Forward:
		return true
	}
	return false
}

func (c Command) String() string {
	return string(c)
}

// ParseCommands validates a whole command string up front, so a bad line can
// be refused before the robot moves. Navigate stops at the first bad command
// instead, after applying the ones before it.
func ParseCommands(s string) ([]Command, error) {
	cmds := make([]Command, 0, len(s))
	for i, r := range s {
		c := Command(r)
		if !c.Valid() {
			return nil, invalidCommand(r, i)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

func invalidCommand(r rune, offset int) error {
	return fmt.Errorf("%w %q at offset %d", ErrInvalidCommand, r, offset)
}
