package tetris

import "strings"

// Command is a single scripted instruction for the active piece.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	RotateCCW
	RotateCW
	Render
)

// String returns the string representation of a command.
func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case SoftDrop:
		return "SoftDrop"
	case RotateCCW:
		return "RotateCCW"
	case RotateCW:
		return "RotateCW"
	case Render:
		return "Render"
	default:
		return "Unknown"
	}
}

// Char returns the wire character for the command.
func (c Command) Char() rune {
	switch c {
	case MoveLeft:
		return 'A'
	case MoveRight:
		return 'D'
	case SoftDrop:
		return 'S'
	case RotateCCW:
		return 'Q'
	case RotateCW:
		return 'E'
	case Render:
		return 'P'
	default:
		return '?'
	}
}

// ParseCommand maps a wire character to a Command.
func ParseCommand(r rune) (Command, bool) {
	switch r {
	case 'A':
		return MoveLeft, true
	case 'D':
		return MoveRight, true
	case 'S':
		return SoftDrop, true
	case 'Q':
		return RotateCCW, true
	case 'E':
		return RotateCW, true
	case 'P':
		return Render, true
	default:
		return 0, false
	}
}

// Commands is an ordered command sequence.
type Commands []Command

// ParseCommands converts a command string into Commands.
// The first unrecognized character yields a *CommandError.
func ParseCommands(s string) (Commands, error) {
	cmds := make(Commands, 0, len(s))
	for i, r := range s {
		c, ok := ParseCommand(r)
		if !ok {
			return nil, &CommandError{Pos: i, Char: r}
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// String returns the wire form of the sequence.
func (cs Commands) String() string {
	var sb strings.Builder
	sb.Grow(len(cs))
	for _, c := range cs {
		sb.WriteRune(c.Char())
	}
	return sb.String()
}

// Commander walks a command sequence once. Build a new Commander to replay.
type Commander struct {
	commands Commands
	pos      int
}

// NewCommander creates a commander positioned at the first command.
func NewCommander(cmds Commands) *Commander {
	return &Commander{commands: cmds}
}

// Next returns the next command and advances the cursor.
// Returns false once the sequence is exhausted.
func (c *Commander) Next() (Command, bool) {
	if c.pos >= len(c.commands) {
		return 0, false
	}
	cmd := c.commands[c.pos]
	c.pos++
	return cmd, true
}

// Pos returns the index of the next command to be returned.
func (c *Commander) Pos() int {
	return c.pos
}

// Len returns the total number of commands.
func (c *Commander) Len() int {
	return len(c.commands)
}

// Remaining returns the number of commands not yet consumed.
func (c *Commander) Remaining() int {
	return len(c.commands) - c.pos
}
