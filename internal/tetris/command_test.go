package tetris

import (
	"errors"
	"testing"
)

func TestParseCommands(t *testing.T) {
	cmds, err := ParseCommands("ADSQEP")
	if err != nil {
		t.Fatalf("ParseCommands() failed: %v", err)
	}

	want := Commands{MoveLeft, MoveRight, SoftDrop, RotateCCW, RotateCW, Render}
	if len(cmds) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(cmds))
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d: got %v, want %v", i, cmds[i], want[i])
		}
	}

	if cmds.String() != "ADSQEP" {
		t.Errorf("String() = %q, want %q", cmds.String(), "ADSQEP")
	}
}

func TestParseCommandsInvalid(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		char  rune
	}{
		{"Z", 0, 'Z'},
		{"ADZ", 2, 'Z'},
		{"as", 0, 'a'},
		{"SS P", 2, ' '},
	}

	for _, tt := range tests {
		_, err := ParseCommands(tt.input)
		if !errors.Is(err, ErrInvalidCommand) {
			t.Errorf("ParseCommands(%q): expected ErrInvalidCommand, got %v", tt.input, err)
			continue
		}
		var ce *CommandError
		if !errors.As(err, &ce) {
			t.Errorf("ParseCommands(%q): expected *CommandError", tt.input)
			continue
		}
		if ce.Pos != tt.pos || ce.Char != tt.char {
			t.Errorf("ParseCommands(%q): got %q at %d, want %q at %d", tt.input, ce.Char, ce.Pos, tt.char, tt.pos)
		}
	}
}

func TestParseCommandsEmpty(t *testing.T) {
	cmds, err := ParseCommands("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmds) != 0 {
		t.Errorf("expected no commands, got %d", len(cmds))
	}
}

func TestCommanderIteratesOnce(t *testing.T) {
	c := NewCommander(Commands{SoftDrop, Render})

	if c.Len() != 2 || c.Remaining() != 2 {
		t.Fatalf("Len/Remaining = %d/%d, want 2/2", c.Len(), c.Remaining())
	}

	var got []Command
	for {
		cmd, ok := c.Next()
		if !ok {
			break
		}
		got = append(got, cmd)
	}

	if len(got) != 2 || got[0] != SoftDrop || got[1] != Render {
		t.Errorf("iteration = %v", got)
	}
	if c.Pos() != 2 || c.Remaining() != 0 {
		t.Errorf("Pos/Remaining = %d/%d, want 2/0", c.Pos(), c.Remaining())
	}
	if _, ok := c.Next(); ok {
		t.Error("Next() after exhaustion should return false")
	}
}
