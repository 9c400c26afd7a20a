package tetris

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCommand is returned when a command string contains a
	// character outside the command alphabet.
	ErrInvalidCommand = errors.New("tetris: invalid command")

	// ErrOutOfBounds signals a field access outside its extent.
	// The engine never triggers it; seeing it means a caller bug.
	ErrOutOfBounds = errors.New("tetris: coordinate out of bounds")

	// ErrSpawnImpossible is returned when a shape does not fit even on an
	// empty field.
	ErrSpawnImpossible = errors.New("tetris: spawn impossible")

	// ErrInvalidShape is returned for shapes without exactly one pivot cell
	// or with duplicate cells.
	ErrInvalidShape = errors.New("tetris: invalid shape")

	// ErrNoShapes is returned when an engine is built without shapes.
	ErrNoShapes = errors.New("tetris: no shapes")

	// ErrFinished is returned by Step once the command stream is exhausted.
	ErrFinished = errors.New("tetris: run finished")
)

// CommandError reports an unrecognized character in a command string.
type CommandError struct {
	Pos  int  // Byte offset in the source string
	Char rune // Offending character
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("tetris: invalid command %q at position %d", e.Char, e.Pos)
}

func (e *CommandError) Unwrap() error {
	return ErrInvalidCommand
}

// SpawnError reports a shape that cannot be placed on an empty field.
type SpawnError struct {
	Shape  int // Index into the engine's shape list
	Width  int
	Height int
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("tetris: shape %d does not fit on empty %dx%d field", e.Shape, e.Width, e.Height)
}

func (e *SpawnError) Unwrap() error {
	return ErrSpawnImpossible
}
