// Package level loads level definitions (field size, shape list and command
// stream) from JSON or YAML files and turns them into engines.
package level

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockdrop/internal/tetris"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Pieces   [][]tetris.Point
	Commands string
	FilePath string
}

// Validation error codes.
const (
	CodeBadSize     = "bad_size"
	CodeNoPieces    = "no_pieces"
	CodeBadPiece    = "bad_piece"
	CodeBadCommands = "bad_commands"
)

// ValidationError describes why a level cannot be played.
type ValidationError struct {
	Code    string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid level (%s): %s", e.Code, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Title returns the display name, falling back to the ID.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Validate checks dimensions, shapes and the command stream.
func (l Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return &ValidationError{
			Code:    CodeBadSize,
			Message: fmt.Sprintf("field must be at least 1x1, got %dx%d", l.Width, l.Height),
		}
	}
	if _, err := l.Shapes(); err != nil {
		return err
	}
	if _, err := tetris.ParseCommands(l.Commands); err != nil {
		return &ValidationError{Code: CodeBadCommands, Message: err.Error(), Err: err}
	}
	return nil
}

// Shapes builds the level's figures in design space.
func (l Level) Shapes() ([]tetris.Figure, error) {
	if len(l.Pieces) == 0 {
		return nil, &ValidationError{Code: CodeNoPieces, Message: "level has no pieces", Err: tetris.ErrNoShapes}
	}
	shapes := make([]tetris.Figure, len(l.Pieces))
	for i, cells := range l.Pieces {
		fig, err := tetris.NewFigure(cells)
		if err != nil {
			return nil, &ValidationError{
				Code:    CodeBadPiece,
				Message: fmt.Sprintf("piece %d: %v", i, err),
				Err:     err,
			}
		}
		shapes[i] = fig
	}
	return shapes, nil
}

// Build validates the level and returns an engine on an empty field,
// ready to Start.
func (l Level) Build() (*tetris.Engine, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	shapes, err := l.Shapes()
	if err != nil {
		return nil, err
	}
	cmds, err := tetris.ParseCommands(l.Commands)
	if err != nil {
		return nil, err
	}
	return tetris.New(tetris.NewEmptyField(l.Width, l.Height), shapes, cmds)
}
