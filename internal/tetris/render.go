package tetris

import "strings"

// Snapshot is a read-only copy of the field with the active piece painted
// as CurrentPiece. Cells are row-major, top row first.
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]CellState
}

// Snapshot captures the field and active piece for rendering.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Width:  e.field.Width(),
		Height: e.field.Height(),
		Cells:  make([][]CellState, e.field.Height()),
	}
	for y := range snap.Cells {
		snap.Cells[y] = e.field.Row(y)
	}
	for _, p := range e.active.Projections() {
		if e.field.InBounds(p.X, p.Y) {
			snap.Cells[p.Y][p.X] = CurrentPiece
		}
	}
	return snap
}

// At returns the state at (x, y). Out-of-range coordinates read as Free.
func (s Snapshot) At(x, y int) CellState {
	if y < 0 || y >= s.Height || x < 0 || x >= s.Width {
		return Free
	}
	return s.Cells[y][x]
}

// Glyphs maps cell states to output characters.
type Glyphs struct {
	Free     rune
	Occupied rune
	Current  rune
}

// DefaultGlyphs returns '.', '#' and '*'.
func DefaultGlyphs() Glyphs {
	return Glyphs{Free: '.', Occupied: '#', Current: '*'}
}

// Glyph returns the character for a cell state.
func (g Glyphs) Glyph(s CellState) rune {
	switch s {
	case Occupied:
		return g.Occupied
	case CurrentPiece:
		return g.Current
	default:
		return g.Free
	}
}

// RenderASCII renders a snapshot one row per line, each line terminated by '\n'.
func RenderASCII(s Snapshot, g Glyphs) string {
	var sb strings.Builder
	sb.Grow((s.Width + 1) * s.Height)
	for _, row := range s.Cells {
		for _, c := range row {
			sb.WriteRune(g.Glyph(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
