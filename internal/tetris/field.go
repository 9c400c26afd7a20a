package tetris

import (
	"fmt"
	"strings"
)

// Field is the playing field: a fixed-size matrix of cell states.
// Rows are indexed by Y (top row first), columns by X.
// A Field is never modified after construction; Lock and ClearFullRows
// return new values that share untouched rows with the receiver.
type Field struct {
	w    int
	h    int
	rows [][]CellState
}

// NewField creates a width x height field with every cell set to fill.
func NewField(width, height int, fill CellState) *Field {
	row := make([]CellState, width)
	for x := range row {
		row[x] = fill
	}
	rows := make([][]CellState, height)
	for y := range rows {
		rows[y] = row
	}
	return &Field{w: width, h: height, rows: rows}
}

// NewEmptyField creates a field with all cells Free.
func NewEmptyField(width, height int) *Field {
	return NewField(width, height, Free)
}

// FieldFromRows builds a field from explicit rows. All rows must have the
// same length. The rows are copied.
func FieldFromRows(rows [][]CellState) (*Field, error) {
	f := &Field{h: len(rows), rows: make([][]CellState, len(rows))}
	for y, r := range rows {
		if y == 0 {
			f.w = len(r)
		} else if len(r) != f.w {
			return nil, fmt.Errorf("tetris: row %d has %d cells, expected %d", y, len(r), f.w)
		}
		f.rows[y] = append([]CellState(nil), r...)
	}
	return f, nil
}

// Width returns the number of columns.
func (f *Field) Width() int {
	return f.w
}

// Height returns the number of rows.
func (f *Field) Height() int {
	return f.h
}

// InBounds returns true if (x, y) is inside the field.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.w && y >= 0 && y < f.h
}

// At returns the state of cell (x, y), or ErrOutOfBounds.
func (f *Field) At(x, y int) (CellState, error) {
	if !f.InBounds(x, y) {
		return Free, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, f.w, f.h)
	}
	return f.rows[y][x], nil
}

// Row returns a copy of row y.
func (f *Field) Row(y int) []CellState {
	return append([]CellState(nil), f.rows[y]...)
}

// Lock returns a new field with every cell covered by fig set to Occupied.
// All projections must be in bounds; anything else is a caller bug and panics.
func (f *Field) Lock(fig Figure) *Field {
	rows := make([][]CellState, f.h)
	copy(rows, f.rows)
	copied := make(map[int]bool)

	for _, p := range fig.Projections() {
		if !f.InBounds(p.X, p.Y) {
			panic(fmt.Errorf("%w: lock at %v outside %dx%d", ErrOutOfBounds, p, f.w, f.h))
		}
		if !copied[p.Y] {
			rows[p.Y] = append([]CellState(nil), rows[p.Y]...)
			copied[p.Y] = true
		}
		rows[p.Y][p.X] = Occupied
	}
	return &Field{w: f.w, h: f.h, rows: rows}
}

// ClearFullRows removes every fully occupied row and inserts the same number
// of Free rows at the top. Remaining rows keep their relative order.
// Returns the new field and the number of rows removed.
func (f *Field) ClearFullRows() (*Field, int) {
	kept := make([][]CellState, 0, f.h)
	for _, r := range f.rows {
		if !isFull(r) {
			kept = append(kept, r)
		}
	}

	cleared := f.h - len(kept)
	if cleared == 0 {
		return f, 0
	}

	empty := make([]CellState, f.w)
	rows := make([][]CellState, 0, f.h)
	for i := 0; i < cleared; i++ {
		rows = append(rows, empty)
	}
	rows = append(rows, kept...)
	return &Field{w: f.w, h: f.h, rows: rows}, cleared
}

// isFull returns true if no cell in the row is Free.
func isFull(row []CellState) bool {
	for _, c := range row {
		if c != Occupied {
			return false
		}
	}
	return true
}

// Fits reports whether every cell of fig is in bounds and on a Free cell.
func (f *Field) Fits(fig Figure) bool {
	for _, p := range fig.Projections() {
		if !f.InBounds(p.X, p.Y) || f.rows[p.Y][p.X] != Free {
			return false
		}
	}
	return true
}

// OccupiedCount returns the number of Occupied cells.
func (f *Field) OccupiedCount() int {
	count := 0
	for _, r := range f.rows {
		for _, c := range r {
			if c == Occupied {
				count++
			}
		}
	}
	return count
}

// Equal returns true if two fields have the same dimensions and contents.
func (f *Field) Equal(other *Field) bool {
	if f.w != other.w || f.h != other.h {
		return false
	}
	for y := range f.rows {
		for x := range f.rows[y] {
			if f.rows[y][x] != other.rows[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the field with '.' for Free and '#' for Occupied.
func (f *Field) String() string {
	var sb strings.Builder
	for _, r := range f.rows {
		for _, c := range r {
			if c == Occupied {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
