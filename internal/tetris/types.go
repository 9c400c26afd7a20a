// Package tetris implements a deterministic, command-driven falling-block
// simulator. It is UI-agnostic: rendering and level loading live elsewhere
// and talk to this package through Snapshot values and event hooks.
package tetris

import "fmt"

// CellState is the occupancy of a single field cell.
type CellState uint8

const (
	Free CellState = iota
	Occupied
	// CurrentPiece only appears in snapshots, never inside a Field.
	CurrentPiece
)

// String returns the string representation of a cell state.
func (s CellState) String() string {
	switch s {
	case Free:
		return "Free"
	case Occupied:
		return "Occupied"
	case CurrentPiece:
		return "CurrentPiece"
	default:
		return "Unknown"
	}
}

// Point is a cell coordinate. X is the column, Y is the row.
// Y increases downward (screen coordinates).
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}
