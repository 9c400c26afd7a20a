package tetris

import "fmt"

// Cell is one physical cell of a figure.
// Design is the authored offset from the pivot and never changes.
// Projection is the current position in field space.
type Cell struct {
	Design     Point
	Projection Point
}

// Figure is an immutable piece. Every transform returns a new Figure;
// the receiver's cells are never written.
type Figure struct {
	cells []Cell
	pivot int // Index of the cell whose Design is (0,0)
}

// NewFigure builds a figure from design coordinates. Projection starts equal
// to design. The shape must contain (0,0) exactly once and no duplicates.
func NewFigure(design []Point) (Figure, error) {
	if len(design) == 0 {
		return Figure{}, fmt.Errorf("%w: no cells", ErrInvalidShape)
	}

	seen := make(map[Point]bool, len(design))
	pivot := -1
	cells := make([]Cell, len(design))
	for i, p := range design {
		if seen[p] {
			return Figure{}, fmt.Errorf("%w: duplicate cell %v", ErrInvalidShape, p)
		}
		seen[p] = true
		if p == (Point{}) {
			pivot = i
		}
		cells[i] = Cell{Design: p, Projection: p}
	}
	if pivot < 0 {
		return Figure{}, fmt.Errorf("%w: missing pivot cell (0,0)", ErrInvalidShape)
	}

	return Figure{cells: cells, pivot: pivot}, nil
}

// MustFigure is like NewFigure but panics on an invalid shape.
// Intended for shapes known at compile time.
func MustFigure(design ...Point) Figure {
	f, err := NewFigure(design)
	if err != nil {
		panic(err)
	}
	return f
}

// Len returns the number of cells.
func (f Figure) Len() int {
	return len(f.cells)
}

// Cells returns a copy of the figure's cells.
func (f Figure) Cells() []Cell {
	out := make([]Cell, len(f.cells))
	copy(out, f.cells)
	return out
}

// Pivot returns the pivot cell.
func (f Figure) Pivot() Cell {
	return f.cells[f.pivot]
}

// Projections returns the current field positions of all cells, in cell order.
func (f Figure) Projections() []Point {
	out := make([]Point, len(f.cells))
	for i, c := range f.cells {
		out[i] = c.Projection
	}
	return out
}

// Covers reports whether any cell is currently projected onto p.
func (f Figure) Covers(p Point) bool {
	for _, c := range f.cells {
		if c.Projection == p {
			return true
		}
	}
	return false
}

// AtDesign returns the figure with every projection reset to its design
// coordinates, i.e. the pivot back at (0,0) and no rotation applied.
func (f Figure) AtDesign() Figure {
	cells := make([]Cell, len(f.cells))
	for i, c := range f.cells {
		cells[i] = Cell{Design: c.Design, Projection: c.Design}
	}
	return Figure{cells: cells, pivot: f.pivot}
}

// DesignBounds returns the bounding box of the design coordinates.
func (f Figure) DesignBounds() (minX, maxX, minY, maxY int) {
	minX, maxX = f.cells[0].Design.X, f.cells[0].Design.X
	minY, maxY = f.cells[0].Design.Y, f.cells[0].Design.Y
	for _, c := range f.cells[1:] {
		minX = min(minX, c.Design.X)
		maxX = max(maxX, c.Design.X)
		minY = min(minY, c.Design.Y)
		maxY = max(maxY, c.Design.Y)
	}
	return minX, maxX, minY, maxY
}

// Translate shifts every cell by (dx, dy).
func (f Figure) Translate(dx, dy int) Figure {
	d := P(dx, dy)
	return f.transform(
		func(pivot Point) Point { return pivot.Add(d) },
		func(off Point) Point { return off },
	)
}

// ShiftLeft moves the figure n columns left.
func (f Figure) ShiftLeft(n int) Figure {
	return f.Translate(-n, 0)
}

// ShiftRight moves the figure n columns right.
func (f Figure) ShiftRight(n int) Figure {
	return f.Translate(n, 0)
}

// ShiftDown moves the figure n rows down.
func (f Figure) ShiftDown(n int) Figure {
	return f.Translate(0, n)
}

// RotateClockwise rotates the figure 90° clockwise about the pivot's
// current position: offset (ox, oy) becomes (-oy, ox).
func (f Figure) RotateClockwise() Figure {
	return f.transform(
		func(pivot Point) Point { return pivot },
		func(off Point) Point { return P(-off.Y, off.X) },
	)
}

// RotateCounterClockwise rotates the figure 90° counter-clockwise about the
// pivot's current position: offset (ox, oy) becomes (oy, -ox).
func (f Figure) RotateCounterClockwise() Figure {
	return f.transform(
		func(pivot Point) Point { return pivot },
		func(off Point) Point { return P(off.Y, -off.X) },
	)
}

// transform moves the pivot first, then places every other cell at the new
// pivot plus its mapped offset. Offsets come from projections, not design
// coordinates, so accumulated rotations compose correctly.
func (f Figure) transform(movePivot func(Point) Point, mapOffset func(Point) Point) Figure {
	oldPivot := f.cells[f.pivot].Projection
	newPivot := movePivot(oldPivot)

	cells := make([]Cell, len(f.cells))
	for i, c := range f.cells {
		if i == f.pivot {
			cells[i] = Cell{Design: c.Design, Projection: newPivot}
			continue
		}
		off := c.Projection.Sub(oldPivot)
		cells[i] = Cell{Design: c.Design, Projection: newPivot.Add(mapOffset(off))}
	}
	return Figure{cells: cells, pivot: f.pivot}
}

// SameProjection reports whether both figures occupy the same cells with
// the same design identities.
func (f Figure) SameProjection(other Figure) bool {
	if len(f.cells) != len(other.cells) || f.pivot != other.pivot {
		return false
	}
	for i := range f.cells {
		if f.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
