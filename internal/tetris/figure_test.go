package tetris

import (
	"errors"
	"testing"
)

func tShape() Figure {
	return MustFigure(P(-1, 0), P(0, 0), P(1, 0), P(0, 1))
}

func lShape() Figure {
	return MustFigure(P(0, -1), P(0, 0), P(0, 1), P(1, 1))
}

func TestNewFigureValidation(t *testing.T) {
	tests := []struct {
		name    string
		design  []Point
		wantErr bool
	}{
		{"single pivot", []Point{P(0, 0)}, false},
		{"tetromino", []Point{P(-1, 0), P(0, 0), P(1, 0), P(2, 0)}, false},
		{"empty", nil, true},
		{"no pivot", []Point{P(1, 0), P(2, 0)}, true},
		{"duplicate pivot", []Point{P(0, 0), P(0, 0)}, true},
		{"duplicate cell", []Point{P(0, 0), P(1, 0), P(1, 0)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFigure(tt.design)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidShape) {
					t.Errorf("expected ErrInvalidShape, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRotateClockwiseRoundTrip(t *testing.T) {
	for _, f := range []Figure{tShape(), lShape(), tShape().Translate(4, 7)} {
		rotated := f
		for i := 0; i < 4; i++ {
			rotated = rotated.RotateClockwise()
		}
		if !rotated.SameProjection(f) {
			t.Errorf("4x clockwise rotation changed figure: %v -> %v", f.Projections(), rotated.Projections())
		}
	}
}

func TestRotateInverse(t *testing.T) {
	f := lShape().Translate(3, 3)

	if got := f.RotateClockwise().RotateCounterClockwise(); !got.SameProjection(f) {
		t.Errorf("CW then CCW: got %v, want %v", got.Projections(), f.Projections())
	}
	if got := f.RotateCounterClockwise().RotateClockwise(); !got.SameProjection(f) {
		t.Errorf("CCW then CW: got %v, want %v", got.Projections(), f.Projections())
	}
}

func TestRotateClockwiseOffsets(t *testing.T) {
	// Offset (ox, oy) maps to (-oy, ox) around the pivot's current position.
	f := tShape().Translate(5, 5).RotateClockwise()

	want := map[Point]Point{
		P(-1, 0): P(5, 4),
		P(0, 0):  P(5, 5),
		P(1, 0):  P(5, 6),
		P(0, 1):  P(4, 5),
	}
	for _, c := range f.Cells() {
		if c.Projection != want[c.Design] {
			t.Errorf("cell %v: projection %v, want %v", c.Design, c.Projection, want[c.Design])
		}
	}
}

func TestRotateCounterClockwiseOffsets(t *testing.T) {
	f := tShape().Translate(5, 5).RotateCounterClockwise()

	want := map[Point]Point{
		P(-1, 0): P(5, 6),
		P(0, 0):  P(5, 5),
		P(1, 0):  P(5, 4),
		P(0, 1):  P(6, 5),
	}
	for _, c := range f.Cells() {
		if c.Projection != want[c.Design] {
			t.Errorf("cell %v: projection %v, want %v", c.Design, c.Projection, want[c.Design])
		}
	}
}

func TestRotateUsesCurrentPivot(t *testing.T) {
	// Rotating twice after a shift must pivot around the shifted position,
	// not the design origin.
	f := lShape().RotateClockwise().ShiftRight(2).ShiftDown(3).RotateClockwise()

	pivot := f.Pivot()
	if pivot.Projection != P(2, 3) {
		t.Fatalf("pivot at %v, want (2,3)", pivot.Projection)
	}
	for _, c := range f.Cells() {
		if c.Design == P(0, -1) && c.Projection != P(2, 4) {
			t.Errorf("cell (0,-1) at %v, want (2,4)", c.Projection)
		}
	}
}

func TestSingleCellRotationInvariant(t *testing.T) {
	f := MustFigure(P(0, 0)).Translate(2, 2)
	if !f.RotateClockwise().SameProjection(f) {
		t.Error("single cell figure changed under clockwise rotation")
	}
	if !f.RotateCounterClockwise().SameProjection(f) {
		t.Error("single cell figure changed under counter-clockwise rotation")
	}
}

func TestShiftCommutes(t *testing.T) {
	f := tShape().RotateClockwise()
	for n := 0; n < 6; n++ {
		if got := f.ShiftLeft(n).ShiftRight(n); !got.SameProjection(f) {
			t.Errorf("shift %d: got %v, want %v", n, got.Projections(), f.Projections())
		}
	}
}

func TestTransformsPreserveDesign(t *testing.T) {
	f := lShape()
	g := f.RotateClockwise().ShiftDown(4).RotateCounterClockwise().RotateCounterClockwise().ShiftLeft(1)

	before := f.Cells()
	after := g.Cells()
	for i := range before {
		if before[i].Design != after[i].Design {
			t.Errorf("cell %d design changed: %v -> %v", i, before[i].Design, after[i].Design)
		}
	}
}

func TestTransformDoesNotMutateReceiver(t *testing.T) {
	f := tShape()
	orig := f.Projections()
	_ = f.RotateClockwise()
	_ = f.Translate(3, 1)
	for i, p := range f.Projections() {
		if p != orig[i] {
			t.Fatalf("receiver mutated at cell %d: %v -> %v", i, orig[i], p)
		}
	}
}

func TestDesignBounds(t *testing.T) {
	minX, maxX, minY, maxY := lShape().RotateClockwise().DesignBounds()
	if minX != 0 || maxX != 1 || minY != -1 || maxY != 1 {
		t.Errorf("DesignBounds = (%d,%d,%d,%d), want (0,1,-1,1)", minX, maxX, minY, maxY)
	}
}

func TestAtDesign(t *testing.T) {
	f := tShape()
	moved := f.RotateClockwise().Translate(3, 2)
	if !moved.AtDesign().SameProjection(f) {
		t.Errorf("AtDesign = %v, want %v", moved.AtDesign().Projections(), f.Projections())
	}
}
