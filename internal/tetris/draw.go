package tetris

import "github.com/vovakirdan/blockdrop/internal/core"

// DrawSnapshot paints a snapshot onto dst with its top-left cell at (x, y),
// one screen character per field cell. Cells falling outside dst are clipped.
func DrawSnapshot(dst *core.Screen, s Snapshot, x, y int, g Glyphs, p core.Palette) {
	for row, cells := range s.Cells {
		for col, c := range cells {
			color := p.Free
			switch c {
			case Occupied:
				color = p.Occupied
			case CurrentPiece:
				color = p.Current
			}
			dst.SetColored(x+col, y+row, g.Glyph(c), color)
		}
	}
}
