package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Palette assigns colors to the parts of a drawn field.
type Palette struct {
	Free     Color
	Occupied Color
	Current  Color
	Border   Color
	Text     Color
}

// DefaultPalette returns the palette used by the replay viewer.
func DefaultPalette() Palette {
	return Palette{
		Free:     ColorGray,
		Occupied: ColorCyan,
		Current:  ColorBrightYellow,
		Border:   ColorBlue,
		Text:     ColorWhite,
	}
}
