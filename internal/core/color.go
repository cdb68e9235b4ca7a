package core

// Color is a foreground color for a screen cell.
// Mapped to terminal styles by the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorBlue
	ColorSilver   // bricks with 1 hit left
	ColorGray     // bricks with 2 hits left
	ColorDarkGray // bricks with 3 hits left
	ColorGreen
	ColorRed
)
