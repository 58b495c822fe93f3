package core

// Color is a foreground color for a screen cell, stored as an ANSI 256-color
// code. The zero value means "terminal default" (no styling applied).
// Using raw codes instead of a closed enum lets piece palettes derive shade
// variants arithmetically within the 6x6x6 color cube.
type Color uint8

// Named codes for common game elements.
const (
	ColorDefault Color = 0
	ColorRed     Color = 196
	ColorGreen   Color = 46
	ColorYellow  Color = 226
	ColorBlue    Color = 33
	ColorMagenta Color = 201
	ColorCyan    Color = 51
	ColorWhite   Color = 15
	ColorOrange  Color = 208
	ColorPurple  Color = 129
	ColorGray    Color = 245
)
