package core

// Color is the foreground color of a screen cell. The frontend maps each
// value to an ANSI 256-color code.
type Color uint8

// Palette. Values are stable so screenshots and tests can compare cells.
const (
	ColorDefault Color = iota
	ColorRed           // Cars, splat
	ColorGreen         // Grass, hedge, open gaps
	ColorYellow        // Trucks
	ColorBlue          // Water
	ColorMagenta       // Decor
	ColorWhite         // Text
	ColorBrightRed     // Game over
	ColorBrightGreen   // Frog, claimed homes
	ColorBrightYellow  // HUD score, titles
	ColorBrown         // Logs
	ColorGray          // Road, dim text
)
