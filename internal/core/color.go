package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI color; ColorDefault leaves the terminal color unchanged.
type Color uint8

// Palette used by the board, the balls and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange // 256-color orange for orange balls and walls
	ColorGray   // 256-color gray for neutral walls and balls
)
