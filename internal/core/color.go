package core

// Color is the foreground color of a screen cell. The game picks from
// this palette; the platform layer maps it to terminal colors.
type Color uint8

// The palette. The runner draws each character's body in its signature
// color, platforms in cyan, ground hazards in red, flying hazards in
// magenta, coins in yellow and HUD text in white and gray.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
