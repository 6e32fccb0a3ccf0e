package engine

import "strings"

// ColorIndex identifies a ball, hole or wall color.
// Grey is the neutral color: it matches every hole and every ball.
type ColorIndex uint8

const (
	ColorGrey ColorIndex = iota
	ColorOrange
	ColorBlue
	ColorGreen
	ColorYellow
	ColorCount
)

var colorNames = [ColorCount]string{"grey", "orange", "blue", "green", "yellow"}

// String returns the configuration name of the color.
func (c ColorIndex) String() string {
	if c < ColorCount {
		return colorNames[c]
	}
	return "unknown"
}

// Valid reports whether c is one of the five known colors.
func (c ColorIndex) Valid() bool {
	return c < ColorCount
}

// ParseColor converts a configuration color name to its index.
// Returns ColorGrey and false if the name is not recognized.
func ParseColor(s string) (ColorIndex, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "gray" {
		return ColorGrey, true
	}
	for i, name := range colorNames {
		if name == s {
			return ColorIndex(i), true //#nosec G115 -- i < ColorCount
		}
	}
	return ColorGrey, false
}

// ColorFromDigit converts a layout digit ('0'-'4') to a color.
func ColorFromDigit(b byte) (ColorIndex, bool) {
	if b < '0' || b > '4' {
		return ColorGrey, false
	}
	return ColorIndex(b - '0'), true
}

// AllColors returns every color in index order.
func AllColors() []ColorIndex {
	return []ColorIndex{ColorGrey, ColorOrange, ColorBlue, ColorGreen, ColorYellow}
}
