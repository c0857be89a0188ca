package core

// Color is a terminal color for a screen cell, written as a hex string
// ("#dfb5e0") or an ANSI code ("9"). The empty string is the terminal default.
type Color string

// ColorDefault leaves the terminal's own color in place.
const ColorDefault Color = ""

// Style pairs the foreground and background color of a cell.
type Style struct {
	Fg Color
	Bg Color
}

// IsDefault reports whether neither color is set.
func (s Style) IsDefault() bool {
	return s.Fg == ColorDefault && s.Bg == ColorDefault
}
