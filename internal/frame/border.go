package frame

import (
	"fmt"
	"sort"
)

// BorderStyle is the glyph set used to draw a frame.
type BorderStyle struct {
	Name        string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string

	// Junctions used by body separators.
	TeeLeft  string
	TeeRight string
}

// DefaultBorder is the border style used when none is configured.
const DefaultBorder = "thin"

// Borders holds the built-in border styles by name.
var Borders = map[string]BorderStyle{
	"thin": {
		Name:    "thin",
		TopLeft: "┌", TopRight: "┐",
		BottomLeft: "└", BottomRight: "┘",
		Horizontal: "─", Vertical: "│",
		TeeLeft: "├", TeeRight: "┤",
	},
	"double": {
		Name:    "double",
		TopLeft: "╔", TopRight: "╗",
		BottomLeft: "╚", BottomRight: "╝",
		Horizontal: "═", Vertical: "║",
		TeeLeft: "╠", TeeRight: "╣",
	},
	"medium": {
		Name:    "medium",
		TopLeft: "╓", TopRight: "╖",
		BottomLeft: "╙", BottomRight: "╜",
		Horizontal: "─", Vertical: "│",
		TeeLeft: "╟", TeeRight: "╢",
	},
	"thick": {
		Name:    "thick",
		TopLeft: "┏", TopRight: "┓",
		BottomLeft: "┗", BottomRight: "┛",
		Horizontal: "━", Vertical: "┃",
		TeeLeft: "┣", TeeRight: "┫",
	},
}

// UnknownBorderError is returned by LookupBorder for unregistered names.
type UnknownBorderError struct {
	Name string
}

func (e *UnknownBorderError) Error() string {
	return fmt.Sprintf("unknown border style %q", e.Name)
}

// LookupBorder returns the border style called name.
func LookupBorder(name string) (BorderStyle, error) {
	b, ok := Borders[name]
	if !ok {
		return BorderStyle{}, &UnknownBorderError{Name: name}
	}
	return b, nil
}

// BorderNames returns the registered border style names in sorted order.
func BorderNames() []string {
	names := make([]string, 0, len(Borders))
	for name := range Borders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
