// Package frame draws the boxed layout of a prompt: borders, separators and
// fixed-width text lines. Every function is pure and returns strings; the
// caller decides where the frame is written.
package frame

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/moasq/devinci/internal/theme"
)

// Justify anchors text inside a line.
type Justify int

const (
	Left Justify = iota
	Right
	Center
)

// cells measures text with East Asian ambiguous runes (box glyphs included)
// counted as one cell, whatever the locale says.
var cells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Width returns the number of terminal cells s occupies, ignoring escape codes.
func Width(s string) int {
	return cells.StringWidth(ansi.Strip(s))
}

// Fit truncates or pads text to exactly width cells.
// Escape codes in text are dropped so the result can be measured reliably.
func Fit(text string, width int, j Justify) string {
	if width <= 0 {
		return ""
	}
	plain := ansi.Strip(text)
	if cells.StringWidth(plain) > width {
		plain = cells.Truncate(plain, width, "")
	}
	gap := width - cells.StringWidth(plain)
	switch j {
	case Right:
		return strings.Repeat(" ", gap) + plain
	case Center:
		left := gap / 2
		return strings.Repeat(" ", left) + plain + strings.Repeat(" ", gap-left)
	default:
		return plain + strings.Repeat(" ", gap)
	}
}

// Chrome is the number of cells a TextLine adds around its text ("│ " and " │").
const Chrome = 4

// ResolveWidth computes the usable text width of a frame:
// min(terminalWidth, maxWidth) - margin, raised to minWidth and never negative.
func ResolveWidth(terminalWidth, maxWidth, margin, minWidth int) int {
	w := terminalWidth
	if maxWidth > 0 && maxWidth < w {
		w = maxWidth
	}
	w -= margin
	if w < minWidth {
		w = minWidth
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Renderer draws frame elements with one palette and border style.
type Renderer struct {
	Palette theme.Palette
	Border  BorderStyle
}

// NewRenderer resolves th into a palette. It fails if th lacks a role.
func NewRenderer(th theme.Theme, border BorderStyle) (*Renderer, error) {
	p, err := th.Palette()
	if err != nil {
		return nil, err
	}
	return &Renderer{Palette: p, Border: border}, nil
}

// A text line is "│ " + width cells + " │", so rules span width+2 glyphs.
func (r *Renderer) rule(left, right string, width int) string {
	if width < 0 {
		width = 0
	}
	return r.Palette.Border + left + strings.Repeat(r.Border.Horizontal, width+2) + right + r.Palette.Reset
}

// TopBorder draws the opening rule of a box.
func (r *Renderer) TopBorder(width int) string {
	return r.rule(r.Border.TopLeft, r.Border.TopRight, width)
}

// BottomBorder draws the closing rule of a box.
func (r *Renderer) BottomBorder(width int) string {
	return r.rule(r.Border.BottomLeft, r.Border.BottomRight, width)
}

// BodySeparator draws a rule between two sections of a box.
func (r *Renderer) BodySeparator(width int) string {
	return r.rule(r.Border.TeeLeft, r.Border.TeeRight, width)
}

// TextLine draws one bordered line of text styled with role.
func (r *Renderer) TextLine(text string, width int, role theme.Role, j Justify) string {
	p := r.Palette
	var b strings.Builder
	b.WriteString(p.Border)
	b.WriteString(r.Border.Vertical)
	b.WriteString(p.Reset)
	b.WriteByte(' ')
	b.WriteString(p.Of(role))
	b.WriteString(Fit(text, width, j))
	b.WriteString(p.Reset)
	b.WriteByte(' ')
	b.WriteString(p.Border)
	b.WriteString(r.Border.Vertical)
	b.WriteString(p.Reset)
	return b.String()
}

// Frame is one full redraw, line by line.
type Frame []string

// Add appends lines to the frame.
func (f *Frame) Add(lines ...string) {
	*f = append(*f, lines...)
}

// String joins the frame with CRLF so it renders correctly in raw mode.
func (f Frame) String() string {
	if len(f) == 0 {
		return ""
	}
	return strings.Join(f, "\r\n") + "\r\n"
}
