package frame

import (
	"errors"
	"strings"
	"testing"

	"github.com/moasq/devinci/internal/theme"
)

func TestFitTruncatesAndPadsToExactWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		j     Justify
		want  string
	}{
		{"left pad", "abc", 6, Left, "abc   "},
		{"right pad", "abc", 6, Right, "   abc"},
		{"center pad even", "ab", 6, Center, "  ab  "},
		{"center pad odd extra right", "abc", 6, Center, " abc  "},
		{"exact", "abcdef", 6, Left, "abcdef"},
		{"truncate left", "abcdefgh", 6, Left, "abcdef"},
		{"truncate center", "abcdefgh", 6, Center, "abcdef"},
		{"truncate right", "abcdefgh", 6, Right, "abcdef"},
		{"empty", "", 3, Left, "   "},
		{"zero width", "abc", 0, Left, ""},
		{"strips escapes", "\033[1mab\033[0m", 4, Left, "ab  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.text, tt.width, tt.j)
			if got != tt.want {
				t.Fatalf("Fit(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestFitWideRunesNeverOverflow(t *testing.T) {
	// Each CJK rune is two cells; 5 cells cannot hold three of them.
	got := Fit("日本語", 5, Left)
	if w := Width(got); w != 5 {
		t.Fatalf("expected width 5, got %d (%q)", w, got)
	}
	if !strings.HasPrefix(got, "日本") {
		t.Fatalf("expected to keep the first two runes, got %q", got)
	}
}

func TestResolveWidth(t *testing.T) {
	tests := []struct {
		term, max, margin, min int
		want                   int
	}{
		{120, 80, 4, 10, 76},
		{60, 80, 4, 10, 56},
		{12, 80, 4, 20, 20},
		{0, 80, 4, 0, 0},
		{100, 0, 2, 0, 98},
	}
	for _, tt := range tests {
		got := ResolveWidth(tt.term, tt.max, tt.margin, tt.min)
		if got != tt.want {
			t.Fatalf("ResolveWidth(%d, %d, %d, %d) = %d, want %d", tt.term, tt.max, tt.margin, tt.min, got, tt.want)
		}
	}
}

func newPlainRenderer(t *testing.T, border string) *Renderer {
	t.Helper()
	b, err := LookupBorder(border)
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewRenderer(theme.Plain(), b)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestBordersAlignWithTextLines(t *testing.T) {
	for _, name := range BorderNames() {
		r := newPlainRenderer(t, name)
		width := 20
		want := width + Chrome
		for _, line := range []string{
			r.TopBorder(width),
			r.BottomBorder(width),
			r.BodySeparator(width),
			r.TextLine("hello", width, theme.RoleOption, Center),
			r.TextLine(strings.Repeat("x", 50), width, theme.RoleOption, Left),
		} {
			if got := Width(line); got != want {
				t.Fatalf("%s: expected line width %d, got %d (%q)", name, want, got, line)
			}
		}
	}
}

func TestTextLineUsesRoleStyle(t *testing.T) {
	th, err := theme.Get("vampire")
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewRenderer(th, Borders["thin"])
	if err != nil {
		t.Fatal(err)
	}
	line := r.TextLine("Pick", 10, theme.RoleHeader, Center)
	header, _ := th.Style(theme.RoleHeader)
	if !strings.Contains(line, header+"   Pick   ") {
		t.Fatalf("expected header style before centered text, got %q", line)
	}
	if Width(line) != 14 {
		t.Fatalf("expected visible width 14, got %d", Width(line))
	}
}

func TestTopBorderGlyphs(t *testing.T) {
	r := newPlainRenderer(t, "double")
	if got := r.TopBorder(2); got != "╔════╗" {
		t.Fatalf("unexpected top border %q", got)
	}
	if got := r.BodySeparator(0); got != "╠══╣" {
		t.Fatalf("unexpected separator %q", got)
	}
}

func TestLookupBorderUnknown(t *testing.T) {
	_, err := LookupBorder("dotted")
	var ube *UnknownBorderError
	if !errors.As(err, &ube) {
		t.Fatalf("expected *UnknownBorderError, got %v", err)
	}
}

func TestFrameStringUsesCRLF(t *testing.T) {
	var f Frame
	f.Add("a", "b")
	if got := f.String(); got != "a\r\nb\r\n" {
		t.Fatalf("unexpected frame %q", got)
	}
	if Frame(nil).String() != "" {
		t.Fatal("expected empty frame to render nothing")
	}
}
