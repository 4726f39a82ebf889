package prompt

import (
	"context"
	"strings"

	"github.com/moasq/devinci/internal/frame"
	"github.com/moasq/devinci/internal/theme"
)

const (
	confirmHelp = "Use arrow keys (↑/↓) to navigate, Enter to select, q to quit."
	activeMark  = " ←"

	// Down visits the three entries in the order 0, 2, 1.
	confirmOptions = 3
	confirmStride  = 2
)

// ConfirmSpec describes a confirmation dialog. Empty option texts fall back
// to "Okay", "Cancel" and "Exit".
type ConfirmSpec struct {
	Title       string
	Header      string // may span several lines
	Context     string // may span several lines
	ConfirmText string
	CancelText  string
	ExitText    string
	Theme       string
}

func (s ConfirmSpec) options() []string {
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return []string{
		pick(s.ConfirmText, "Okay"),
		pick(s.CancelText, "Cancel"),
		pick(s.ExitText, "Exit"),
	}
}

type confirmView struct {
	spec    ConfirmSpec
	options []string
	cursorState
}

func newConfirmView(spec ConfirmSpec) *confirmView {
	return &confirmView{
		spec:        spec,
		options:     spec.options(),
		cursorState: cursorState{n: confirmOptions, stride: confirmStride},
	}
}

func (v *confirmView) minWidth() int {
	return frame.Width(confirmHelp)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func (v *confirmView) render(r *frame.Renderer, width int) frame.Frame {
	var f frame.Frame
	f.Add(r.TopBorder(width))
	f.Add(r.TextLine(v.spec.Title, width, theme.RoleHeader, frame.Center))

	if header := splitLines(v.spec.Header); len(header) > 0 {
		f.Add(r.BodySeparator(width))
		for _, line := range header {
			f.Add(r.TextLine(line, width, theme.RoleSubheader, frame.Center))
		}
	}

	f.Add(r.BodySeparator(width))
	for i, opt := range v.options {
		if i == v.cursor {
			f.Add(r.TextLine("  "+opt+activeMark, width, theme.RoleSelectedOption, frame.Left))
		} else {
			f.Add(r.TextLine("  "+opt, width, theme.RoleOption, frame.Left))
		}
	}

	if ctx := splitLines(v.spec.Context); len(ctx) > 0 {
		f.Add(r.BodySeparator(width))
		for _, line := range ctx {
			f.Add(r.TextLine(line, width, theme.RoleOption, frame.Left))
		}
	}

	f.Add(r.BodySeparator(width))
	f.Add(r.TextLine(confirmHelp, width, theme.RoleSubheader, frame.Center))
	f.Add(r.BottomBorder(width))
	return f
}

func (v *confirmView) result() Result {
	if v.status != StatusSelected {
		return cancelled()
	}
	return Result{Status: StatusSelected, Index: v.cursor, Value: v.options[v.cursor]}
}

// Confirm shows the three-entry confirmation dialog and returns the chosen label.
func (e *Engine) Confirm(ctx context.Context, spec ConfirmSpec) (Result, error) {
	r, err := e.renderer(spec.Theme)
	if err != nil {
		return Result{}, err
	}
	v := newConfirmView(spec)
	if err := e.loop(ctx, r, v); err != nil {
		return Result{}, err
	}
	res := v.result()
	e.opts.Logger.Infof("confirm %q: %s", spec.Title, res)
	return res, nil
}
