package prompt

import (
	"context"

	"github.com/moasq/devinci/internal/frame"
	"github.com/moasq/devinci/internal/theme"
)

const (
	selectHelp = "↑/↓ navigate · Enter select · q quit"
	cursorMark = "› "
)

// SelectSpec describes a single-choice prompt.
type SelectSpec struct {
	Header  string
	Sub     string
	Options []string
	Default int
	Theme   string
}

func (s SelectSpec) validate() error {
	if len(s.Options) == 0 {
		return ErrNoOptions
	}
	if s.Default < 0 || s.Default >= len(s.Options) {
		return &RangeError{Field: "default index", Value: s.Default, Lo: 0, Hi: len(s.Options) - 1}
	}
	return nil
}

// cursorState is the navigation state shared by Select and Confirm.
type cursorState struct {
	n      int
	cursor int
	stride int
	status Status
	done   bool
}

func (c *cursorState) apply(k Key) bool {
	switch k {
	case KeyUp:
		c.cursor = wrap(c.cursor, -c.stride, c.n)
	case KeyDown:
		c.cursor = wrap(c.cursor, c.stride, c.n)
	case KeyEnter:
		c.status, c.done = StatusSelected, true
	case KeyQuit:
		c.status, c.done = StatusCancelled, true
	}
	return c.done
}

type selectView struct {
	spec SelectSpec
	cursorState
}

func newSelectView(spec SelectSpec) *selectView {
	return &selectView{
		spec:        spec,
		cursorState: cursorState{n: len(spec.Options), cursor: spec.Default, stride: 1},
	}
}

func (v *selectView) minWidth() int {
	return frame.Width(selectHelp)
}

func (v *selectView) render(r *frame.Renderer, width int) frame.Frame {
	var f frame.Frame
	box(&f, r, width, r.TextLine(v.spec.Header, width, theme.RoleHeader, frame.Center))

	lines := make([]string, 0, len(v.spec.Options))
	for i, opt := range v.spec.Options {
		if i == v.cursor {
			lines = append(lines, r.TextLine(cursorMark+opt, width, theme.RoleSelectedOption, frame.Left))
		} else {
			lines = append(lines, r.TextLine("  "+opt, width, theme.RoleOption, frame.Left))
		}
	}
	box(&f, r, width, lines...)

	var sub []string
	if v.spec.Sub != "" {
		sub = append(sub, r.TextLine(v.spec.Sub, width, theme.RoleSubheader, frame.Center))
	}
	sub = append(sub, r.TextLine(selectHelp, width, theme.RoleSubheader, frame.Center))
	box(&f, r, width, sub...)
	return f
}

func (v *selectView) result() Result {
	if v.status != StatusSelected {
		return cancelled()
	}
	return Result{Status: StatusSelected, Index: v.cursor, Value: v.spec.Options[v.cursor]}
}

// Select shows a single-choice prompt and returns the chosen option.
// Quitting returns a cancelled Result, not an error.
func (e *Engine) Select(ctx context.Context, spec SelectSpec) (Result, error) {
	r, err := e.renderer(spec.Theme)
	if err != nil {
		return Result{}, err
	}
	if err := spec.validate(); err != nil {
		return Result{}, err
	}
	v := newSelectView(spec)
	if err := e.loop(ctx, r, v); err != nil {
		return Result{}, err
	}
	res := v.result()
	e.opts.Logger.Infof("select %q: %s", spec.Header, res)
	return res, nil
}
