package prompt

import (
	"context"
	"fmt"
	"sort"

	"github.com/moasq/devinci/internal/frame"
	"github.com/moasq/devinci/internal/theme"
)

const checkboxHelp = "↑/↓ navigate · Space toggle · Enter confirm · q quit"

// CheckboxSpec describes a multiple-choice prompt.
// Max of zero means every option may be selected.
type CheckboxSpec struct {
	Header   string
	Sub      string
	Options  []string
	Min      int
	Max      int
	Defaults []int
	Theme    string
}

// normalize validates s and returns it with Max resolved.
func (s CheckboxSpec) normalize() (CheckboxSpec, error) {
	n := len(s.Options)
	if n == 0 {
		return s, ErrNoOptions
	}
	if s.Max == 0 {
		s.Max = n
	}
	if s.Max < 1 || s.Max > n {
		return s, &RangeError{Field: "max selection", Value: s.Max, Lo: 1, Hi: n}
	}
	if s.Min < 0 || s.Min > s.Max {
		return s, &RangeError{Field: "min selection", Value: s.Min, Lo: 0, Hi: s.Max}
	}
	seen := make(map[int]bool, len(s.Defaults))
	for _, i := range s.Defaults {
		if i < 0 || i >= n {
			return s, &RangeError{Field: "default index", Value: i, Lo: 0, Hi: n - 1}
		}
		seen[i] = true
	}
	if len(seen) > s.Max {
		return s, &RangeError{Field: "default count", Value: len(seen), Lo: 0, Hi: s.Max}
	}
	return s, nil
}

type checkboxView struct {
	spec     CheckboxSpec
	cursor   int
	selected map[int]bool
	notice   string
	status   Status
	done     bool
}

func newCheckboxView(spec CheckboxSpec) *checkboxView {
	v := &checkboxView{spec: spec, selected: make(map[int]bool)}
	for _, i := range spec.Defaults {
		v.selected[i] = true
	}
	if idx := v.indices(); len(idx) > 0 {
		v.cursor = idx[0]
	}
	return v
}

// indices returns the selected set in ascending order.
func (v *checkboxView) indices() []int {
	idx := make([]int, 0, len(v.selected))
	for i := range v.selected {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// toggle flips the option under the cursor unless that would break the
// selection bounds, in which case the set is left as it was.
func (v *checkboxView) toggle() {
	i := v.cursor
	if v.selected[i] {
		if len(v.selected)-1 < v.spec.Min {
			return
		}
		delete(v.selected, i)
		return
	}
	if len(v.selected) >= v.spec.Max {
		return
	}
	v.selected[i] = true
}

func (v *checkboxView) apply(k Key) bool {
	n := len(v.spec.Options)
	v.notice = ""
	switch k {
	case KeyUp:
		v.cursor = wrap(v.cursor, -1, n)
	case KeyDown:
		v.cursor = wrap(v.cursor, 1, n)
	case KeyToggle:
		v.toggle()
	case KeyEnter:
		if c := len(v.selected); c < v.spec.Min || c > v.spec.Max {
			v.notice = fmt.Sprintf("Select between %d and %d options", v.spec.Min, v.spec.Max)
			return false
		}
		v.status, v.done = StatusSelected, true
	case KeyQuit:
		v.status, v.done = StatusCancelled, true
	}
	return v.done
}

func (v *checkboxView) minWidth() int {
	return frame.Width(checkboxHelp)
}

func (v *checkboxView) render(r *frame.Renderer, width int) frame.Frame {
	var f frame.Frame
	box(&f, r, width, r.TextLine(v.spec.Header, width, theme.RoleHeader, frame.Center))

	lines := make([]string, 0, len(v.spec.Options))
	for i, opt := range v.spec.Options {
		mark := "[ ] "
		if v.selected[i] {
			mark = "[x] "
		}
		role := theme.RoleOption
		prefix := "  "
		if i == v.cursor {
			role, prefix = theme.RoleSelectedOption, cursorMark
		}
		lines = append(lines, r.TextLine(prefix+mark+opt, width, role, frame.Left))
	}
	box(&f, r, width, lines...)

	var sub []string
	if v.spec.Sub != "" {
		sub = append(sub, r.TextLine(v.spec.Sub, width, theme.RoleSubheader, frame.Center))
	}
	count := fmt.Sprintf("%d selected (min %d, max %d)", len(v.selected), v.spec.Min, v.spec.Max)
	sub = append(sub, r.TextLine(count, width, theme.RoleSubheader, frame.Center))
	if v.notice != "" {
		sub = append(sub, r.TextLine(v.notice, width, theme.RoleHeader, frame.Center))
	}
	sub = append(sub, r.TextLine(checkboxHelp, width, theme.RoleSubheader, frame.Center))
	box(&f, r, width, sub...)
	return f
}

func (v *checkboxView) result() Result {
	if v.status != StatusSelected {
		return cancelled()
	}
	idx := v.indices()
	values := make([]string, len(idx))
	for j, i := range idx {
		values[j] = v.spec.Options[i]
	}
	return Result{Status: StatusSelected, Index: -1, Indices: idx, Values: values}
}

// Checkbox shows a multiple-choice prompt bounded by spec.Min and spec.Max.
// Toggles that would leave the bounds are ignored, and Enter is refused until
// the selection fits them. Values come back in option order.
func (e *Engine) Checkbox(ctx context.Context, spec CheckboxSpec) (Result, error) {
	r, err := e.renderer(spec.Theme)
	if err != nil {
		return Result{}, err
	}
	spec, err = spec.normalize()
	if err != nil {
		return Result{}, err
	}
	v := newCheckboxView(spec)
	if err := e.loop(ctx, r, v); err != nil {
		return Result{}, err
	}
	res := v.result()
	e.opts.Logger.Infof("checkbox %q: %s", spec.Header, res)
	return res, nil
}
