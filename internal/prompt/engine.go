// Package prompt runs the interactive select, checkbox and confirmation
// prompts. Each call owns its state for one invocation: it clears the
// screen, draws a full frame, blocks for one key, and repeats until the user
// confirms or quits.
package prompt

import (
	"context"
	"fmt"
	"io"

	"github.com/moasq/devinci/internal/frame"
	"github.com/moasq/devinci/internal/logging"
	"github.com/moasq/devinci/internal/theme"
)

const (
	clearScreen = "\033[H\033[2J"

	defaultMaxWidth = 80
)

// SizeFunc reports the terminal size in cells.
type SizeFunc func() (cols, rows int)

// EngineOpts holds optional configuration for the engine.
type EngineOpts struct {
	Size     SizeFunc          // defaults to a fixed 80x24
	MaxWidth int               // widest line drawn, borders included; defaults to 80
	Margin   int               // extra cells left free beside the frame
	Border   frame.BorderStyle // defaults to frame.DefaultBorder
	NoColor  bool              // render with the plain theme
	Logger   *logging.Logger
}

// Engine draws prompts to Out and reads keys from In.
type Engine struct {
	in   KeyReader
	out  io.Writer
	opts EngineOpts
}

// NewEngine creates an engine. Only the first opts value is used.
func NewEngine(in KeyReader, out io.Writer, opts ...EngineOpts) *Engine {
	var o EngineOpts
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Size == nil {
		o.Size = func() (int, int) { return 80, 24 }
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = defaultMaxWidth
	}
	if o.Margin < 0 {
		o.Margin = 0
	}
	if o.Border.Name == "" {
		o.Border = frame.Borders[frame.DefaultBorder]
	}
	return &Engine{in: in, out: out, opts: o}
}

// view is the per-prompt half of the loop: it reacts to keys and draws frames.
type view interface {
	apply(k Key) (done bool)
	render(r *frame.Renderer, width int) frame.Frame
	minWidth() int
}

// renderer resolves the named theme. An empty name selects theme.Default.
func (e *Engine) renderer(themeName string) (*frame.Renderer, error) {
	if themeName == "" {
		themeName = theme.Default
	}
	th, err := theme.Get(themeName)
	if err != nil {
		return nil, err
	}
	if e.opts.NoColor {
		th = theme.Plain()
	}
	return frame.NewRenderer(th, e.opts.Border)
}

// width is the text width of the next frame. It is recomputed on every
// redraw so resizes are picked up, and leaves room for the border cells so
// a whole line fits in min(cols, MaxWidth) - Margin.
func (e *Engine) width(v view) int {
	cols, _ := e.opts.Size()
	return frame.ResolveWidth(cols, e.opts.MaxWidth, e.opts.Margin+frame.Chrome, v.minWidth())
}

func (e *Engine) draw(r *frame.Renderer, v view) error {
	f := v.render(r, e.width(v))
	if _, err := io.WriteString(e.out, clearScreen+f.String()); err != nil {
		return fmt.Errorf("failed to draw prompt: %w", err)
	}
	return nil
}

// loop redraws and reads one key per iteration until v reports done.
func (e *Engine) loop(ctx context.Context, r *frame.Renderer, v view) error {
	for {
		if err := e.draw(r, v); err != nil {
			return err
		}
		k, err := e.in.ReadKey(ctx)
		if err != nil {
			return err
		}
		e.opts.Logger.Debugf("prompt key: %s", k)
		if v.apply(k) {
			return nil
		}
	}
}

// box appends a bordered block of lines to f.
func box(f *frame.Frame, r *frame.Renderer, width int, lines ...string) {
	f.Add(r.TopBorder(width))
	f.Add(lines...)
	f.Add(r.BottomBorder(width))
}

// wrap steps cursor by delta over n entries, wrapping at both ends.
func wrap(cursor, delta, n int) int {
	return ((cursor+delta)%n + n) % n
}
