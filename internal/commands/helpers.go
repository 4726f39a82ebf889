package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/moasq/devinci/internal/config"
	"github.com/moasq/devinci/internal/logging"
	"github.com/moasq/devinci/internal/prompt"
	"github.com/moasq/devinci/internal/storage"
	"github.com/moasq/devinci/internal/terminal"
)

const clearScreen = "\033[H\033[2J"

// app carries the services a command needs. It is built once per run.
type app struct {
	cfg     *config.Config
	log     *logging.Logger
	history *storage.HistoryStore
	noColor bool

	// Test hooks; nil means the real terminal.
	keys prompt.KeyReader
	draw io.Writer
}

// drawTarget picks where frames go. Frames follow stdout unless stdout is
// piped and stderr is a terminal, so `x=$(devinci select ...)` still works.
func drawTarget() *os.File {
	if !terminal.IsTerminal(os.Stdout) && terminal.IsTerminal(os.Stderr) {
		return os.Stderr
	}
	return os.Stdout
}

func (a *app) engine() (*prompt.Engine, io.Writer) {
	opts := prompt.EngineOpts{
		MaxWidth: a.cfg.MaxWidth,
		Margin:   a.cfg.Margin,
		Border:   a.cfg.BorderStyle(),
		NoColor:  a.noColor,
		Logger:   a.log,
	}
	keys, out := a.keys, a.draw
	if keys == nil {
		keys = terminal.NewKeyReader(os.Stdin)
	}
	if out == nil {
		f := drawTarget()
		opts.Size = terminal.SizeOf(f)
		if _, ok := os.LookupEnv("NO_COLOR"); ok || !terminal.IsTerminal(f) {
			opts.NoColor = true
		}
		out = f
	}
	return prompt.NewEngine(keys, out, opts), out
}

// finish clears the last frame, records the answer and prints it to w,
// one value per line. A cancelled result becomes ErrCancelled.
func (a *app) finish(w, drawn io.Writer, kind, label string, res prompt.Result) error {
	fmt.Fprint(drawn, clearScreen)
	if res.Cancelled() {
		a.log.Infof("%s %q cancelled", kind, label)
		return ErrCancelled
	}

	values := res.Values
	if values == nil {
		values = []string{res.Value}
	}
	if err := a.history.Append(storage.Answer{Kind: kind, Prompt: label, Values: values}); err != nil {
		a.log.Warnf("failed to record answer: %v", err)
	}
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
	return nil
}

// promptFile is a prompt definition read with --from.
type promptFile struct {
	Header   string   `yaml:"header"`
	Sub      string   `yaml:"sub"`
	Options  []string `yaml:"options"`
	Default  int      `yaml:"default"`
	Min      int      `yaml:"min"`
	Max      int      `yaml:"max"`
	Defaults []int    `yaml:"defaults"`
	Theme    string   `yaml:"theme"`
}

func loadPromptFile(path string) (*promptFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file: %w", err)
	}
	var pf promptFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", path, err)
	}
	return &pf, nil
}

// parseIndices parses "0,2, 3" into a slice of ints.
func parseIndices(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid index %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}
