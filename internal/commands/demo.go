package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moasq/devinci/internal/prompt"
	"github.com/moasq/devinci/internal/terminal"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through every prompt type",
	Long:  "Run a select, a checkbox and a confirmation dialog in turn using the configured theme and border.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.runDemo(cmd.Context(), cmd.OutOrStdout())
	},
}

var (
	demoLanguages = []string{"Go", "Rust", "Python", "TypeScript", "Zig"}
	demoFeatures  = []string{"Logging", "Config file", "Metrics", "Docker image", "CI workflow"}
)

func (a *app) runDemo(ctx context.Context, w io.Writer) error {
	terminal.Header("devinci demo")
	terminal.Detail("Theme", a.cfg.Theme)
	terminal.Detail("Border", a.cfg.Border)
	terminal.Divider()

	eng, drawn := a.engine()

	lang, err := eng.Select(ctx, prompt.SelectSpec{
		Header:  "Pick a language",
		Sub:     "Only one can win",
		Options: demoLanguages,
		Theme:   a.cfg.Theme,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(drawn, clearScreen)
	if lang.Cancelled() {
		return ErrCancelled
	}

	features, err := eng.Checkbox(ctx, prompt.CheckboxSpec{
		Header:   "Pick the features to scaffold",
		Sub:      "Choose between one and three",
		Options:  demoFeatures,
		Min:      1,
		Max:      3,
		Defaults: []int{0},
		Theme:    a.cfg.Theme,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(drawn, clearScreen)
	if features.Cancelled() {
		return ErrCancelled
	}

	ok, err := eng.Confirm(ctx, prompt.ConfirmSpec{
		Title:   "Create project?",
		Header:  fmt.Sprintf("Language: %s", lang.Value),
		Context: "Features:\n  " + strings.Join(features.Values, "\n  "),
		Theme:   a.cfg.Theme,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(drawn, clearScreen)
	if ok.Cancelled() {
		return ErrCancelled
	}

	switch ok.Index {
	case 0:
		spinner := terminal.NewSpinner("Creating project...")
		spinner.Start()
		time.Sleep(300 * time.Millisecond)
		spinner.Update(fmt.Sprintf("Adding %d features...", len(features.Values)))
		time.Sleep(300 * time.Millisecond)
		spinner.Stop()
		terminal.Success(fmt.Sprintf("Created a %s project with %d features", lang.Value, len(features.Values)))
	case 2:
		terminal.Info("Exited without changes.")
		return ErrCancelled
	default:
		terminal.Warning("Nothing created.")
	}
	a.log.Infof("demo finished: %s", ok.Value)
	fmt.Fprintln(w, ok.Value)
	return nil
}
