package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moasq/devinci/internal/logging"
	"github.com/moasq/devinci/internal/prompt"
)

var confirmSpec prompt.ConfirmSpec

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Ask for confirmation",
	Long: "Show the Okay / Cancel / Exit dialog and print the chosen label.\n" +
		"Up and down move two entries at a time, wrapping around the three options.",
	Example: "  devinci confirm --title \"Create project?\" --context \"3 directories, 12 files\"",
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.runConfirm(cmd.Context(), cmd.OutOrStdout(), confirmSpec)
	},
}

func init() {
	f := confirmCmd.Flags()
	f.StringVar(&confirmSpec.Title, "title", "Are you sure?", "dialog title")
	f.StringVar(&confirmSpec.Header, "header", "", "text shown under the title (\\n splits lines)")
	f.StringVar(&confirmSpec.Context, "context", "", "details shown under the options (\\n splits lines)")
	f.StringVar(&confirmSpec.ConfirmText, "confirm-text", "Okay", "label of the first option")
	f.StringVar(&confirmSpec.CancelText, "cancel-text", "Cancel", "label of the second option")
	f.StringVar(&confirmSpec.ExitText, "exit-text", "Exit", "label of the third option")
}

func (a *app) runConfirm(ctx context.Context, w io.Writer, spec prompt.ConfirmSpec) error {
	if spec.Theme == "" {
		spec.Theme = a.cfg.Theme
	}
	spec.Header = strings.ReplaceAll(spec.Header, `\n`, "\n")
	spec.Context = strings.ReplaceAll(spec.Context, `\n`, "\n")
	eng, drawn := a.engine()
	res, err := logging.Wrap(a.log, "confirm", func() (prompt.Result, error) {
		return eng.Confirm(ctx, spec)
	})
	if err != nil {
		return err
	}
	return a.finish(w, drawn, "confirm", spec.Title, res)
}
