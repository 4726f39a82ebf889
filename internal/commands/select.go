package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/moasq/devinci/internal/logging"
	"github.com/moasq/devinci/internal/prompt"
	"github.com/moasq/devinci/internal/storage"
)

type selectOptions struct {
	header   string
	sub      string
	def      int
	from     string
	remember bool
}

var selectOpts selectOptions

var selectCmd = &cobra.Command{
	Use:   "select [options...]",
	Short: "Pick one option from a list",
	Long: "Show a single-choice prompt and print the chosen option.\n" +
		"Use the arrow keys (or j/k) to move, Enter to choose and q to quit.",
	Example: "  devinci select --header \"Language\" Go Rust Zig\n" +
		"  devinci select --from prompts/language.yaml --remember",
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.runSelect(cmd.Context(), cmd.OutOrStdout(), args, selectOpts)
	},
}

func init() {
	f := selectCmd.Flags()
	f.StringVar(&selectOpts.header, "header", "Select an option", "header text")
	f.StringVar(&selectOpts.sub, "sub", "", "help text shown under the options")
	f.IntVar(&selectOpts.def, "default", 0, "index of the initially highlighted option")
	f.StringVar(&selectOpts.from, "from", "", "read the prompt from a YAML file")
	f.BoolVar(&selectOpts.remember, "remember", false, "start on the last answer given to this prompt")
}

func (a *app) runSelect(ctx context.Context, w io.Writer, args []string, o selectOptions) error {
	spec := prompt.SelectSpec{Header: o.header, Sub: o.sub, Options: args, Default: o.def, Theme: a.cfg.Theme}
	if o.from != "" {
		pf, err := loadPromptFile(o.from)
		if err != nil {
			return err
		}
		spec.Header, spec.Sub, spec.Default = pf.Header, pf.Sub, pf.Default
		if len(args) == 0 {
			spec.Options = pf.Options
		}
		if pf.Theme != "" {
			spec.Theme = pf.Theme
		}
	}
	if o.remember {
		if last, err := a.history.Last("select", spec.Header); err == nil && last != nil && len(last.Values) == 1 {
			if i := storage.IndexOf(spec.Options, last.Values[0]); i >= 0 {
				spec.Default = i
			}
		}
	}

	eng, drawn := a.engine()
	res, err := logging.Wrap(a.log, "select", func() (prompt.Result, error) {
		return eng.Select(ctx, spec)
	})
	if err != nil {
		return err
	}
	return a.finish(w, drawn, "select", spec.Header, res)
}
