package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/moasq/devinci/internal/logging"
	"github.com/moasq/devinci/internal/prompt"
	"github.com/moasq/devinci/internal/storage"
)

type checkboxOptions struct {
	header   string
	sub      string
	min      int
	max      int
	defaults string
	from     string
	remember bool
}

var checkboxOpts checkboxOptions

var checkboxCmd = &cobra.Command{
	Use:   "checkbox [options...]",
	Short: "Pick several options from a list",
	Long: "Show a multiple-choice prompt and print the chosen options, one per line, in list order.\n" +
		"Space toggles the highlighted option; Enter confirms once the selection is within --min and --max.",
	Example: "  devinci checkbox --min 1 --max 2 --defaults 0 lint test release",
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.runCheckbox(cmd.Context(), cmd.OutOrStdout(), args, checkboxOpts)
	},
}

func init() {
	f := checkboxCmd.Flags()
	f.StringVar(&checkboxOpts.header, "header", "Select options", "header text")
	f.StringVar(&checkboxOpts.sub, "sub", "", "help text shown under the options")
	f.IntVar(&checkboxOpts.min, "min", 0, "fewest options that may be selected")
	f.IntVar(&checkboxOpts.max, "max", 0, "most options that may be selected (0 = all)")
	f.StringVar(&checkboxOpts.defaults, "defaults", "", "comma-separated indices selected initially")
	f.StringVar(&checkboxOpts.from, "from", "", "read the prompt from a YAML file")
	f.BoolVar(&checkboxOpts.remember, "remember", false, "start with the last answer given to this prompt")
}

func (a *app) runCheckbox(ctx context.Context, w io.Writer, args []string, o checkboxOptions) error {
	defaults, err := parseIndices(o.defaults)
	if err != nil {
		return err
	}
	spec := prompt.CheckboxSpec{
		Header:   o.header,
		Sub:      o.sub,
		Options:  args,
		Min:      o.min,
		Max:      o.max,
		Defaults: defaults,
		Theme:    a.cfg.Theme,
	}
	if o.from != "" {
		pf, err := loadPromptFile(o.from)
		if err != nil {
			return err
		}
		spec.Header, spec.Sub = pf.Header, pf.Sub
		spec.Min, spec.Max, spec.Defaults = pf.Min, pf.Max, pf.Defaults
		if len(args) == 0 {
			spec.Options = pf.Options
		}
		if pf.Theme != "" {
			spec.Theme = pf.Theme
		}
	}
	if o.remember {
		if last, err := a.history.Last("checkbox", spec.Header); err == nil && last != nil {
			var remembered []int
			for _, v := range last.Values {
				if i := storage.IndexOf(spec.Options, v); i >= 0 {
					remembered = append(remembered, i)
				}
			}
			if len(remembered) > 0 && (spec.Max == 0 || len(remembered) <= spec.Max) {
				spec.Defaults = remembered
			}
		}
	}

	eng, drawn := a.engine()
	res, err := logging.Wrap(a.log, "checkbox", func() (prompt.Result, error) {
		return eng.Checkbox(ctx, spec)
	})
	if err != nil {
		return err
	}
	return a.finish(w, drawn, "checkbox", spec.Header, res)
}
