package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/moasq/devinci/internal/frame"
	"github.com/moasq/devinci/internal/terminal"
	"github.com/moasq/devinci/internal/theme"
)

var themesNamesOnly bool

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the colour themes",
	Long:  "Print every built-in theme with a small sample frame. The active theme is marked.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.printThemes(cmd.OutOrStdout(), themesNamesOnly)
	},
}

func init() {
	themesCmd.Flags().BoolVar(&themesNamesOnly, "names", false, "print only the theme names")
}

func (a *app) printThemes(w io.Writer, namesOnly bool) error {
	if namesOnly {
		for _, name := range theme.Names() {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	plain := a.noColor || terminal.Reset == ""
	const width = 36
	for _, name := range theme.Names() {
		th, err := theme.Get(name)
		if err != nil {
			return err
		}
		if plain {
			th = theme.Plain()
		}
		r, err := frame.NewRenderer(th, a.cfg.BorderStyle())
		if err != nil {
			return err
		}

		title := name
		if name == a.cfg.Theme {
			title += " (active)"
		}
		var f frame.Frame
		f.Add(r.TopBorder(width))
		f.Add(r.TextLine(title, width, theme.RoleHeader, frame.Center))
		f.Add(r.BodySeparator(width))
		f.Add(r.TextLine("  option", width, theme.RoleOption, frame.Left))
		f.Add(r.TextLine("› selected option", width, theme.RoleSelectedOption, frame.Left))
		f.Add(r.TextLine("help text", width, theme.RoleSubheader, frame.Right))
		f.Add(r.BottomBorder(width))
		for _, line := range f {
			fmt.Fprintln(w, line)
		}
	}
	return nil
}
