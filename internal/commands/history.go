package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moasq/devinci/internal/terminal"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent answers",
	Long:  "Display the answers recorded by select, checkbox and confirm. These feed --remember.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyClear {
			if err := current.history.Clear(); err != nil {
				return err
			}
			terminal.Success("History cleared.")
			return nil
		}
		return current.printHistory(cmd.OutOrStdout(), historyLimit)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of answers to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "remove every recorded answer")
}

func (a *app) printHistory(w io.Writer, limit int) error {
	if limit < 0 {
		return fmt.Errorf("--limit must not be negative, got %d", limit)
	}
	answers, err := a.history.Recent(limit)
	if err != nil {
		return err
	}
	if len(answers) == 0 {
		terminal.Info("No answers recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s %-9s %-28s %s\n", "When", "Kind", "Prompt", "Answer")
	fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 72))
	for _, ans := range answers {
		fmt.Fprintf(w, "  %-16s %-9s %-28s %s\n",
			ans.CreatedAt.Format("2006-01-02 15:04"),
			ans.Kind,
			truncate(ans.Prompt, 28),
			strings.Join(ans.Values, ", "),
		)
	}
	return nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
