package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/devinci/internal/terminal"
	"github.com/moasq/devinci/internal/update"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "devinci %s\n", Version)
		if !versionCheck {
			return nil
		}
		res, err := update.NewChecker().Latest(cmd.Context(), "moasq", "devinci", Version)
		if err != nil {
			current.log.Warnf("update check: %v", err)
			terminal.Warning("Could not check for updates.")
			return nil
		}
		if res.NeedsUpdate() {
			terminal.Info(fmt.Sprintf("Version %s is available: %s", res.Latest, res.UpdateURL))
		} else {
			terminal.Success("Up to date.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "look up the latest release")
}
