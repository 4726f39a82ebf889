package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/moasq/devinci/internal/config"
	"github.com/moasq/devinci/internal/terminal"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(current.cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFlag
		if path == "" {
			path = config.Path()
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		terminal.Success(fmt.Sprintf("Wrote %s", path))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
