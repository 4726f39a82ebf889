package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/moasq/devinci/internal/config"
	"github.com/moasq/devinci/internal/logging"
	"github.com/moasq/devinci/internal/storage"
	"github.com/moasq/devinci/internal/terminal"
)

// Version is set at build time.
var Version = "0.1.0"

// ErrCancelled is returned when the user quits a prompt.
var ErrCancelled = errors.New("cancelled")

// Global flags.
var (
	configFlag  string
	themeFlag   string
	borderFlag  string
	verboseFlag bool
	noColorFlag bool
)

// current is built in PersistentPreRunE and shared by every subcommand.
var current *app

var rootCmd = &cobra.Command{
	Use:           "devinci",
	Short:         "Themed interactive terminal prompts",
	Long:          "Devinci shows boxed, themed select, checkbox and confirmation prompts and prints the answer.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current == nil {
			return nil
		}
		return current.log.Close()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default $DEVINCI_CONFIG or ~/.devinci/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "colour theme (see `devinci themes`)")
	rootCmd.PersistentFlags().StringVar(&borderFlag, "border", "", "border style: thin, double, medium or thick")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every keypress")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colours")

	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(checkboxCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadApp reads the config, applies flag overrides and opens the log.
func loadApp() (*app, error) {
	path := configFlag
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	if borderFlag != "" {
		cfg.Border = borderFlag
	}
	if verboseFlag {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if noColorFlag || !terminal.ColorEnabled() {
		terminal.DisableColor()
	}

	log, err := logging.New(logging.Options{File: cfg.LogFile, Verbose: cfg.Verbose})
	if err != nil {
		return nil, err
	}
	log.Debugf("config loaded from %s", path)

	return &app{
		cfg:     cfg,
		log:     log,
		history: storage.NewHistoryStore(cfg.HistoryFile),
		noColor: noColorFlag,
	}, nil
}
