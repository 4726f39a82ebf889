package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/moasq/devinci/internal/frame"
	"github.com/moasq/devinci/internal/theme"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "DEVINCI_CONFIG"

// Config holds the CLI configuration.
type Config struct {
	// Theme is the colour preset used by every prompt.
	Theme string `yaml:"theme"`

	// Border is the frame glyph set (thin, double, medium, thick).
	Border string `yaml:"border"`

	// MaxWidth caps the line width, borders included; Margin leaves extra
	// cells free beside the frame.
	MaxWidth int `yaml:"max_width"`
	Margin   int `yaml:"margin"`

	// LogFile receives prompt and command records. Empty disables logging.
	LogFile string `yaml:"log_file"`
	Verbose bool   `yaml:"verbose"`

	// HistoryFile stores confirmed answers for --remember.
	HistoryFile string `yaml:"history_file"`
}

// Dir returns the devinci state directory (~/.devinci).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".devinci"
	}
	return filepath.Join(home, ".devinci")
}

// Path returns the config file location: $DEVINCI_CONFIG or ~/.devinci/config.yaml.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the built-in configuration.
func Default() *Config {
	dir := Dir()
	return &Config{
		Theme:       theme.Default,
		Border:      frame.DefaultBorder,
		MaxWidth:    80,
		Margin:      0,
		LogFile:     filepath.Join(dir, "logs", "devinci.log"),
		HistoryFile: filepath.Join(dir, "history.json"),
	}
}

// LoadFrom decodes the YAML file at path on top of the defaults.
// A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the theme and border names and the width settings.
func (c *Config) Validate() error {
	if _, err := theme.Get(c.Theme); err != nil {
		return err
	}
	if _, err := frame.LookupBorder(c.Border); err != nil {
		return err
	}
	if c.MaxWidth < 20 {
		return fmt.Errorf("max_width must be at least 20, got %d", c.MaxWidth)
	}
	if hi := c.MaxWidth - frame.Chrome; c.Margin < 0 || c.Margin >= hi {
		return fmt.Errorf("margin must be in [0, %d), got %d", hi, c.Margin)
	}
	return nil
}

// BorderStyle returns the configured border glyph set.
func (c *Config) BorderStyle() frame.BorderStyle {
	b, err := frame.LookupBorder(c.Border)
	if err != nil {
		return frame.Borders[frame.DefaultBorder]
	}
	return b
}

// Save writes the config as YAML to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
