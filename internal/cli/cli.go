// Package cli implements the gobedca command-line interface.
//
// This package provides commands for listing and searching the BEDCA food
// database and for inspecting one food's full nutrient profile. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
//   - foods: list every food in the database
//   - search: search foods by Spanish or English name
//   - food: show the full nutrient profile of one food
//   - browse: interactively browse the food list
//   - completion: generate shell completion scripts
//
// # Configuration
//
// Defaults can be set in a TOML file at ~/.config/gobedca/config.toml
// (or $XDG_CONFIG_HOME/gobedca/config.toml); command-line flags override it.
package cli

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gobedca/gobedca/pkg/bedca"
	"github.com/gobedca/gobedca/pkg/buildinfo"
	errs "github.com/gobedca/gobedca/pkg/errors"
)

// appName is the application name used for directories and display.
const appName = "gobedca"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg Config

	// global flags
	verbose  bool
	endpoint string
	timeout  int
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		cfg: defaultConfig(),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "gobedca queries the BEDCA Spanish food-composition database",
		Long:         `gobedca is a CLI for the BEDCA food-composition database. It lists and searches foods and shows full nutrient profiles, talking to the public XML query endpoint.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.Logger.SetLevel(log.DebugLevel)
			}

			cfg, err := loadConfig(configPath())
			if err != nil {
				return err
			}
			c.cfg = cfg

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.endpoint, "endpoint", "", "BEDCA query endpoint (overrides config)")
	root.PersistentFlags().IntVar(&c.timeout, "timeout", 0, "request timeout in seconds (overrides config)")

	root.AddCommand(c.foodsCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.foodCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newClient builds the BEDCA client from defaults, config file, and flags,
// in increasing order of precedence.
func (c *CLI) newClient(cmd *cobra.Command) *bedca.Client {
	endpoint := bedca.DefaultBaseURL
	if c.cfg.Endpoint != "" {
		endpoint = c.cfg.Endpoint
	}
	if cmd.Flags().Changed("endpoint") && c.endpoint != "" {
		endpoint = c.endpoint
	}

	timeout := c.cfg.TimeoutSeconds
	if cmd.Flags().Changed("timeout") && c.timeout > 0 {
		timeout = c.timeout
	}

	opts := []bedca.Option{
		bedca.WithBaseURL(endpoint),
		bedca.WithLogger(c.Logger),
	}
	if timeout > 0 {
		opts = append(opts, bedca.WithHTTPClient(&http.Client{Timeout: time.Duration(timeout) * time.Second}))
	}
	if c.cfg.UserAgent != "" {
		opts = append(opts, bedca.WithUserAgent(c.cfg.UserAgent))
	}
	return bedca.NewClient(opts...)
}

// parseLanguage maps a user-facing language argument to the wire vocabulary.
func parseLanguage(s string) (bedca.Language, error) {
	switch s {
	case "es", "ES", "spanish":
		return bedca.LanguageES, nil
	case "en", "EN", "english":
		return bedca.LanguageEN, nil
	}
	return "", errs.New(errs.ErrCodeInvalidLanguage, "unknown language %q (use es or en)", s)
}

// configPath returns the config file location using the XDG convention
// (~/.config/gobedca/config.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
