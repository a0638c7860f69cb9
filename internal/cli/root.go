package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/callhistory/internal/config"
	"github.com/rshade/callhistory/internal/logging"
)

// Command annotations.
const (
	annotationInteractive = "callhistory/interactive"

	// interactiveAlways marks commands that always take over the terminal.
	interactiveAlways = "always"
	// interactiveWhenTTY marks commands that only do so when stdout is a terminal.
	interactiveWhenTTY = "tty"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the callhistory CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for
// testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "callhistory",
		Short:   "Browse your call history",
		Long:    "callhistory: browse your call history page by page, in the terminal or as JSON/YAML",
		Version: ver,
		Example: rootCmdExample,
		Annotations: map[string]string{
			annotationInteractive: interactiveWhenTTY,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd, lookupEnv); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isInteractive(cmd) {
				return runTUI(cmd, tuiOptions{})
			}
			return runList(cmd, listOptions{Output: outputTable, Page: defaultPageFlag})
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file merged over the config file (top-level sections replace)")
	cmd.AddCommand(newCallsCmd(), newConfigCmd(), newCacheCmd(), NewLoginCmd())

	return cmd
}

const rootCmdExample = `  # Browse calls interactively
  callhistory

  # Print the second page of 50 calls
  callhistory calls list --page 2 --page-size 50

  # Print a page as JSON
  callhistory calls list --output json

  # Show one call
  callhistory calls show 8c1d6e2a

  # Log in and store the access token
  callhistory login --username alice

  # Point at the API
  callhistory config set api.url https://calls.example.com/graphql`

// newCallsCmd creates the calls command group.
func newCallsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "calls", Short: "Call history commands"}
	cmd.AddCommand(NewCallsListCmd(), NewCallsShowCmd(), NewCallsTUICmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(), NewConfigListCmd())
	return cmd
}

// loadConfig initializes the global config, merges a --config overlay and
// re-applies the environment so env vars still win over the overlay.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) error {
	cfg := config.GetGlobalConfig()
	cfg.ApplyEnv(lookupEnv)

	overlay, _ := cmd.Flags().GetString("config")
	if overlay == "" {
		return nil
	}
	if err := config.ShallowMergeYAML(cfg, overlay); err != nil {
		return fmt.Errorf("loading --config: %w", err)
	}
	cfg.ApplyEnv(lookupEnv)
	config.SetGlobalConfig(cfg)
	return nil
}

// isInteractive reports whether cmd will draw a full-screen TUI.
func isInteractive(cmd *cobra.Command) bool {
	switch cmd.Annotations[annotationInteractive] {
	case interactiveAlways:
		return true
	case interactiveWhenTTY:
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	default:
		return false
	}
}
