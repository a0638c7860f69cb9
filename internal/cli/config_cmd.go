package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/callhistory/internal/config"
)

// maskedValue replaces secrets in config output.
const maskedValue = "********"

// NewConfigInitCmd creates the config init command writing a default config
// file.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		apiURL string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create ~/.callhistory/config.yaml
  callhistory config init --api-url https://calls.example.com/graphql

  # Overwrite an existing file
  callhistory config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			if path == "" {
				return errors.New("cannot determine config directory; set " + config.EnvHome)
			}

			if !force {
				_, err := os.Stat(path)
				if err == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				}
				if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", path, err)
				}
			}

			cfg := config.Default()
			cfg.SetPath(path)
			cfg.API.URL = apiURL
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			config.SetGlobalConfig(cfg)

			cmd.Printf("Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "calls GraphQL endpoint")
	return cmd
}

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "get KEY",
		Short:     "Print one configuration value",
		Example:   "  callhistory config get pagination.default_page_size",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

// NewConfigSetCmd creates the config set command. The value is validated
// before the file is written.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set one configuration value",
		Example: `  callhistory config set api.url https://calls.example.com/graphql
  callhistory config set pagination.page_size_options 10,20,50`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Env overrides must not leak into the file.
			cfg, err := config.Load(config.GetGlobalConfig().Path())
			if err != nil {
				return err
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			logger.Debug().Str("key", args[0]).Str("path", cfg.Path()).Msg("config value set")
			cmd.Printf("%s set\n", args[0])
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command printing every key with
// its effective value. The token is masked.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"show"},
		Short:   "Print the effective configuration",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			var b strings.Builder
			for _, key := range config.Keys() {
				value, err := cfg.Get(key)
				if err != nil {
					return err
				}
				if key == config.KeyAPIToken && value != "" {
					value = maskedValue
				}
				fmt.Fprintf(&b, "%s = %s\n", key, value)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", cfg.Path(), b.String())
			return nil
		},
	}
}
