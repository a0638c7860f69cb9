package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/callhistory/internal/callsapi"
	"github.com/rshade/callhistory/internal/config"
	"github.com/rshade/callhistory/internal/logging"
)

// ErrMissingUsername is returned when login has no username to send.
var ErrMissingUsername = errors.New("username is required (--username or api.username)")

// NewLoginCmd creates the login command. It exchanges credentials for an
// access token and stores the token in the config file.
func NewLoginCmd() *cobra.Command {
	var (
		username      string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the access token",
		Example: `  # Prompt for the password
  callhistory login --username alice

  # Read the password from stdin
  echo "$PASSWORD" | callhistory login --username alice --password-stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.GetGlobalConfig()
			if cfg.API.URL == "" {
				return callsapi.ErrMissingEndpoint
			}
			if username == "" {
				username = cfg.API.Username
			}
			if username == "" {
				return ErrMissingUsername
			}

			password, err := readPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			client, err := callsapi.NewClient(cfg.API.URL,
				callsapi.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
				callsapi.WithLogger(*logging.FromContext(ctx)),
			)
			if err != nil {
				return err
			}
			session, err := client.Login(ctx, username, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			if session.User.Username != "" {
				username = session.User.Username
			}
			if err = saveSession(cfg, username, session.AccessToken); err != nil {
				return err
			}
			if err = invalidateCache(cmd); err != nil {
				logger.Warn().Err(err).Msg("could not clear page cache")
			}

			cmd.Printf("Logged in as %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "account username (default api.username)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	return cmd
}

// readPassword prompts without echo on a terminal and otherwise reads the
// first line of stdin.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if !fromStdin && isTerminal(os.Stdin) {
		cmd.PrintErr("Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.PrintErrln()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("empty password")
	}
	return password, nil
}

// saveSession writes the token to the config file without persisting any env
// overrides, and updates the in-memory config.
func saveSession(cfg *config.Config, username, token string) error {
	onDisk, err := config.Load(cfg.Path())
	if err != nil {
		return err
	}
	onDisk.API.Username = username
	onDisk.API.Token = token
	if onDisk.API.URL == "" {
		onDisk.API.URL = cfg.API.URL
	}
	if err = onDisk.Save(); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	cfg.API.Username = username
	cfg.API.Token = token
	return nil
}

// invalidator is implemented by sources holding cached pages.
type invalidator interface {
	Invalidate() error
}

// invalidateCache drops pages cached for the previous account.
func invalidateCache(cmd *cobra.Command) error {
	src, err := newSource(cmd.Context())
	if err != nil {
		return err
	}
	if inv, ok := src.(invalidator); ok {
		return inv.Invalidate()
	}
	return nil
}
