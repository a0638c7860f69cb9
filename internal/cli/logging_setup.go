package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/callhistory/internal/config"
	"github.com/rshade/callhistory/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI
// flags. Interactive commands never log to the terminal: they log to the
// configured file (or the default one) and discard logs when no file can be
// opened.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()
	debug, _ := cmd.Flags().GetBool("debug")
	interactive := isInteractive(cmd)

	if debug {
		loggingCfg.Level = "debug"
	}
	switch {
	case interactive && loggingCfg.File == "":
		loggingCfg.File = config.DefaultLogFile()
	case debug && !interactive:
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	logCfg := loggingCfg.ToLoggingConfig()
	if interactive && logCfg.File == "" {
		logCfg.Output = logging.OutputDiscard
	}

	result := logging.NewLoggerWithPath(logCfg)
	if interactive && result.FallbackUsed {
		_ = result.Close()
		result = logging.NewLoggerWithPath(logging.Config{Output: logging.OutputDiscard})
	}

	if result.UsingFile {
		if debug || !interactive {
			logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
		}
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	// The context carries the untagged logger; packages add their component.
	ctx := logging.WithTrace(cmd.Context(), result.Logger)
	cmd.SetContext(ctx)
	logger = logging.ComponentLogger(*logging.FromContext(ctx), "cli")

	logger.Debug().Str("command", cmd.CommandPath()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
