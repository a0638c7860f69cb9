package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/callhistory/internal/config"
	"github.com/rshade/callhistory/internal/logging"
	"github.com/rshade/callhistory/internal/pagination"
	"github.com/rshade/callhistory/internal/router"
	"github.com/rshade/callhistory/internal/tui"
)

type tuiOptions struct {
	Page     int
	PageSize int
}

// NewCallsTUICmd creates the calls tui command running the interactive list.
func NewCallsTUICmd() *cobra.Command {
	var opts tuiOptions

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse calls interactively",
		Long: `Opens the interactive call list.

Keys: ←/→ change page, g/G first/last page, +/- change page size,
enter opens a call, esc goes back, q quits.`,
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			annotationInteractive: interactiveAlways,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Page, "page", 0, "page to open on")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "calls per page (default pagination.default_page_size)")

	return cmd
}

func runTUI(cmd *cobra.Command, opts tuiOptions) error {
	ctx := cmd.Context()
	src, err := newSource(ctx)
	if err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	pageSize := cfg.Pagination.DefaultPageSize
	if opts.PageSize != 0 {
		if opts.PageSize < pagination.MinPageSize || opts.PageSize > pagination.MaxPageSize {
			return fmt.Errorf("%w: got %d", pagination.ErrInvalidPageSize, opts.PageSize)
		}
		pageSize = opts.PageSize
	}

	appOpts := tui.AppOptions{
		PageSize:        pageSize,
		PageSizeOptions: cfg.PageSizeOptions(),
		Formatter:       newFormatter(),
		Logger:          *logging.FromContext(ctx),
	}
	if opts.Page > 0 {
		appOpts.InitialLocation = router.PagePath(opts.Page)
	}

	if err = tui.Run(ctx, src, appOpts); err != nil {
		return fmt.Errorf("running interactive TUI: %w", err)
	}
	return nil
}
