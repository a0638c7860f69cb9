package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/config"
	"github.com/rshade/callhistory/internal/fetch"
	"github.com/rshade/callhistory/internal/logging"
	"github.com/rshade/callhistory/internal/pagination"
)

const defaultPageFlag = pagination.DefaultPage

// ErrPageNotFound is returned when the API answers a page request without a
// payload.
var ErrPageNotFound = errors.New("calls page not found")

type listOptions struct {
	Output   string
	Page     int
	PageSize int
	Offset   int
	Limit    int
}

// NewCallsListCmd creates the calls list command printing one page of calls.
func NewCallsListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of calls",
		Long: `Prints one page of calls with pagination metadata.

Pages are 1-based. --offset/--limit address calls directly and cannot be
combined with --page.`,
		Example: `  # First page at the configured page size
  callhistory calls list

  # Third page of 10 calls as YAML
  callhistory calls list --page 3 --page-size 10 --output yaml

  # Calls 40-59
  callhistory calls list --offset 40 --limit 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Page, "page", defaultPageFlag, "1-based page number")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "calls per page (default pagination.default_page_size)")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "calls to skip (offset mode); current_page is the page of --limit calls containing the first one")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "calls to return (offset mode)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", outputTable, "output format: table, json or yaml")

	return cmd
}

func runList(cmd *cobra.Command, opts listOptions) error {
	if err := validateOutput(opts.Output); err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	params := pagination.NewPaginationParams(cfg.Pagination.DefaultPageSize)
	params.Page = opts.Page
	if opts.PageSize != 0 {
		params.PageSize = opts.PageSize
	}
	params.Offset, params.Limit = opts.Offset, opts.Limit
	if err := params.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	src, err := newSource(ctx)
	if err != nil {
		return err
	}

	req := params.Request()
	log := logging.FromContext(ctx)
	log.Debug().Int("offset", req.Offset).Int("limit", req.Limit).Msg("listing calls")

	page, err := src.PaginatedCalls(ctx, req)
	state := fetch.Resolve(fetch.Completed(page, err))
	switch state.Kind {
	case fetch.KindFailed:
		return fmt.Errorf("loading calls: %w", state.Reason)
	case fetch.KindNotFound:
		return ErrPageNotFound
	case fetch.KindPending, fetch.KindReady:
	}

	meta := pagination.NewPaginationMeta(params.EffectivePage(), params.EffectivePageSize(), state.TotalCount)
	meta.Offset = req.Offset
	result := CallsListResult{
		Calls:      calls.ProjectAll(state.Nodes, newFormatter()),
		Pagination: meta,
	}
	log.Debug().Int("calls", len(result.Calls)).Int("total", state.TotalCount).Msg("calls listed")

	return renderCallsList(cmd.OutOrStdout(), opts.Output, result)
}
