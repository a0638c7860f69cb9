package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCallsShowCmd creates the calls show command printing a single call.
func NewCallsShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print one call with its notes",
		Example: `  callhistory calls show 8c1d6e2a
  callhistory calls show 8c1d6e2a --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			ctx := cmd.Context()
			src, err := newSource(ctx)
			if err != nil {
				return err
			}

			record, err := src.Call(ctx, args[0])
			if err != nil {
				return fmt.Errorf("loading call %s: %w", args[0], err)
			}
			return renderCall(cmd.OutOrStdout(), output, *record, newFormatter())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json or yaml")
	return cmd
}
