package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rshade/callhistory/internal/callsapi"
	"github.com/rshade/callhistory/internal/config"
	"github.com/rshade/callhistory/internal/format"
	"github.com/rshade/callhistory/internal/logging"
)

// newSource validates the global config and builds the calls source it
// describes.
func newSource(ctx context.Context) (callsapi.Source, error) {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	src, err := callsapi.NewSource(cfg, *logging.FromContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w (set api.url with 'callhistory config set api.url URL' or %s)",
			err, config.EnvAPIURL)
	}
	return src, nil
}

// newFormatter renders dates in the local time zone.
func newFormatter() format.Formatter {
	return format.New(time.Local)
}
