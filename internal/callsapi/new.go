package callsapi

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/callhistory/internal/cache"
	"github.com/rshade/callhistory/internal/config"
	"github.com/rshade/callhistory/internal/logging"
)

// NewSource builds the Source described by cfg: fixtures when a fixture file
// is set, otherwise the GraphQL client. Caching wraps either one when enabled
// with a positive TTL. logger must not carry a component field; each layer
// adds its own.
func NewSource(cfg *config.Config, logger zerolog.Logger) (Source, error) {
	log := logging.ComponentLogger(logger, "callsapi")
	var (
		src       Source
		namespace string
	)

	switch {
	case cfg.Fixtures.File != "":
		fixtures, err := LoadFixtures(cfg.Fixtures.File)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("file", cfg.Fixtures.File).Int("calls", fixtures.Len()).Msg("serving calls from fixtures")
		// Fixtures are already in memory.
		return fixtures, nil
	case cfg.API.URL == "":
		return nil, ErrMissingEndpoint
	default:
		client, err := NewClient(cfg.API.URL,
			WithToken(cfg.API.Token),
			WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
			WithLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		src, namespace = client, cfg.API.URL
	}

	if !cfg.Cache.Enabled || cfg.Cache.TTLSeconds <= 0 {
		return src, nil
	}

	store, err := newPageStore(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("disk cache unavailable, caching in memory only")
		store = cache.NewTiered(cache.NewMemoryStore(cfg.Cache.MemoryEntries, cfg.Cache.TTLSeconds), nil)
	}
	return NewCachedSource(src, store, namespace, logger), nil
}

func newPageStore(cfg *config.Config) (*cache.Tiered, error) {
	memory := cache.NewMemoryStore(cfg.Cache.MemoryEntries, cfg.Cache.TTLSeconds)

	dir, err := cfg.GetCacheDir()
	if err != nil {
		return nil, err
	}
	disk, err := cache.NewFileStore(dir, true, cfg.Cache.TTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("opening cache directory: %w", err)
	}
	return cache.NewTiered(memory, disk), nil
}
