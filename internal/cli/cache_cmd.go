package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/callhistory/internal/cache"
	"github.com/rshade/callhistory/internal/config"
)

// newCacheCmd creates the cache command group for the on-disk page cache.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cache", Short: "Page cache commands"}
	cmd.AddCommand(newCacheStatsCmd(), newCachePruneCmd(), newCacheClearCmd())
	return cmd
}

func newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show where pages are cached and how many entries exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openDiskCache(config.GetGlobalConfig())
			if err != nil {
				return err
			}
			if !store.IsEnabled() {
				cmd.Println("Cache disabled")
				return nil
			}
			count, err := store.Count()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Directory: %s\nEntries:   %d\n", store.Directory(), count)
			return nil
		},
	}
}

func newCachePruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove expired cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openDiskCache(config.GetGlobalConfig())
			if err != nil {
				return err
			}
			if err = store.CleanupExpired(); err != nil {
				return cacheErr(err)
			}
			cmd.Println("Expired entries removed")
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cache entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openDiskCache(config.GetGlobalConfig())
			if err != nil {
				return err
			}
			if err = store.Clear(); err != nil {
				return cacheErr(err)
			}
			cmd.Println("Cache cleared")
			return nil
		},
	}
}

// openDiskCache opens the page cache directory described by cfg.
func openDiskCache(cfg *config.Config) (*cache.FileStore, error) {
	dir, err := cfg.GetCacheDir()
	if err != nil {
		return nil, err
	}
	store, err := cache.NewFileStore(dir, cfg.Cache.Enabled, cfg.Cache.TTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("opening page cache: %w", err)
	}
	return store, nil
}

func cacheErr(err error) error {
	if errors.Is(err, cache.ErrCacheDisabled) {
		return fmt.Errorf("%w (set cache.enabled to true)", err)
	}
	return err
}
