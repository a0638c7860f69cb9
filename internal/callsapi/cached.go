package callsapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/rshade/callhistory/internal/cache"
	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/logging"
	"github.com/rshade/callhistory/internal/pagination"
)

// maxPrefetch bounds concurrent upstream requests issued by Prefetch.
const maxPrefetch = 4

// CachedSource serves pages from a cache.Store before asking next. Concurrent
// misses for the same key share one upstream call. Null payloads and errors
// are never cached.
type CachedSource struct {
	next      Source
	store     cache.Store
	namespace string
	group     singleflight.Group
	logger    zerolog.Logger
}

// NewCachedSource wraps next. namespace separates cache keys of different
// endpoints sharing one store.
func NewCachedSource(next Source, store cache.Store, namespace string, logger zerolog.Logger) *CachedSource {
	return &CachedSource{
		next:      next,
		store:     store,
		namespace: namespace,
		logger:    logging.ComponentLogger(logger, "callsapi.cache"),
	}
}

// PaginatedCalls returns the cached page or fetches and stores it.
func (s *CachedSource) PaginatedCalls(ctx context.Context, req pagination.PageRequest) (*calls.PageResult, error) {
	key, err := cache.PageKey(s.namespace, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	var page calls.PageResult
	if s.lookup(key, &page) {
		s.logger.Debug().Int("offset", req.Offset).Int("limit", req.Limit).Msg("page cache hit")
		return &page, nil
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		result, fetchErr := s.next.PaginatedCalls(ctx, req)
		if fetchErr != nil || result == nil {
			return result, fetchErr
		}
		s.save(key, result)
		return result, nil
	})
	if shared {
		s.logger.Debug().Int("offset", req.Offset).Msg("joined in-flight page request")
	}
	if err != nil {
		return nil, err
	}
	result, _ := v.(*calls.PageResult)
	return result, nil
}

// Call returns the cached call or fetches and stores it.
func (s *CachedSource) Call(ctx context.Context, id string) (*calls.CallRecord, error) {
	key, err := cache.CallKey(s.namespace, id)
	if err != nil {
		return nil, err
	}

	var record calls.CallRecord
	if s.lookup(key, &record) {
		return &record, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		result, fetchErr := s.next.Call(ctx, id)
		if fetchErr != nil {
			return nil, fetchErr
		}
		s.save(key, result)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	result, _ := v.(*calls.CallRecord)
	return result, nil
}

// Prefetch warms the cache for reqs. Failures are logged, not returned,
// except for context cancellation.
func (s *CachedSource) Prefetch(ctx context.Context, reqs ...pagination.PageRequest) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxPrefetch)
	for _, req := range reqs {
		req := req
		g.Go(func() error {
			if _, err := s.PaginatedCalls(gctx, req); err != nil {
				s.logger.Debug().Err(err).Int("offset", req.Offset).Msg("prefetch failed")
			}
			return gctx.Err()
		})
	}
	return g.Wait()
}

// Invalidate drops every cached page and call.
func (s *CachedSource) Invalidate() error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clearing page cache: %w", err)
	}
	return nil
}

func (s *CachedSource) lookup(key string, out any) bool {
	entry, err := s.store.Get(key)
	if err != nil {
		if !cache.IsMiss(err) {
			s.logger.Warn().Err(err).Msg("page cache read failed")
		}
		return false
	}
	if err = entry.Decode(out); err != nil {
		s.logger.Warn().Err(err).Msg("discarding undecodable cache entry")
		_ = s.store.Delete(key)
		return false
	}
	return true
}

func (s *CachedSource) save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn().Err(err).Msg("encoding cache entry")
		return
	}
	if err = s.store.Set(key, data); err != nil {
		s.logger.Warn().Err(err).Msg("page cache write failed")
	}
}
