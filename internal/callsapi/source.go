package callsapi

import (
	"context"
	"errors"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/pagination"
)

// Errors returned by sources.
var (
	ErrUnauthorized    = errors.New("unauthorized: run 'callhistory login' or set CALLHISTORY_TOKEN")
	ErrGraphQL         = errors.New("graphql error")
	ErrNotFound        = errors.New("call not found")
	ErrMissingEndpoint = errors.New("no API endpoint configured: set api.url or fixtures.file")
	ErrHTTPStatus      = errors.New("unexpected HTTP status")
)

// Source provides call pages and individual calls.
type Source interface {
	// PaginatedCalls returns one page. A nil result with a nil error means the
	// request completed without a usable payload.
	PaginatedCalls(ctx context.Context, req pagination.PageRequest) (*calls.PageResult, error)

	// Call returns a single call or ErrNotFound.
	Call(ctx context.Context, id string) (*calls.CallRecord, error)
}
