package pagination

import (
	"errors"
	"fmt"
)

// Common validation errors.
var (
	ErrInvalidPage          = fmt.Errorf("page must be between %d and %d", MinPage, MaxPage)
	ErrInvalidPageSize      = fmt.Errorf("page-size must be between %d and %d", MinPageSize, MaxPageSize)
	ErrInvalidOffset        = errors.New("offset must be non-negative")
	ErrInvalidLimit         = fmt.Errorf("limit must be between %d and %d", MinPageSize, MaxPageSize)
	ErrMixedPaginationModes = errors.New("cannot use both offset-based (--offset/--limit) and page-based (--page) pagination")
)

// PaginationParams holds CLI pagination flags and provides validation.
// Supports two pagination modes:
//   - Page-based: --page and --page-size (the default)
//   - Offset-based: --offset and --limit
//
// These modes are mutually exclusive.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	// Page is the 1-based page number (page-based mode).
	Page int

	// PageSize is the number of calls per page (page-based mode).
	PageSize int

	// Offset is the number of calls to skip (offset-based mode).
	Offset int

	// Limit is the maximum number of calls to return (offset-based mode).
	Limit int
}

// NewPaginationParams creates PaginationParams for page 1 at the given size.
func NewPaginationParams(pageSize int) *PaginationParams {
	if pageSize < MinPageSize {
		pageSize = DefaultPageSize
	}
	return &PaginationParams{
		Page:     DefaultPage,
		PageSize: pageSize,
	}
}

// Validate checks that the parameters are in range and use a single mode.
func (p PaginationParams) Validate() error {
	if p.IsOffsetBased() {
		if p.Page > DefaultPage {
			return ErrMixedPaginationModes
		}
		if p.Offset < 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidOffset, p.Offset)
		}
		if p.Limit < MinPageSize || p.Limit > MaxPageSize {
			return fmt.Errorf("%w: got %d", ErrInvalidLimit, p.Limit)
		}
		return nil
	}

	if p.Page < MinPage || p.Page > MaxPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// IsOffsetBased returns true if --offset or --limit were given.
func (p PaginationParams) IsOffsetBased() bool {
	return p.Offset != 0 || p.Limit != 0
}

// Request returns the PageRequest for these parameters.
func (p PaginationParams) Request() PageRequest {
	if p.IsOffsetBased() {
		return PageRequest{Offset: p.Offset, Limit: p.Limit}
	}
	return BuildRequest(p.Page, p.PageSize)
}

// EffectivePage returns the page the request starts on. In offset mode the
// offset is mapped onto the page grid of the limit, so an offset that is not
// a multiple of the limit reports the page containing its first call.
func (p PaginationParams) EffectivePage() int {
	if !p.IsOffsetBased() {
		return p.Page
	}
	if p.Limit <= 0 {
		return DefaultPage
	}
	return p.Offset/p.Limit + 1
}

// EffectivePageSize returns the page size in either mode.
func (p PaginationParams) EffectivePageSize() int {
	if p.IsOffsetBased() {
		return p.Limit
	}
	return p.PageSize
}
