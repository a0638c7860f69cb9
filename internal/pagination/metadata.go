package pagination

// PaginationMeta contains metadata about one page of calls. Offset is the
// index of the first call on the page; in offset mode it need not be a
// multiple of PageSize, and CurrentPage is then the page containing it.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage       int  `json:"current_page"        yaml:"current_page"`
	Offset            int  `json:"offset"              yaml:"offset"`
	PageSize          int  `json:"page_size"           yaml:"page_size"`
	TotalPages        int  `json:"total_pages"         yaml:"total_pages"`
	RecordsTotalCount int  `json:"records_total_count" yaml:"records_total_count"`
	HasPrevious       bool `json:"has_previous"        yaml:"has_previous"`
	HasNext           bool `json:"has_next"            yaml:"has_next"`
}

// NewPaginationMeta creates pagination metadata for the active page.
func NewPaginationMeta(activePage, pageSize, totalCount int) PaginationMeta {
	if activePage < MinPage {
		activePage = DefaultPage
	}
	if pageSize < 0 {
		pageSize = 0
	}
	totalPages := TotalPages(totalCount, pageSize)

	return PaginationMeta{
		CurrentPage:       activePage,
		Offset:            BuildRequest(activePage, pageSize).Offset,
		PageSize:          pageSize,
		TotalPages:        totalPages,
		RecordsTotalCount: totalCount,
		HasPrevious:       activePage > MinPage,
		HasNext:           activePage < totalPages,
	}
}

// LastPage returns the last reachable page, never less than 1.
func (m PaginationMeta) LastPage() int {
	if m.TotalPages < MinPage {
		return MinPage
	}
	return m.TotalPages
}
