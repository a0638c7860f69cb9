package pagination

import (
	"math"
	"strconv"
	"strings"
)

// Page and page-size defaults.
const (
	DefaultPage     = 1
	MinPage         = 1
	DefaultPageSize = 25
	MinPageSize     = 1
	MaxPageSize     = 1000

	// MaxPage is the largest page whose offset fits in an int at MaxPageSize.
	MaxPage = math.MaxInt/MaxPageSize + 1
)

// DefaultPageSizeOptions are the page sizes a user can cycle through.
//
//nolint:gochecknoglobals // Read-only defaults; callers copy before modifying.
var DefaultPageSizeOptions = []int{10, 25, 50, 100}

// PageRequest is the offset/limit descriptor sent to the calls API.
type PageRequest struct {
	Offset int `json:"offset" yaml:"offset"`
	Limit  int `json:"limit"  yaml:"limit"`
}

// BuildRequest derives the request for a 1-based page. Inputs are expected to
// already be coerced (activePage >= 1, pageSize > 0); pages past MaxPage are
// clamped so the offset never overflows.
func BuildRequest(activePage, pageSize int) PageRequest {
	if pageSize > 0 && activePage-1 > math.MaxInt/pageSize {
		activePage = math.MaxInt/pageSize + 1
	}
	return PageRequest{
		Offset: (activePage - 1) * pageSize,
		Limit:  pageSize,
	}
}

// ParsePage reads a raw page parameter. Missing, non-numeric, non-positive
// and out-of-range values all resolve to DefaultPage.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < MinPage || page > MaxPage {
		return DefaultPage
	}
	return page
}

// TotalPages returns the number of pages needed for totalCount records.
func TotalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	pages := totalCount / pageSize
	if totalCount%pageSize > 0 {
		pages++
	}
	return pages
}

// ShowControl reports whether the pagination control is rendered for a page.
// A total count of zero hides the control, exactly like a missing count.
func ShowControl(totalCount int) bool {
	return totalCount != 0
}

// StepPageSize moves from current to the neighbouring option in options.
// A positive step picks the next larger option, a negative step the next
// smaller one. If current is not an option, the closest option in the step
// direction is returned. The result is clamped to the ends of options.
func StepPageSize(current int, options []int, step int) int {
	if len(options) == 0 {
		return current
	}

	idx := -1
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}

	if idx < 0 {
		return nearestOption(current, options, step)
	}

	switch {
	case step > 0 && idx < len(options)-1:
		return options[idx+1]
	case step < 0 && idx > 0:
		return options[idx-1]
	default:
		return current
	}
}

func nearestOption(current int, options []int, step int) int {
	if step >= 0 {
		for _, opt := range options {
			if opt > current {
				return opt
			}
		}
		return options[len(options)-1]
	}
	for i := len(options) - 1; i >= 0; i-- {
		if options[i] < current {
			return options[i]
		}
	}
	return options[0]
}
