package router

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rshade/callhistory/internal/pagination"
)

// Location is a parsed in-app path with its query string.
type Location struct {
	Path  string
	Query url.Values
}

// ParseLocation parses raw, which must be an absolute path such as
// "/calls/?page=3".
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("parsing location %q: %w", raw, err)
	}
	if u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return Location{}, fmt.Errorf("location %q must be an absolute path", raw)
	}
	return Location{Path: u.EscapedPath(), Query: u.Query()}, nil
}

// Param returns the first value of the query parameter name, or "".
func (l Location) Param(name string) string {
	if l.Query == nil {
		return ""
	}
	return l.Query.Get(name)
}

func (l Location) String() string {
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + l.Query.Encode()
}

// PageParam returns the 1-based page named by the location's "page" query
// parameter. Missing or malformed values give page 1.
func PageParam(l Location) int {
	return pagination.ParsePage(l.Param("page"))
}

// PagePath is the location of page p of the call list.
func PagePath(p int) string {
	return fmt.Sprintf("/calls/?page=%d", p)
}

// CallDetailPath is the location of a single call.
func CallDetailPath(id string) string {
	return "/calls/" + url.PathEscape(id)
}
