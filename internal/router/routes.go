package router

import (
	"fmt"
	"net/url"
	"regexp"
)

// RouteName identifies a screen.
type RouteName string

// Known routes.
const (
	RouteCalls      RouteName = "calls"
	RouteCallDetail RouteName = "call_detail"
	RouteNotFound   RouteName = "not_found"
)

// RouteSpec pairs a route with a regular expression over the location path.
// Named groups become Match.Params.
type RouteSpec struct {
	Name    RouteName
	Pattern string
}

// DefaultRoutes are the routes of the call history app.
//
//nolint:gochecknoglobals // Read-only route table.
var DefaultRoutes = []RouteSpec{
	{Name: RouteCalls, Pattern: `^/(calls/?)?$`},
	{Name: RouteCallDetail, Pattern: `^/calls/(?P<id>[^/]+)/?$`},
}

// Match is the result of resolving a location.
type Match struct {
	Route    RouteName
	Params   map[string]string
	Location Location
}

// Param returns the named path parameter, or "".
func (m Match) Param(name string) string {
	return m.Params[name]
}

type compiledRoute struct {
	name  RouteName
	regex *regexp.Regexp
}

// Table resolves locations to routes. The first matching route wins.
type Table struct {
	routes []compiledRoute
}

// NewTable compiles specs.
func NewTable(specs ...RouteSpec) (*Table, error) {
	t := &Table{routes: make([]compiledRoute, 0, len(specs))}
	for _, spec := range specs {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid route pattern %q: %w", spec.Pattern, err)
		}
		t.routes = append(t.routes, compiledRoute{name: spec.Name, regex: re})
	}
	return t, nil
}

// DefaultTable returns a table of DefaultRoutes.
func DefaultTable() *Table {
	t, err := NewTable(DefaultRoutes...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve matches loc against the table. Unmatched locations resolve to
// RouteNotFound.
func (t *Table) Resolve(loc Location) Match {
	for _, r := range t.routes {
		groups := r.regex.FindStringSubmatch(loc.Path)
		if groups == nil {
			continue
		}
		params := make(map[string]string)
		for i, name := range r.regex.SubexpNames() {
			if name == "" || i >= len(groups) {
				continue
			}
			value, err := url.PathUnescape(groups[i])
			if err != nil {
				value = groups[i]
			}
			params[name] = value
		}
		return Match{Route: r.name, Params: params, Location: loc}
	}
	return Match{Route: RouteNotFound, Params: map[string]string{}, Location: loc}
}
