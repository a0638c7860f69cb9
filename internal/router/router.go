package router

import (
	"maps"

	"github.com/rs/zerolog"
)

// Router combines a route table with a history. It is not safe for
// concurrent use; the TUI drives it from its update loop only.
type Router struct {
	table   *Table
	history History
	logger  zerolog.Logger
}

// New creates a router positioned at initial.
func New(table *Table, initial string, logger zerolog.Logger) (*Router, error) {
	loc, err := ParseLocation(initial)
	if err != nil {
		return nil, err
	}
	r := &Router{table: table, logger: logger.With().Str("component", "router").Logger()}
	r.history.Push(loc)
	return r, nil
}

// Navigate moves to and returns its match. A location that only changes the
// query of the current screen (a different page of the same list) replaces
// the current entry, so Back leaves the screen instead of stepping through
// every page visited.
func (r *Router) Navigate(to string) (Match, error) {
	loc, err := ParseLocation(to)
	if err != nil {
		return Match{}, err
	}
	m := r.table.Resolve(loc)
	cur := r.Current()
	if m.Route == cur.Route && maps.Equal(m.Params, cur.Params) {
		r.history.Replace(loc)
	} else {
		r.history.Push(loc)
	}
	r.logger.Debug().
		Str("location", loc.String()).
		Str("route", string(m.Route)).
		Int("depth", r.history.Len()).
		Msg("navigate")
	return m, nil
}

// Back returns to the previous location. It reports false when already at
// the first location.
func (r *Router) Back() (Match, bool) {
	loc, ok := r.history.Back()
	if !ok {
		return Match{}, false
	}
	m := r.table.Resolve(loc)
	r.logger.Debug().Str("location", loc.String()).Msg("back")
	return m, true
}

// Current resolves the current location.
func (r *Router) Current() Match {
	loc, _ := r.history.Current()
	return r.table.Resolve(loc)
}
