package fetch

// Generation numbers requests issued by one controller. The zero value is
// ready to use. It is not safe for concurrent use; it belongs to the event
// loop that issues requests.
type Generation struct {
	current uint64
}

// Next starts a new request and returns its tag. Any earlier tag becomes stale.
func (g *Generation) Next() uint64 {
	g.current++
	return g.current
}

// Current returns the tag of the most recently issued request.
func (g *Generation) Current() uint64 {
	return g.current
}

// IsCurrent reports whether tag belongs to the most recently issued request.
func (g *Generation) IsCurrent(tag uint64) bool {
	return tag == g.current
}
