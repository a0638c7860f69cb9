package router

// History is a stack of visited locations. The zero value is empty.
type History struct {
	entries []Location
}

// Push makes loc the current location.
func (h *History) Push(loc Location) {
	h.entries = append(h.entries, loc)
}

// Replace swaps the current location for loc, or pushes it when empty.
func (h *History) Replace(loc Location) {
	if len(h.entries) == 0 {
		h.Push(loc)
		return
	}
	h.entries[len(h.entries)-1] = loc
}

// Back pops the current location and returns the previous one. It reports
// false, leaving the history unchanged, when there is nothing to go back to.
func (h *History) Back() (Location, bool) {
	if len(h.entries) < 2 {
		return Location{}, false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.entries[len(h.entries)-1], true
}

// Current returns the current location.
func (h *History) Current() (Location, bool) {
	if len(h.entries) == 0 {
		return Location{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}
