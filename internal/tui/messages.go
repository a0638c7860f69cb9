package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/pagination"
	"github.com/rshade/callhistory/internal/router"
)

// NavigateMsg asks the app to move to a new location.
type NavigateMsg struct {
	To string
}

// BackMsg asks the app to return to the previous location.
type BackMsg struct{}

// LocationChangedMsg tells a screen the location it is showing.
type LocationChangedMsg struct {
	Match router.Match
}

// PageLoadedMsg carries the result of one page fetch.
type PageLoadedMsg struct {
	Generation uint64
	Request    pagination.PageRequest
	Page       *calls.PageResult
	Err        error
}

// CallLoadedMsg carries the result of one call fetch.
type CallLoadedMsg struct {
	Generation uint64
	ID         string
	Record     *calls.CallRecord
	Err        error
}

// Navigate returns a command emitting NavigateMsg{To: to}.
func Navigate(to string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: to} }
}

// Back returns a command emitting BackMsg.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}
