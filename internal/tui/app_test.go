package tui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/callhistory/internal/fetch"
	"github.com/rshade/callhistory/internal/pagination"
	"github.com/rshade/callhistory/internal/router"
)

// pump feeds the messages produced by cmd back into the app until it settles.
// Spinner ticks and quit are not looped.
func pump(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	queue := drain(cmd)
	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 100, "message loop did not settle")
		msg := queue[0]
		queue = queue[1:]
		switch msg.(type) {
		case spinner.TickMsg, tea.QuitMsg:
			continue
		}
		model, next := a.Update(msg)
		a = model.(App)
		queue = append(queue, drain(next)...)
	}
	return a
}

func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	model, cmd := a.Update(msg)
	return pump(t, model.(App), cmd)
}

func startApp(t *testing.T, src *fakeSource, initial string) App {
	t.Helper()
	a, err := NewApp(context.Background(), src, AppOptions{
		InitialLocation: initial,
		PageSize:        25,
		Logger:          zerolog.Nop(),
	})
	require.NoError(t, err)
	return pump(t, a, a.Init())
}

func TestApp_StartsOnCallsList(t *testing.T) {
	src := &fakeSource{total: 40}
	a := startApp(t, src, "")

	assert.Equal(t, router.RouteCalls, a.Route())
	assert.Equal(t, fetch.KindReady, a.Calls().State().Kind)
	assert.Equal(t, pagination.PageRequest{Offset: 0, Limit: 25}, src.lastRequest())
	assert.Contains(t, a.View(), "page 1 of 2")
}

func TestApp_InvalidInitialLocation(t *testing.T) {
	_, err := NewApp(context.Background(), &fakeSource{}, AppOptions{InitialLocation: "https://example.com/calls/"})
	assert.Error(t, err)
}

func TestApp_NextPageFollowsLocation(t *testing.T) {
	src := &fakeSource{total: 60}
	a := startApp(t, src, "/calls/")

	a = send(t, a, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, a.Calls().ActivePage())
	assert.Equal(t, pagination.PageRequest{Offset: 25, Limit: 25}, src.lastRequest())
	assert.Equal(t, "call-25", a.Calls().Records()[0].ID)

	a = send(t, a, BackMsg{})
	assert.Equal(t, 1, a.Calls().ActivePage())
	assert.Equal(t, "call-0", a.Calls().Records()[0].ID)
}

func TestApp_DetailAndBackKeepsPage(t *testing.T) {
	src := &fakeSource{total: 100}
	a := startApp(t, src, "/calls/?page=2")
	require.Equal(t, 1, src.requestCount())

	a = send(t, a, tea.KeyMsg{Type: tea.KeyDown})
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, router.RouteCallDetail, a.Route())
	require.NotNil(t, a.Detail().Record())
	assert.Equal(t, "call-26", a.Detail().Record().ID)

	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, router.RouteCalls, a.Route())
	assert.Equal(t, 2, a.Calls().ActivePage())
	assert.Equal(t, 1, src.requestCount(), "returning to the same page does not refetch")
	assert.Contains(t, a.View(), "page 2 of 4")
}

func TestApp_BackSkipsPagesVisited(t *testing.T) {
	src := &fakeSource{total: 100}
	a := startApp(t, src, "/calls/")

	a = send(t, a, tea.KeyMsg{Type: tea.KeyRight})
	a = send(t, a, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 3, a.Calls().ActivePage())

	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, router.RouteCallDetail, a.Route())

	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, router.RouteCalls, a.Route())
	assert.Equal(t, 3, a.Calls().ActivePage())

	_, ok := a.router.Back()
	assert.False(t, ok, "page changes replace the history entry")
}

func TestApp_DirectDetailLocation(t *testing.T) {
	src := &fakeSource{total: 10}
	a := startApp(t, src, "/calls/abc%2F1")

	assert.Equal(t, router.RouteCallDetail, a.Route())
	assert.Equal(t, "abc/1", a.Detail().CallID())
	assert.Zero(t, src.requestCount())

	// No history: back lands on the first page.
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, router.RouteCalls, a.Route())
	assert.Equal(t, 1, a.Calls().ActivePage())
}

func TestApp_UnknownLocation(t *testing.T) {
	a := startApp(t, &fakeSource{total: 10}, "/settings")
	assert.Equal(t, router.RouteNotFound, a.Route())
	assert.Equal(t, "Not found", a.View())

	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, router.RouteCalls, a.Route())
}

func TestApp_InvalidNavigationIgnored(t *testing.T) {
	src := &fakeSource{total: 10}
	a := startApp(t, src, "/calls/")

	a = send(t, a, NavigateMsg{To: "https://elsewhere/"})
	assert.Equal(t, router.RouteCalls, a.Route())
	assert.Equal(t, 1, src.requestCount())
}

func TestApp_Quit(t *testing.T) {
	a := startApp(t, &fakeSource{total: 10}, "/calls/")
	_, cmd := a.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_WindowSizeReachesBothScreens(t *testing.T) {
	a := startApp(t, &fakeSource{total: 10}, "/calls/")
	a = send(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, a.Calls().width)
	assert.Equal(t, 120, a.Detail().width)
}
