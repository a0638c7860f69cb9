package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/fetch"
	"github.com/rshade/callhistory/internal/pagination"
	"github.com/rshade/callhistory/internal/router"
)

func newCallsModel(src *fakeSource) CallsModel {
	return NewCallsModel(context.Background(), src, CallsOptions{PageSize: 25, Logger: zerolog.Nop()})
}

func location(t *testing.T, raw string) router.Location {
	t.Helper()
	loc, err := router.ParseLocation(raw)
	require.NoError(t, err)
	return loc
}

// visit delivers a location and completes the resulting fetch.
func visit(t *testing.T, m CallsModel, loc string) CallsModel {
	t.Helper()
	m, cmd := m.SetLocation(location(t, loc))
	return complete(t, m, cmd)
}

func complete(t *testing.T, m CallsModel, cmd tea.Cmd) CallsModel {
	t.Helper()
	loaded, ok := findMsg[PageLoadedMsg](drain(cmd))
	require.True(t, ok, "expected a page fetch")
	m, _ = m.Update(loaded)
	return m
}

func TestCallsModel_LoadsPageFromLocation(t *testing.T) {
	src := &fakeSource{total: 100}
	m := visit(t, newCallsModel(src), "/calls/?page=2")

	assert.Equal(t, pagination.PageRequest{Offset: 25, Limit: 25}, src.lastRequest())
	assert.Equal(t, 2, m.ActivePage())
	assert.Equal(t, fetch.KindReady, m.State().Kind)
	require.Len(t, m.Records(), 25)
	assert.Equal(t, "call-25", m.Records()[0].ID)
	assert.Equal(t, "call-49", m.Records()[24].ID)

	meta := m.Meta()
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasPrevious)
	assert.True(t, meta.HasNext)

	view := m.View()
	assert.Contains(t, view, "Calls History")
	assert.Contains(t, view, "page 2 of 4")
	assert.Contains(t, view, "25 per page")
	assert.Contains(t, view, "100 calls")
}

func TestCallsModel_PendingView(t *testing.T) {
	m, cmd := newCallsModel(&fakeSource{total: 5}).SetLocation(location(t, "/calls/"))
	require.NotNil(t, cmd)

	assert.Equal(t, fetch.KindPending, m.State().Kind)
	assert.Contains(t, m.View(), "Loading calls...")
	assert.NotContains(t, m.View(), "Calls History")
}

func TestCallsModel_FailedAndNotFound(t *testing.T) {
	m := visit(t, newCallsModel(&fakeSource{pageErr: errors.New("network down")}), "/calls/")
	assert.Equal(t, fetch.KindFailed, m.State().Kind)
	assert.Contains(t, m.View(), "ERROR")
	assert.NotContains(t, m.View(), "network down", "failure reason is not shown")
	assert.Empty(t, m.Records())

	m = visit(t, newCallsModel(&fakeSource{nilPage: true}), "/calls/")
	assert.Equal(t, fetch.KindNotFound, m.State().Kind)
	assert.Equal(t, "Not found", m.View())
}

func TestCallsModel_FailureAfterReadyDropsRecords(t *testing.T) {
	src := &fakeSource{total: 100}
	m := visit(t, newCallsModel(src), "/calls/")
	require.Equal(t, fetch.KindReady, m.State().Kind)
	require.Len(t, m.Records(), 25)

	src.mu.Lock()
	src.pageErr = errors.New("network down")
	src.mu.Unlock()

	m = visit(t, m, "/calls/?page=2")
	assert.Equal(t, fetch.KindFailed, m.State().Kind)
	assert.Empty(t, m.Records())
	view := m.View()
	assert.Contains(t, view, "ERROR")
	assert.NotContains(t, view, "Calls History")
	assert.NotContains(t, view, "per page")
	assert.NotContains(t, view, "+33 1 00")
}

func TestCallsModel_HugePageParamFallsBackToFirstPage(t *testing.T) {
	m := visit(t, newCallsModel(&fakeSource{total: 30}), "/calls/?page=368934881474191034")

	assert.Equal(t, pagination.PageRequest{Offset: 0, Limit: 25}, m.Request())
	assert.Equal(t, 1, m.ActivePage())
}

func TestCallsModel_EmptyTotalHidesControl(t *testing.T) {
	m := visit(t, newCallsModel(&fakeSource{total: 0}), "/calls/")

	assert.Equal(t, fetch.KindReady, m.State().Kind)
	assert.Empty(t, m.Records())
	view := m.View()
	assert.Contains(t, view, "Calls History")
	assert.NotContains(t, view, "per page")
}

func TestCallsModel_PageBeyondTotal(t *testing.T) {
	m := visit(t, newCallsModel(&fakeSource{total: 30}), "/calls/?page=9")

	assert.Equal(t, pagination.PageRequest{Offset: 200, Limit: 25}, m.Request())
	assert.Empty(t, m.Records())
	assert.Contains(t, m.View(), "30 calls", "control still shown for a non-zero total")
}

func TestCallsModel_MalformedPageParam(t *testing.T) {
	for _, loc := range []string{"/calls/?page=abc", "/calls/?page=0", "/calls/?page=-2", "/calls/?page=2abc", "/calls/?page="} {
		t.Run(loc, func(t *testing.T) {
			src := &fakeSource{total: 10}
			m := visit(t, newCallsModel(src), loc)
			assert.Equal(t, 1, m.ActivePage())
			assert.Equal(t, 0, src.lastRequest().Offset)
		})
	}
}

func TestCallsModel_StaleResponseDiscarded(t *testing.T) {
	src := &fakeSource{total: 100}
	m := newCallsModel(src)

	m, first := m.SetLocation(location(t, "/calls/?page=1"))
	m, second := m.SetLocation(location(t, "/calls/?page=3"))

	firstLoaded, ok := findMsg[PageLoadedMsg](drain(first))
	require.True(t, ok)
	secondLoaded, ok := findMsg[PageLoadedMsg](drain(second))
	require.True(t, ok)

	m, _ = m.Update(secondLoaded)
	m, _ = m.Update(firstLoaded)

	assert.Equal(t, 3, m.ActivePage())
	require.NotEmpty(t, m.Records())
	assert.Equal(t, "call-50", m.Records()[0].ID, "late page 1 response must not overwrite page 3")

	// A stale response arriving while the current one is pending is ignored too.
	m, third := m.SetLocation(location(t, "/calls/?page=2"))
	m, _ = m.Update(firstLoaded)
	assert.Equal(t, fetch.KindPending, m.State().Kind)
	m = complete(t, m, third)
	assert.Equal(t, "call-25", m.Records()[0].ID)
}

func TestCallsModel_SameLocationDoesNotRefetch(t *testing.T) {
	src := &fakeSource{total: 100}
	m := visit(t, newCallsModel(src), "/calls/?page=2")
	require.Equal(t, 1, src.requestCount())

	m, cmd := m.SetLocation(location(t, "/calls/?page=2"))
	assert.Nil(t, cmd)
	assert.Equal(t, fetch.KindReady, m.State().Kind)
}

func TestCallsModel_PageKeysEmitNavigation(t *testing.T) {
	src := &fakeSource{total: 100}
	m := visit(t, newCallsModel(src), "/calls/?page=2")

	tests := []struct {
		name string
		key  tea.KeyMsg
		want string
	}{
		{"right", tea.KeyMsg{Type: tea.KeyRight}, "/calls/?page=3"},
		{"l", keyRunes("l"), "/calls/?page=3"},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, "/calls/?page=1"},
		{"h", keyRunes("h"), "/calls/?page=1"},
		{"first", keyRunes("g"), "/calls/?page=1"},
		{"last", keyRunes("G"), "/calls/?page=4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, cmd := m.Update(tt.key)
			nav, ok := findMsg[NavigateMsg](drain(cmd))
			require.True(t, ok)
			assert.Equal(t, tt.want, nav.To)
			assert.Equal(t, 2, next.ActivePage(), "active page changes only when the location does")
		})
	}
}

func TestCallsModel_PageKeysAtBounds(t *testing.T) {
	src := &fakeSource{total: 50}
	first := visit(t, newCallsModel(src), "/calls/?page=1")
	_, cmd := first.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)
	_, cmd = first.Update(keyRunes("g"))
	assert.Nil(t, cmd)

	last := visit(t, newCallsModel(src), "/calls/?page=2")
	_, cmd = last.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	_, cmd = last.Update(keyRunes("G"))
	assert.Nil(t, cmd)
}

func TestCallsModel_NextPageNeedsReadyState(t *testing.T) {
	m, _ := newCallsModel(&fakeSource{total: 100}).SetLocation(location(t, "/calls/"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
}

func TestCallsModel_PageSizeChangeKeepsActivePage(t *testing.T) {
	src := &fakeSource{total: 500}
	m := visit(t, newCallsModel(src), "/calls/?page=3")
	require.Equal(t, pagination.PageRequest{Offset: 50, Limit: 25}, m.Request())

	m, cmd := m.Update(keyRunes("+"))
	assert.Equal(t, 50, m.PageSize())
	assert.Equal(t, 3, m.ActivePage())
	assert.Equal(t, fetch.KindPending, m.State().Kind)
	m = complete(t, m, cmd)
	assert.Equal(t, pagination.PageRequest{Offset: 100, Limit: 50}, src.lastRequest())

	m, cmd = m.Update(keyRunes("-"))
	m, cmd2 := m.Update(keyRunes("-"))
	assert.Equal(t, 10, m.PageSize())
	m = complete(t, m, cmd2)
	_, ok := findMsg[PageLoadedMsg](drain(cmd))
	require.True(t, ok)
	assert.Equal(t, pagination.PageRequest{Offset: 20, Limit: 10}, m.Request())

	_, cmd = m.Update(keyRunes("-"))
	assert.Nil(t, cmd, "already at the smallest size")
}

func TestCallsModel_EnterOpensSelectedCall(t *testing.T) {
	m := visit(t, newCallsModel(&fakeSource{total: 10}), "/calls/")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	nav, ok := findMsg[NavigateMsg](drain(cmd))
	require.True(t, ok)
	assert.Equal(t, "/calls/call-1", nav.To)
}

func TestCallsModel_RendersProjectedCards(t *testing.T) {
	m := visit(t, newCallsModel(&fakeSource{total: 2}), "/calls/")

	records := m.Records()
	require.Len(t, records, 2)
	assert.Equal(t, calls.IconDown, records[0].IconKind)
	assert.Equal(t, "Missed call", records[0].Title)
	assert.False(t, records[0].HasNoteSummary())
	assert.Equal(t, calls.IconUp, records[1].IconKind)
	assert.Equal(t, "to +33 9 99", records[1].Subtitle)
	assert.Equal(t, "Call has 2 notes", records[1].NoteSummary)

	view := m.View()
	assert.Contains(t, view, "Missed call")
	assert.Contains(t, view, "from +33 1 00")
	assert.Contains(t, view, "1m 05s")
	assert.Contains(t, view, "Call has 2 notes")
}

func TestCallsModel_ThousandsSeparator(t *testing.T) {
	m := visit(t, newCallsModel(&fakeSource{total: 1204}), "/calls/")
	assert.Contains(t, m.View(), "1,204 calls")
}

type prefetchingSource struct {
	*fakeSource
	prefetched []pagination.PageRequest
}

func (p *prefetchingSource) Prefetch(_ context.Context, reqs ...pagination.PageRequest) error {
	p.prefetched = append(p.prefetched, reqs...)
	return nil
}

func TestCallsModel_PrefetchesNextPage(t *testing.T) {
	src := &prefetchingSource{fakeSource: &fakeSource{total: 60}}
	m := NewCallsModel(context.Background(), src, CallsOptions{PageSize: 25, Logger: zerolog.Nop()})

	m, cmd := m.SetLocation(location(t, "/calls/"))
	loaded, ok := findMsg[PageLoadedMsg](drain(cmd))
	require.True(t, ok)
	_, cmd = m.Update(loaded)
	drain(cmd)

	assert.Equal(t, []pagination.PageRequest{{Offset: 25, Limit: 25}}, src.prefetched)
}

func TestRenderCard_NoteLine(t *testing.T) {
	d := calls.DisplayRecord{ID: "c1", Title: "Alice", Subtitle: "+1 555 0100", DurationText: "1m 5s", DateText: "Mar 3"}
	without := renderCard(d, false)

	d.NoteSummary = "Call has 2 notes"
	with := renderCard(d, false)

	assert.Contains(t, with, "Call has 2 notes")
	assert.NotContains(t, without, "notes")
	assert.Equal(t, strings.Count(with, "\n"), strings.Count(without, "\n"), "cards keep a fixed height")
}
