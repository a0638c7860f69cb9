package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/callsapi"
	"github.com/rshade/callhistory/internal/fetch"
	"github.com/rshade/callhistory/internal/format"
	"github.com/rshade/callhistory/internal/pagination"
	"github.com/rshade/callhistory/internal/router"
	listview "github.com/rshade/callhistory/internal/tui/list"
)

// Placeholders rendered instead of the list.
const (
	msgLoadingCalls = "Loading calls..."
	msgError        = "ERROR"
	msgNotFound     = "Not found"
	headerCalls     = "Calls History"
)

// Prefetcher is implemented by sources that can warm pages ahead of use.
type Prefetcher interface {
	Prefetch(ctx context.Context, reqs ...pagination.PageRequest) error
}

// CallsOptions configures a CallsModel.
type CallsOptions struct {
	PageSize        int
	PageSizeOptions []int
	Formatter       calls.Formatter
	Logger          zerolog.Logger
}

// CallsModel is the paginated call list. The active page always comes from
// the location; the model only asks for a different page by emitting a
// NavigateMsg. Page size is owned here and changes refetch immediately.
type CallsModel struct {
	ctx       context.Context
	source    callsapi.Source
	formatter calls.Formatter
	logger    zerolog.Logger

	keys    CallsKeyMap
	help    help.Model
	loading LoadingState
	printer *message.Printer

	pageSize        int
	pageSizeOptions []int

	activePage int
	request    pagination.PageRequest
	started    bool
	gen        fetch.Generation
	outcome    fetch.Outcome
	state      fetch.State

	records   []calls.DisplayRecord
	list      *listview.VirtualListModel[calls.DisplayRecord]
	paginator paginator.Model

	width  int
	height int
}

// NewCallsModel creates the list screen. Nothing is fetched until the first
// location arrives.
func NewCallsModel(ctx context.Context, source callsapi.Source, opts CallsOptions) CallsModel {
	options := opts.PageSizeOptions
	if len(options) == 0 {
		options = pagination.DefaultPageSizeOptions
	}
	pageSize := opts.PageSize
	if pageSize < pagination.MinPageSize {
		pageSize = pagination.DefaultPageSize
	}
	formatter := opts.Formatter
	if formatter == nil {
		formatter = format.New(nil)
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.ArabicFormat = "page %d of %d"

	m := CallsModel{
		ctx:             ctx,
		source:          source,
		formatter:       formatter,
		logger:          opts.Logger.With().Str("component", "calls").Logger(),
		keys:            DefaultCallsKeyMap(),
		help:            help.New(),
		loading:         NewLoadingState(msgLoadingCalls),
		printer:         message.NewPrinter(language.English),
		pageSize:        pageSize,
		pageSizeOptions: options,
		activePage:      pagination.DefaultPage,
		paginator:       p,
		width:           defaultWidth,
		height:          defaultHeight,
	}
	m.list = listview.NewVirtualListModel(nil, m.listHeight(), m.width, renderCard)
	m.list.SetItemHeight(cardLines)
	m.state = fetch.Resolve(fetch.Pending())
	return m
}

// Update handles page results, keys and resizes.
func (m CallsModel) Update(msg tea.Msg) (CallsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case LocationChangedMsg:
		return m.SetLocation(msg.Match.Location)
	case PageLoadedMsg:
		return m.handlePageLoaded(msg)
	case spinner.TickMsg:
		if m.state.Kind != fetch.KindPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(m.width, m.listHeight())
		m.help.Width = m.width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// SetLocation re-derives the active page from loc and fetches when the
// resulting request differs from the current one.
func (m CallsModel) SetLocation(loc router.Location) (CallsModel, tea.Cmd) {
	m.activePage = router.PageParam(loc)
	if m.started && pagination.BuildRequest(m.activePage, m.pageSize) == m.request {
		return m, nil
	}
	return m.startFetch()
}

func (m CallsModel) handleKey(msg tea.KeyMsg) (CallsModel, tea.Cmd) {
	meta := m.Meta()
	switch {
	case key.Matches(msg, m.keys.PrevPage):
		if meta.HasPrevious {
			return m, Navigate(router.PagePath(m.activePage - 1))
		}
	case key.Matches(msg, m.keys.NextPage):
		if m.state.Kind == fetch.KindReady && meta.HasNext {
			return m, Navigate(router.PagePath(m.activePage + 1))
		}
	case key.Matches(msg, m.keys.FirstPage):
		if m.activePage != pagination.DefaultPage {
			return m, Navigate(router.PagePath(pagination.DefaultPage))
		}
	case key.Matches(msg, m.keys.LastPage):
		if m.state.Kind == fetch.KindReady && meta.TotalPages > 0 && m.activePage != meta.LastPage() {
			return m, Navigate(router.PagePath(meta.LastPage()))
		}
	case key.Matches(msg, m.keys.Bigger):
		return m.SetPageSize(pagination.StepPageSize(m.pageSize, m.pageSizeOptions, 1))
	case key.Matches(msg, m.keys.Smaller):
		return m.SetPageSize(pagination.StepPageSize(m.pageSize, m.pageSizeOptions, -1))
	case key.Matches(msg, m.keys.Open):
		if m.state.Kind != fetch.KindReady {
			return m, nil
		}
		if item := m.list.SelectedItem(); item != nil {
			return m, Navigate(router.CallDetailPath(item.ID))
		}
	default:
		if m.state.Kind == fetch.KindReady {
			m.list.Update(msg)
		}
	}
	return m, nil
}

// SetPageSize changes the page size and refetches with the active page left
// as it is, so the new offset is (activePage-1)*size.
func (m CallsModel) SetPageSize(size int) (CallsModel, tea.Cmd) {
	if size < pagination.MinPageSize || size == m.pageSize {
		return m, nil
	}
	m.logger.Debug().Int("from", m.pageSize).Int("to", size).Int("page", m.activePage).Msg("page size changed")
	m.pageSize = size
	return m.startFetch()
}

func (m CallsModel) startFetch() (CallsModel, tea.Cmd) {
	m.started = true
	m.request = pagination.BuildRequest(m.activePage, m.pageSize)
	tag := m.gen.Next()
	m.outcome = fetch.Pending()
	m.state = fetch.Resolve(m.outcome)

	m.logger.Debug().
		Uint64("generation", tag).
		Int("offset", m.request.Offset).
		Int("limit", m.request.Limit).
		Msg("fetching calls")

	return m, tea.Batch(m.fetchCmd(tag, m.request), m.loading.Tick())
}

func (m CallsModel) fetchCmd(tag uint64, req pagination.PageRequest) tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		page, err := source.PaginatedCalls(ctx, req)
		return PageLoadedMsg{Generation: tag, Request: req, Page: page, Err: err}
	}
}

func (m CallsModel) handlePageLoaded(msg PageLoadedMsg) (CallsModel, tea.Cmd) {
	if !m.gen.IsCurrent(msg.Generation) {
		m.logger.Debug().
			Uint64("generation", msg.Generation).
			Uint64("current", m.gen.Current()).
			Msg("discarding stale page")
		return m, nil
	}

	m.outcome = fetch.Completed(msg.Page, msg.Err)
	m.state = fetch.Resolve(m.outcome)

	switch m.state.Kind {
	case fetch.KindFailed:
		m.logger.Error().Err(m.state.Reason).Int("offset", msg.Request.Offset).Msg("loading calls failed")
		m.records = nil
	case fetch.KindNotFound:
		m.logger.Warn().Int("offset", msg.Request.Offset).Msg("calls response had no payload")
		m.records = nil
	case fetch.KindReady:
		m.records = calls.ProjectAll(m.state.Nodes, m.formatter)
		m.list.SetItems(m.records)
		m.paginator.PerPage = m.pageSize
		m.paginator.SetTotalPages(m.state.TotalCount)
		m.paginator.Page = m.activePage - 1
		return m, m.prefetchCmd()
	case fetch.KindPending:
	}
	return m, nil
}

// prefetchCmd warms the next page when the source supports it.
func (m CallsModel) prefetchCmd() tea.Cmd {
	p, ok := m.source.(Prefetcher)
	if !ok || !m.Meta().HasNext {
		return nil
	}
	ctx, next := m.ctx, pagination.BuildRequest(m.activePage+1, m.pageSize)
	return func() tea.Msg {
		_ = p.Prefetch(ctx, next)
		return nil
	}
}

func (m CallsModel) listHeight() int {
	return max(m.height-chromeLines, cardLines)
}

// ActivePage returns the page derived from the current location.
func (m CallsModel) ActivePage() int { return m.activePage }

// PageSize returns the current page size.
func (m CallsModel) PageSize() int { return m.pageSize }

// Request returns the most recently issued request.
func (m CallsModel) Request() pagination.PageRequest { return m.request }

// State returns the resolved render state of the current request.
func (m CallsModel) State() fetch.State { return m.state }

// Records returns the projected records of the current page.
func (m CallsModel) Records() []calls.DisplayRecord { return m.records }

// Meta returns the pagination metadata for the current page. Totals are zero
// until a page is ready.
func (m CallsModel) Meta() pagination.PaginationMeta {
	total := 0
	if m.state.Kind == fetch.KindReady {
		total = m.state.TotalCount
	}
	return pagination.NewPaginationMeta(m.activePage, m.pageSize, total)
}
