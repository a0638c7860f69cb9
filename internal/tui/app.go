package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/callsapi"
	"github.com/rshade/callhistory/internal/router"
)

// AppOptions configures the TUI.
type AppOptions struct {
	// InitialLocation defaults to "/calls/".
	InitialLocation string
	PageSize        int
	PageSizeOptions []int
	Formatter       calls.Formatter
	Logger          zerolog.Logger
}

// App is the root model. It owns navigation and routes messages to screens.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type App struct {
	router *router.Router
	route  router.RouteName
	calls  CallsModel
	detail DetailModel
	quit   key.Binding
	logger zerolog.Logger
}

// NewApp creates the TUI positioned at opts.InitialLocation.
func NewApp(ctx context.Context, source callsapi.Source, opts AppOptions) (App, error) {
	initial := opts.InitialLocation
	if initial == "" {
		initial = "/calls/"
	}
	r, err := router.New(router.DefaultTable(), initial, opts.Logger)
	if err != nil {
		return App{}, err
	}

	return App{
		router: r,
		calls: NewCallsModel(ctx, source, CallsOptions{
			PageSize:        opts.PageSize,
			PageSizeOptions: opts.PageSizeOptions,
			Formatter:       opts.Formatter,
			Logger:          opts.Logger,
		}),
		detail: NewDetailModel(ctx, source, opts.Formatter, opts.Logger),
		quit:   DefaultCallsKeyMap().Quit,
		logger: opts.Logger.With().Str("component", "app").Logger(),
	}, nil
}

// Init announces the initial location to its screen.
func (a App) Init() tea.Cmd {
	match := a.router.Current()
	return func() tea.Msg { return LocationChangedMsg{Match: match} }
}

// Update handles navigation and forwards everything else to the screens.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.quit) {
			return a, tea.Quit
		}
		return a.updateActive(msg)
	case NavigateMsg:
		match, err := a.router.Navigate(msg.To)
		if err != nil {
			a.logger.Warn().Err(err).Str("to", msg.To).Msg("ignoring invalid navigation")
			return a, nil
		}
		return a, locationChanged(match)
	case BackMsg:
		if match, ok := a.router.Back(); ok {
			return a, locationChanged(match)
		}
		return a, Navigate(router.PagePath(1))
	case LocationChangedMsg:
		return a.enter(msg)
	case PageLoadedMsg:
		var cmd tea.Cmd
		a.calls, cmd = a.calls.Update(msg)
		return a, cmd
	case CallLoadedMsg:
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Update(msg)
		return a, cmd
	case tea.WindowSizeMsg, spinner.TickMsg:
		var c1, c2 tea.Cmd
		a.calls, c1 = a.calls.Update(msg)
		a.detail, c2 = a.detail.Update(msg)
		return a, tea.Batch(c1, c2)
	}
	return a, nil
}

func (a App) enter(msg LocationChangedMsg) (App, tea.Cmd) {
	a.route = msg.Match.Route
	var cmd tea.Cmd
	switch a.route {
	case router.RouteCalls:
		a.calls, cmd = a.calls.Update(msg)
	case router.RouteCallDetail:
		a.detail, cmd = a.detail.SetCall(msg.Match.Param("id"))
	case router.RouteNotFound:
		a.logger.Debug().Str("location", msg.Match.Location.String()).Msg("no route")
	}
	return a, cmd
}

func (a App) updateActive(msg tea.Msg) (App, tea.Cmd) {
	var cmd tea.Cmd
	switch a.route {
	case router.RouteCalls:
		a.calls, cmd = a.calls.Update(msg)
	case router.RouteCallDetail:
		a.detail, cmd = a.detail.Update(msg)
	case router.RouteNotFound:
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, a.detail.keys.Back) {
			cmd = Back()
		}
	}
	return a, cmd
}

// View renders the active screen.
func (a App) View() string {
	switch a.route {
	case router.RouteCalls:
		return a.calls.View()
	case router.RouteCallDetail:
		return a.detail.View()
	case router.RouteNotFound:
		return msgNotFound
	default:
		return ""
	}
}

// Route returns the active route.
func (a App) Route() router.RouteName { return a.route }

// Calls returns the list screen.
func (a App) Calls() CallsModel { return a.calls }

// Detail returns the detail screen.
func (a App) Detail() DetailModel { return a.detail }

func locationChanged(match router.Match) tea.Cmd {
	return func() tea.Msg { return LocationChangedMsg{Match: match} }
}

// Run starts the TUI on the alternate screen and blocks until it exits.
func Run(ctx context.Context, source callsapi.Source, opts AppOptions) error {
	app, err := NewApp(ctx, source, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
