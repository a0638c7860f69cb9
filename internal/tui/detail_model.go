package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/callsapi"
	"github.com/rshade/callhistory/internal/fetch"
	"github.com/rshade/callhistory/internal/format"
)

const msgLoadingCall = "Loading call..."

// DetailModel shows one call. The call is loaded lazily when its location is
// entered; a failed load can be retried with r.
type DetailModel struct {
	ctx       context.Context
	source    callsapi.Source
	formatter calls.Formatter
	logger    zerolog.Logger

	keys    DetailKeyMap
	help    help.Model
	loading LoadingState

	id      string
	gen     fetch.Generation
	pending bool
	record  *calls.CallRecord
	err     error

	width int
}

// NewDetailModel creates the detail screen.
func NewDetailModel(ctx context.Context, source callsapi.Source, formatter calls.Formatter, logger zerolog.Logger) DetailModel {
	if formatter == nil {
		formatter = format.New(nil)
	}
	return DetailModel{
		ctx:       ctx,
		source:    source,
		formatter: formatter,
		logger:    logger.With().Str("component", "detail").Logger(),
		keys:      DefaultDetailKeyMap(),
		help:      help.New(),
		loading:   NewLoadingState(msgLoadingCall),
		width:     defaultWidth,
	}
}

// SetCall shows the call id, loading it unless it is already shown.
func (m DetailModel) SetCall(id string) (DetailModel, tea.Cmd) {
	if id == m.id && (m.record != nil || m.pending) {
		return m, nil
	}
	m.id = id
	return m.load()
}

func (m DetailModel) load() (DetailModel, tea.Cmd) {
	m.record = nil
	m.err = nil
	m.pending = true
	tag := m.gen.Next()

	ctx, source, id := m.ctx, m.source, m.id
	fetchCmd := func() tea.Msg {
		record, err := source.Call(ctx, id)
		return CallLoadedMsg{Generation: tag, ID: id, Record: record, Err: err}
	}
	return m, tea.Batch(fetchCmd, m.loading.Tick())
}

// Update handles load results and keys.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case CallLoadedMsg:
		if !m.gen.IsCurrent(msg.Generation) {
			return m, nil
		}
		m.pending = false
		m.record, m.err = msg.Record, msg.Err
		if msg.Err != nil {
			m.logger.Error().Err(msg.Err).Str("call_id", msg.ID).Msg("loading call failed")
		}
		return m, nil
	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, Back()
		case key.Matches(msg, m.keys.Retry):
			if m.err != nil && !m.pending {
				return m.load()
			}
		}
	}
	return m, nil
}

// View renders the call, a placeholder or an error.
func (m DetailModel) View() string {
	var body string
	switch {
	case m.pending:
		body = m.loading.View()
	case errors.Is(m.err, callsapi.ErrNotFound):
		body = msgNotFound
	case m.err != nil:
		body = CriticalStyle.Render(msgError) + "\n" + SubtleStyle.Render(m.err.Error())
	case m.record != nil:
		body = m.renderRecord(*m.record)
	default:
		body = msgNotFound
	}
	return body + "\n" + m.help.View(m.keys)
}

func (m DetailModel) renderRecord(r calls.CallRecord) string {
	d := calls.Project(r, m.formatter)

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(d.Title))
	b.WriteString("\n\n")
	writeField(&b, "Direction", string(r.Direction))
	writeField(&b, "From", r.From)
	writeField(&b, "To", r.To)
	if r.Via != "" {
		writeField(&b, "Via", r.Via)
	}
	writeField(&b, "Duration", d.DurationText)
	writeField(&b, "Date", d.DateText)
	writeField(&b, "Archived", fmt.Sprintf("%t", r.IsArchived))

	if len(r.Notes) > 0 {
		b.WriteString("\n")
		b.WriteString(TitleStyle.Render(d.NoteSummary))
		for _, n := range r.Notes {
			b.WriteString("\n  • ")
			b.WriteString(ValueStyle.Render(n.Content))
		}
	}

	return BoxStyle.Width(max(m.width-borderPadding, cardTextWidth)).Render(b.String())
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		value = "-"
	}
	b.WriteString(LabelStyle.Render(label))
	b.WriteString(ValueStyle.Render(value))
	b.WriteString("\n")
}

// CallID returns the ID of the call being shown.
func (m DetailModel) CallID() string { return m.id }

// Record returns the loaded call, or nil.
func (m DetailModel) Record() *calls.CallRecord { return m.record }

// Err returns the last load error.
func (m DetailModel) Err() error { return m.err }

// Pending reports whether a load is in flight.
func (m DetailModel) Pending() bool { return m.pending }
