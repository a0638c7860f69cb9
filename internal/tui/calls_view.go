package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/fetch"
	"github.com/rshade/callhistory/internal/pagination"
)

// Card column widths.
const (
	cardTextWidth = 34
	cardMetaWidth = 20
)

// Icons for IconKind.
const (
	iconDown = "↙"
	iconUp   = "↗"
)

// View renders the placeholder for the current state or the page of calls.
func (m CallsModel) View() string {
	switch m.state.Kind {
	case fetch.KindPending:
		return m.loading.View()
	case fetch.KindFailed:
		return CriticalStyle.Render(msgError)
	case fetch.KindNotFound:
		return msgNotFound
	case fetch.KindReady:
		return m.renderReady()
	default:
		return ""
	}
}

func (m CallsModel) renderReady() string {
	sections := []string{HeaderStyle.Render(headerCalls)}

	if list := m.list.View(); list != "" {
		sections = append(sections, list)
	}
	if pagination.ShowControl(m.state.TotalCount) {
		sections = append(sections, m.renderPaginationControl())
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPaginationControl shows the active page, page size and total count.
func (m CallsModel) renderPaginationControl() string {
	parts := []string{
		m.paginator.View(),
		m.printer.Sprintf("%d per page", m.pageSize),
		m.printer.Sprintf("%d calls", m.state.TotalCount),
	}
	return PaginationStyle.Render(strings.Join(parts, " · "))
}

// renderCard draws one call as three lines plus a blank separator.
func renderCard(d calls.DisplayRecord, selected bool) string {
	icon := InboundIconStyle.Render(iconDown)
	if d.IconKind == calls.IconUp {
		icon = OutboundIconStyle.Render(iconUp)
	}

	text := lipgloss.NewStyle().Width(cardTextWidth)
	meta := lipgloss.NewStyle().Width(cardMetaWidth).Align(lipgloss.Right)

	// The note line stays blank without a summary so every card keeps
	// cardLines rows.
	note := ""
	if d.HasNoteSummary() {
		note = "  " + SubtleStyle.Render(d.NoteSummary)
	}

	title := TitleStyle.Render(d.Title)
	lines := []string{
		icon + " " + text.Render(title) + meta.Render(d.DurationText),
		"  " + text.Render(SubtleStyle.Render(d.Subtitle)) + meta.Render(SubtleStyle.Render(d.DateText)),
		note,
	}

	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	return style.Render(strings.Join(lines, "\n")) + "\n"
}
