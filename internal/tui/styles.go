package tui

import "github.com/charmbracelet/lipgloss"

// Layout defaults used before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24

	// borderPadding is the horizontal space taken by BoxStyle borders and padding.
	borderPadding = 4

	// cardLines is the rendered height of one call card, including its margin.
	cardLines = 4

	// chromeLines is the height of the header, pagination control and help.
	chromeLines = 6
)

// Colors.
const (
	colorAccent  = lipgloss.Color("#7D56F4")
	colorSubtle  = lipgloss.Color("#6C6C6C")
	colorInbound = lipgloss.Color("#04B575")
	colorMissed  = lipgloss.Color("#FF5F87")
	colorText    = lipgloss.Color("#FAFAFA")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)

	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	LabelStyle = lipgloss.NewStyle().Foreground(colorSubtle).Width(12)

	ValueStyle = lipgloss.NewStyle().Foreground(colorText)

	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMissed)

	InboundIconStyle = lipgloss.NewStyle().Foreground(colorInbound)

	OutboundIconStyle = lipgloss.NewStyle().Foreground(colorAccent)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorSubtle).
			PaddingLeft(1)

	SelectedCardStyle = CardStyle.
				BorderForeground(colorAccent).
				Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	PaginationStyle = lipgloss.NewStyle().
			Foreground(colorText).
			MarginTop(1)
)
