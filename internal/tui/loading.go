package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingState is a spinner shown next to a placeholder text.
type LoadingState struct {
	spinner spinner.Model
	text    string
}

// NewLoadingState creates a spinner labelled text.
func NewLoadingState(text string) LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorAccent)
	return LoadingState{spinner: s, text: text}
}

// Tick starts the spinner animation.
func (l LoadingState) Tick() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on its own tick messages.
func (l LoadingState) Update(msg tea.Msg) (LoadingState, tea.Cmd) {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// View renders the spinner and text.
func (l LoadingState) View() string {
	return l.spinner.View() + " " + l.text
}
