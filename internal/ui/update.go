package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			// Workers observe the cancelled context between entries, so
			// teardown is bounded by the slowest in-flight listing.
			m.cancel()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.nav.MoveUp()

		case key.Matches(msg, m.keys.Down):
			m.nav.MoveDown()

		case key.Matches(msg, m.keys.Descend):
			m.nav.Descend()
			m.offset = 0

		case key.Matches(msg, m.keys.Ascend):
			m.nav.Ascend()
			m.offset = 0

		case key.Matches(msg, m.keys.CycleSort):
			m.nav.CycleSort()

		case key.Matches(msg, m.keys.ToggleFiles):
			m.nav.ToggleFiles()
		}
		m.syncOffset()
		return m, nil

	case redrawMsg:
		// Re-arm only while scanning; once the tree is static the view
		// changes on input alone.
		if m.scanning {
			return m, redrawTick()
		}
		return m, nil

	case scanDoneMsg:
		m.scanning = false
		return m, nil

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}
