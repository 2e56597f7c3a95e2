package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.ToggleHelp):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		case key.Matches(msg, m.Keys.Clear):
			m.History = nil
			return m, nil
		case key.Matches(msg, m.Keys.Submit):
			return submit(m), nil
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	m.preview()
	return m, cmd
}

// submit moves a valid entry into the history and clears the input. Invalid
// entries stay in place so they can be corrected.
func submit(m Model) Model {
	if !m.Valid {
		if m.Err != nil {
			log.Printf("rejected %q: %v", m.Input.Value(), m.Err)
		}
		return m
	}

	log.Printf("parsed %q as %s", m.Input.Value(), m.Result)
	m.History = append(m.History, m.Result)
	if len(m.History) > historySize {
		m.History = m.History[len(m.History)-historySize:]
	}
	m.Input.Reset()
	m.preview()
	return m
}
