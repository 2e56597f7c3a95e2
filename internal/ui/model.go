package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/clocktime/internal/clocktime"
)

// historySize bounds the number of committed entries kept on screen.
const historySize = 8

// Model holds the state of the interactive parser.
type Model struct {
	Input   textinput.Model
	Keys    KeyMap
	Help    help.Model
	Formats []clocktime.TimeFormat

	// Result is meaningful only when Valid is set.
	Result  clocktime.ClockTime
	Valid   bool
	Err     error
	History []clocktime.ClockTime
}

// InitialModel returns a focused, empty parser rendering the given formats.
func InitialModel(formats []clocktime.TimeFormat) Model {
	ti := textinput.New()
	ti.Placeholder = "4:05:09 PM"
	ti.CharLimit = 64
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		Input:   ti,
		Keys:    DefaultKeys(),
		Help:    NewHelpModel(),
		Formats: formats,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// preview re-parses the current input. Empty input clears the preview.
func (m *Model) preview() {
	m.Valid = false
	m.Err = nil
	m.Result = clocktime.ClockTime{}

	value := m.Input.Value()
	if value == "" {
		return
	}

	ct, err := clocktime.Parse(value)
	if err != nil {
		m.Err = err
		return
	}
	m.Result = ct
	m.Valid = true
}
