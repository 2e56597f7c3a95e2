package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/clocktime/internal/clocktime"
)

var bothFormats = []clocktime.TimeFormat{clocktime.TwentyFour, clocktime.Twelve}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}, m)
	return m
}

func TestInitialModel(t *testing.T) {
	m := InitialModel(bothFormats)
	assert.True(t, m.Input.Focused(), "expected input to be focused")
	assert.Empty(t, m.Input.Value())
	assert.False(t, m.Valid)
	assert.NoError(t, m.Err)
	assert.Empty(t, m.History)
}

func TestUpdatePreview(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		want    string
	}{
		{name: "valid PM time", input: "4:00:01 PM", want: "16:00:01"},
		{name: "valid 24h time", input: "23:59:59", want: "23:59:59"},
		{name: "incomplete input", input: "4:00", wantErr: clocktime.ErrBadFormat},
		{name: "hour overflow", input: "13:00:00 PM", wantErr: clocktime.ErrHoursOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := typeText(t, InitialModel(bothFormats), tt.input)
			require.Equal(t, tt.input, m.Input.Value())

			if tt.wantErr != nil {
				assert.False(t, m.Valid)
				assert.ErrorIs(t, m.Err, tt.wantErr)
				return
			}
			require.True(t, m.Valid)
			assert.Equal(t, tt.want, m.Result.String())
		})
	}
}

func TestUpdateSubmit(t *testing.T) {
	m := typeText(t, InitialModel(bothFormats), "4:  000  :1 PM")
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)

	require.Len(t, m.History, 1)
	assert.Equal(t, "16:00:01", m.History[0].String())
	assert.Empty(t, m.Input.Value(), "input should be cleared after a valid entry")
	assert.False(t, m.Valid)

	m = typeText(t, m, "99:00:00")
	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	assert.Len(t, m.History, 1, "invalid entries must not reach the history")
	assert.Equal(t, "99:00:00", m.Input.Value())
	assert.ErrorIs(t, m.Err, clocktime.ErrInvalidHours)
}

func TestUpdateHistoryIsBounded(t *testing.T) {
	m := InitialModel(bothFormats)
	for i := 0; i < historySize+3; i++ {
		m = typeText(t, m, "1:00:0"+string(rune('0'+i%10)))
		m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	}
	require.Len(t, m.History, historySize)
	assert.Equal(t, "01:00:03", m.History[0].String())

	m, _ = Update(tea.KeyMsg{Type: tea.KeyCtrlL}, m)
	assert.Empty(t, m.History)
}

func TestUpdateKeys(t *testing.T) {
	m := InitialModel(bothFormats)

	m, _ = Update(tea.KeyMsg{Type: tea.KeyF1}, m)
	assert.True(t, m.Help.ShowAll)
	m, _ = Update(tea.KeyMsg{Type: tea.KeyF1}, m)
	assert.False(t, m.Help.ShowAll)

	_, cmd := Update(tea.KeyMsg{Type: tea.KeyEsc}, m)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = Update(tea.WindowSizeMsg{Width: 42, Height: 10}, m)
	assert.Equal(t, 42, m.Help.Width)
}

func TestView(t *testing.T) {
	m := typeText(t, InitialModel(bothFormats), "0:0:00 AM")
	view := View(m)
	assert.Contains(t, view, "Clock Time Parser")
	assert.Contains(t, view, "00:00:00")
	assert.Contains(t, view, "12:00:00 AM")

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEnter}, m)
	view = View(m)
	assert.Contains(t, view, "History")
	assert.Contains(t, view, "00:00:00  12:00:00 AM")

	m = typeText(t, m, "1:2")
	assert.Contains(t, View(m), "BadFormat")
}

func TestResult(t *testing.T) {
	Current = PlainStyle()
	defer func() { Current = DefaultStyle() }()

	ct, err := clocktime.New(16, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, "24h format: 16:00:01\n12h format: 04:00:01 PM", Result(ct, bothFormats))
	assert.Equal(t, "12h format: 04:00:01 PM", Result(ct, []clocktime.TimeFormat{clocktime.Twelve}))
}

func TestFormatError(t *testing.T) {
	Current = PlainStyle()
	defer func() { Current = DefaultStyle() }()

	assert.Equal(t, "ERROR: HoursOverflow: "+clocktime.ErrHoursOverflow.Error(), FormatError(clocktime.ErrHoursOverflow))
	assert.Equal(t, "ERROR: stdin closed", FormatError(errors.New("stdin closed")))

	boxed := FormatError(errors.New("invalid format: x\n\nValid formats:\n• both"))
	assert.Contains(t, boxed, "ERROR: invalid format: x")
	assert.Contains(t, boxed, "Valid formats:")
	assert.True(t, strings.Count(boxed, "\n") >= 4, "expected a bordered box")
}
