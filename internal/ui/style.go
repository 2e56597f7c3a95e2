// Package ui renders clock times and parse errors for the terminal and
// provides the interactive parser.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style represents a collection of styles used in the application
type Style struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	InputBox  lipgloss.Style
	History   lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
	ErrorBox  lipgloss.Style
	ErrorHint lipgloss.Style
}

// DefaultStyle returns the default style configuration
func DefaultStyle() Style {
	base := lipgloss.NewStyle()

	return Style{
		Title: base.
			Bold(true).
			Foreground(defaultColors.Highlight),

		Label: base.
			Foreground(defaultColors.Subtle),

		Value: base.
			Bold(true).
			Foreground(defaultColors.Special),

		InputBox: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight).
			Padding(0, 1),

		History: base.
			Foreground(defaultColors.Subtle).
			PaddingLeft(2),

		Help: base.
			Foreground(defaultColors.Subtle),

		Error: base.
			Bold(true).
			Foreground(defaultColors.Error),

		ErrorBox: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Error).
			Padding(0, 1),

		ErrorHint: base.
			Foreground(defaultColors.Subtle),
	}
}

// PlainStyle keeps the layout of DefaultStyle without colors or emphasis.
func PlainStyle() Style {
	base := lipgloss.NewStyle()

	return Style{
		Title:     base,
		Label:     base,
		Value:     base,
		InputBox:  base.Border(lipgloss.NormalBorder()).Padding(0, 1),
		History:   base.PaddingLeft(2),
		Help:      base,
		Error:     base,
		ErrorBox:  base.Border(lipgloss.NormalBorder()).Padding(0, 1),
		ErrorHint: base,
	}
}

// Current holds the current style configuration
var Current = DefaultStyle()
