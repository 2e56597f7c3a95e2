package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stigoleg/clocktime/internal/clocktime"
)

// ResultLine renders one formatted line, e.g. "12h format: 04:00:01 PM".
func ResultLine(ct clocktime.ClockTime, f clocktime.TimeFormat) string {
	return Current.Label.Render(f.String()+" format:") + " " + Current.Value.Render(ct.Format(f))
}

// Result renders ct once per format, one line each.
func Result(ct clocktime.ClockTime, formats []clocktime.TimeFormat) string {
	lines := make([]string, 0, len(formats))
	for _, f := range formats {
		lines = append(lines, ResultLine(ct, f))
	}
	return strings.Join(lines, "\n")
}

// ErrorMessage describes err for the user, prefixing parse failures with their kind.
func ErrorMessage(err error) string {
	var perr clocktime.ParseError
	if errors.As(err, &perr) {
		return fmt.Sprintf("ERROR: %s: %s", perr.Kind(), err.Error())
	}
	return "ERROR: " + err.Error()
}

// FormatError styles err for display. Messages that carry a help section
// after a blank line are shown in a box with the help text dimmed.
func FormatError(err error) string {
	msg := ErrorMessage(err)
	parts := strings.SplitN(msg, "\n\n", 2)
	if len(parts) == 2 {
		header := Current.Error.Render(parts[0])
		details := Current.ErrorHint.Render(parts[1])
		return Current.ErrorBox.Render(header + "\n\n" + details)
	}
	return Current.Error.Render(msg)
}

// View renders the interactive model.
func View(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Clock Time Parser"))
	b.WriteString("\n\n")

	b.WriteString(Current.Label.Render("Enter a time as HH:MM:SS, optionally followed by AM or PM:"))
	b.WriteString("\n")
	b.WriteString(Current.InputBox.Render(m.Input.View()))
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(Current.Error.Render(ErrorMessage(m.Err)))
		b.WriteString("\n")
	case m.Valid:
		b.WriteString(Result(m.Result, m.Formats))
		b.WriteString("\n")
	}

	if len(m.History) > 0 {
		b.WriteString("\n" + Current.Title.Render("History") + "\n")
		for i := len(m.History) - 1; i >= 0; i-- {
			ct := m.History[i]
			b.WriteString(Current.History.Render(ct.Format(clocktime.TwentyFour) + "  " + ct.Format(clocktime.Twelve)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + Current.Help.Render(m.Help.View(m.Keys)))
	return b.String()
}
