// Package clocktime parses and formats a time of day given as
// hours:minutes:seconds with an optional AM/PM suffix.
package clocktime

import "fmt"

const (
	maxHours   = 23
	maxMinutes = 59
	maxSeconds = 59
)

// TimeFormat selects how a ClockTime is rendered.
type TimeFormat int

const (
	// TwentyFour renders "HH:MM:SS".
	TwentyFour TimeFormat = iota
	// Twelve renders "HH:MM:SS AM" or "HH:MM:SS PM".
	Twelve
)

// String returns the short label of f, "24h" or "12h".
func (f TimeFormat) String() string {
	switch f {
	case TwentyFour:
		return "24h"
	case Twelve:
		return "12h"
	default:
		return "Unknown"
	}
}

// ClockTime is a validated time of day. The zero value is midnight.
type ClockTime struct {
	hours   uint8
	minutes uint8
	seconds uint8
}

// New returns the ClockTime for the given fields. Fields are checked in
// order hours, minutes, seconds and the first one out of range is reported.
func New(hours, minutes, seconds int) (ClockTime, error) {
	if hours < 0 || hours > maxHours {
		return ClockTime{}, ErrInvalidHours
	}
	if minutes < 0 || minutes > maxMinutes {
		return ClockTime{}, ErrInvalidMinutes
	}
	if seconds < 0 || seconds > maxSeconds {
		return ClockTime{}, ErrInvalidSeconds
	}

	return ClockTime{
		hours:   uint8(hours),
		minutes: uint8(minutes),
		seconds: uint8(seconds),
	}, nil
}

// Hours returns the hour in 24-hour form (0-23).
func (c ClockTime) Hours() int { return int(c.hours) }

// Minutes returns the minute (0-59).
func (c ClockTime) Minutes() int { return int(c.minutes) }

// Seconds returns the second (0-59).
func (c ClockTime) Seconds() int { return int(c.seconds) }

// Format renders c in the given format with every field zero-padded to two digits.
func (c ClockTime) Format(f TimeFormat) string {
	if f != Twelve {
		return fmt.Sprintf("%02d:%02d:%02d", c.hours, c.minutes, c.seconds)
	}

	cycle := "AM"
	if c.hours >= 12 {
		cycle = "PM"
	}
	display := c.hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%02d:%02d:%02d %s", display, c.minutes, c.seconds, cycle)
}

// String implements fmt.Stringer using the 24-hour form.
func (c ClockTime) String() string {
	return c.Format(TwentyFour)
}
