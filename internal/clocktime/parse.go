package clocktime

import (
	"strconv"
	"strings"
	"unicode"
)

type cycle int

const (
	noCycle cycle = iota
	cycleAM
	cyclePM
)

// to24 converts a 12-hour clock hour (at most 12) to 24-hour form.
func (c cycle) to24(hours uint64) uint64 {
	if c == cyclePM && hours != 12 {
		return hours + 12
	}
	return hours
}

// Parse reads a time of day of the form "H:M:S" with an optional AM or PM
// suffix after the seconds, e.g. " 4: 05 :09 pm". Whitespace around each
// field and leading zeros are accepted. Without a suffix the hours are read
// as 24-hour time.
func Parse(text string) (ClockTime, error) {
	fields := strings.Split(text, ":")
	if len(fields) != 3 {
		return ClockTime{}, ErrBadFormat
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	marker, err := detectCycle(fields[2])
	if err != nil {
		return ClockTime{}, err
	}

	hours, err := parseField(fields[0])
	if err != nil {
		return ClockTime{}, err
	}
	minutes, err := parseField(fields[1])
	if err != nil {
		return ClockTime{}, err
	}

	// The seconds field may still carry the marker and stray tokens after it.
	tokens := strings.Fields(fields[2])
	if len(tokens) == 0 {
		return ClockTime{}, ErrBadFormat
	}
	seconds, err := parseField(tokens[0])
	if err != nil {
		return ClockTime{}, err
	}

	if marker != noCycle {
		if hours > 12 {
			return ClockTime{}, ErrHoursOverflow
		}
		hours = marker.to24(hours)
	}

	return New(int(hours), int(minutes), int(seconds))
}

// detectCycle reports the AM/PM marker of a trimmed seconds field. A field
// holding anything but numerals must contain PM or AM, PM taking precedence.
func detectCycle(field string) (cycle, error) {
	upper := strings.ToUpper(field)
	if strings.IndexFunc(upper, isNotNumeric) < 0 {
		return noCycle, nil
	}

	switch {
	case strings.Contains(upper, "PM"):
		return cyclePM, nil
	case strings.Contains(upper, "AM"):
		return cycleAM, nil
	default:
		return noCycle, ErrBadFormat
	}
}

func isNotNumeric(r rune) bool {
	return !unicode.IsNumber(r)
}

// parseField reads an unsigned 8-bit decimal with an optional leading '+'.
func parseField(s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 8)
	if err != nil {
		return 0, ErrBadFormat
	}
	return n, nil
}
