package clocktime

// ParseError classifies why a clock time could not be parsed or built.
type ParseError uint8

const (
	// ErrBadFormat reports structurally malformed input.
	ErrBadFormat ParseError = iota + 1
	// ErrHoursOverflow reports an AM/PM hour greater than 12.
	ErrHoursOverflow
	// ErrInvalidHours reports hours outside 0-23.
	ErrInvalidHours
	// ErrInvalidMinutes reports minutes outside 0-59.
	ErrInvalidMinutes
	// ErrInvalidSeconds reports seconds outside 0-59.
	ErrInvalidSeconds
)

// Kind returns the short name of the error kind, e.g. "BadFormat".
func (e ParseError) Kind() string {
	switch e {
	case ErrBadFormat:
		return "BadFormat"
	case ErrHoursOverflow:
		return "HoursOverflow"
	case ErrInvalidHours:
		return "InvalidHours"
	case ErrInvalidMinutes:
		return "InvalidMinutes"
	case ErrInvalidSeconds:
		return "InvalidSeconds"
	default:
		return "Unknown"
	}
}

func (e ParseError) Error() string {
	switch e {
	case ErrBadFormat:
		return "bad format: expected HH:MM:SS with an optional AM/PM suffix"
	case ErrHoursOverflow:
		return "hours must not exceed 12 when AM or PM is given"
	case ErrInvalidHours:
		return "hours must be between 0 and 23"
	case ErrInvalidMinutes:
		return "minutes must be between 0 and 59"
	case ErrInvalidSeconds:
		return "seconds must be between 0 and 59"
	default:
		return "unknown clock time error"
	}
}
