package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stigoleg/clocktime/internal/clocktime"
)

// EnvPrefix is prepended to every flag name to form its environment variable.
const EnvPrefix = "CLOCKTIME"

// Flag names.
const (
	FlagFormat      = "format"
	FlagInteractive = "interactive"
	FlagNoColor     = "no-color"
	FlagDebug       = "debug"
)

// Selection names which renderings are printed for a parsed time.
type Selection string

const (
	SelectBoth       Selection = "both"
	SelectTwentyFour Selection = "24"
	SelectTwelve     Selection = "12"
)

// Formats returns the renderings covered by s, 24-hour first.
func (s Selection) Formats() []clocktime.TimeFormat {
	switch s {
	case SelectTwentyFour:
		return []clocktime.TimeFormat{clocktime.TwentyFour}
	case SelectTwelve:
		return []clocktime.TimeFormat{clocktime.Twelve}
	default:
		return []clocktime.TimeFormat{clocktime.TwentyFour, clocktime.Twelve}
	}
}

// ParseSelection maps a user supplied format name to a Selection.
func ParseSelection(s string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "all":
		return SelectBoth, nil
	case "24", "24h", "twentyfour":
		return SelectTwentyFour, nil
	case "12", "12h", "twelve":
		return SelectTwelve, nil
	}
	return "", fmt.Errorf("invalid format: %s\n\nValid formats:\n"+
		"• both: print 24-hour and 12-hour renderings\n"+
		"• 24 (24h, twentyfour): HH:MM:SS\n"+
		"• 12 (12h, twelve): HH:MM:SS AM|PM", s)
}

// Config is the resolved command line configuration.
type Config struct {
	Format      Selection
	Interactive bool
	NoColor     bool
	Debug       bool
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagFormat, "f", string(SelectBoth), "Rendering to print: both, 24 or 12")
	fs.BoolP(FlagInteractive, "i", false, "Start the interactive parser")
	fs.Bool(FlagNoColor, false, "Disable colored output")
	fs.Bool(FlagDebug, false, "Write debug logs to debug.log")
}

// Load resolves the configuration from fs and the environment. A flag set on
// the command line wins over its CLOCKTIME_* variable, which wins over the
// flag default.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	format, err := ParseSelection(v.GetString(FlagFormat))
	if err != nil {
		return nil, err
	}

	return &Config{
		Format:      format,
		Interactive: v.GetBool(FlagInteractive),
		NoColor:     v.GetBool(FlagNoColor),
		Debug:       v.GetBool(FlagDebug),
	}, nil
}
