// Package cli wires the clock time parser to the command line.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/stigoleg/clocktime/internal/clocktime"
	"github.com/stigoleg/clocktime/internal/config"
	"github.com/stigoleg/clocktime/internal/ui"
)

const (
	// AppName is the binary name used in usage, completions and the man page.
	AppName = "clocktime"
	// AppDescription is the one-line summary shown in help output.
	AppDescription = "Parse a clock time such as \"4:05:09 PM\" and print it in 24-hour and 12-hour form."
)

// ErrNoInput is returned when stdin ends before any text was read.
var ErrNoInput = errors.New("no input: expected one line on stdin")

// NewRootCommand builds the clocktime command.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   AppName + " [time]",
		Short: AppDescription,
		Long: AppDescription + `

The time is read from the arguments when given, otherwise one line is read
from stdin. Fields are separated by ':' and may be padded with spaces or
leading zeros. A trailing AM or PM selects 12-hour input.

Every flag can also be set through the environment, e.g. CLOCKTIME_FORMAT=12.`,
		Example: `  clocktime "4:05:09 PM"
  echo "23:59:00" | clocktime --format 12
  clocktime -i`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.NoColor {
				ui.Current = ui.PlainStyle()
			}

			closeLog, err := setupLogging(cfg.Debug)
			if err != nil {
				return err
			}
			defer closeLog()

			if cfg.Interactive {
				return runInteractive(cmd, cfg)
			}
			return runOnce(cmd, args, cfg)
		},
	}

	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	config.RegisterFlags(cmd.Flags())
	return cmd
}

// Execute runs cmd and reports a failure on its error stream. It returns
// the process exit code. The active ui style is restored afterwards, so
// --no-color only lasts for one run.
func Execute(cmd *cobra.Command) int {
	style := ui.Current
	defer func() { ui.Current = style }()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatError(err))
		return 1
	}
	return 0
}

func runOnce(cmd *cobra.Command, args []string, cfg *config.Config) error {
	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	ct, err := clocktime.Parse(input)
	if err != nil {
		log.Printf("rejected %q: %v", input, err)
		return err
	}
	log.Printf("parsed %q as %s", input, ct)

	fmt.Fprintln(cmd.OutOrStdout(), ui.Result(ct, cfg.Format.Formats()))
	return nil
}

func runInteractive(cmd *cobra.Command, cfg *config.Config) error {
	p := tea.NewProgram(
		ui.InitialModel(cfg.Format.Formats()),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	_, err := p.Run()
	return errors.Wrap(err, "run interactive parser")
}

// readInput joins args when present, otherwise it reads a single line from r.
// A final line without a newline is accepted.
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", ErrNoInput
		}
		return line, nil
	}
	return "", errors.Wrap(err, "read input")
}

// setupLogging routes the standard logger to debug.log when debug is set and
// discards it otherwise.
func setupLogging(debug bool) (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile("debug.log", "debug")
	if err != nil {
		return nil, errors.Wrap(err, "open debug log")
	}
	return func() {
		log.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}
