package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	formatConsole = "console"
	formatJSON    = "json"
)

// options shared by every subcommand.
type options struct {
	order     uint
	logLevel  string
	logFormat string
	log       zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "narytree",
		Short:         "Build N-ary trees from operation scripts and report their shape",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.order < 2 {
				return fmt.Errorf("--order must be at least 2, got %d", opts.order)
			}
			l, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.log = l
			return nil
		},
	}
	root.PersistentFlags().UintVar(&opts.order, "order", 2, "maximum number of children per node")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", formatConsole, "console or json")

	root.AddCommand(newRunCmd(opts), newDemoCmd(opts))
	return root
}

// newLogger writes to w. The console format is colored only when w is a terminal.
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	switch format {
	case formatJSON:
	case formatConsole:
		w = consoleWriter(w)
	default:
		return zerolog.Nop(), fmt.Errorf("invalid --log-format %q", format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

var levelColors = map[string]string{
	"debug": "#3ddbd9",
	"info":  "#4589ff",
	"warn":  "#ff832b",
	"error": "#da1e28",
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	f, ok := w.(*os.File)
	tty := ok && isatty.IsTerminal(f.Fd())
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !tty,
		TimeFormat: "15:04:05",
		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			s := strings.ToUpper(lvl)
			if len(s) > 4 {
				s = s[:4]
			}
			if !tty {
				return s
			}
			return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(levelColors[lvl])).Render(s)
		},
	}
}
