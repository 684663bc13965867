// Package logx configures the zerolog console output used by the lvmatch
// command.
package logx

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35
	colorBold    = 1
)

// Options selects the console writer's level and colouring.
type Options struct {
	Level   string // trace, debug, info, warn, error; empty means info
	NoColor bool
}

// New returns a console logger writing to w.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: opts.NoColor}
	cw.FormatLevel = formatLevel(opts.NoColor)
	cw.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}

	return zerolog.New(cw).Level(level).With().Timestamp().Logger(), nil
}

// ParseLevel maps a level name onto zerolog; the empty string is info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logx: level %q: %w", s, err)
	}

	return level, nil
}

func formatLevel(noColor bool) zerolog.Formatter {
	colorize := func(s string, c int) string {
		if noColor {
			return s
		}
		return fmt.Sprintf("\x1b[%dm%s\x1b[0m", c, s)
	}

	return func(i any) string {
		ll, ok := i.(string)
		if !ok {
			return colorize("| ??? |", colorBold)
		}
		switch ll {
		case zerolog.LevelTraceValue:
			return colorize("| TRACE |", colorMagenta)
		case zerolog.LevelDebugValue:
			return colorize("| DEBUG |", colorYellow)
		case zerolog.LevelInfoValue:
			return colorize("| INFO  |", colorGreen)
		case zerolog.LevelWarnValue:
			return colorize("| WARN  |", colorRed)
		case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
			return colorize(colorize(fmt.Sprintf("| %-5s |", strings.ToUpper(ll)), colorRed), colorBold)
		default:
			return colorize(ll, colorBold)
		}
	}
}
