package cli

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// NewLogger builds a logger writing to out with the level and format from
// cfg. The auto format switches to console output when out is a terminal.
func NewLogger(cfg Config, out io.Writer) zerolog.Logger {
	if usePretty(cfg.LogFormat, out) {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
			NoColor:    !isTerminal(out),
		}
	}

	return zerolog.New(out).
		Level(cfg.Level()).
		With().
		Timestamp().
		Logger()
}

func usePretty(format string, out io.Writer) bool {
	switch strings.ToLower(format) {
	case "pretty":
		return true
	case "json":
		return false
	default:
		return isTerminal(out)
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
