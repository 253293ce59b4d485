package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New builds a zerolog logger writing to w (stderr when nil) in console or JSON format.
func New(level, format string, w io.Writer) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid log level %q", level)
	}

	var zl zerolog.Logger
	switch strings.ToLower(format) {
	case FormatConsole, "":
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	case FormatJSON:
		zl = zerolog.New(w)
	default:
		return zerolog.Nop(), errors.Errorf("invalid log format %q", format)
	}

	return zl.Level(lvl).With().Timestamp().Logger(), nil
}
