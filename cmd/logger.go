package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger on stderr at that level.
func NewLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}
