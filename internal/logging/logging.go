package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns a zerolog logger writing human-readable console output.
// Unknown levels fall back to info.
func Setup(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	cw := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stdout
		w.TimeFormat = time.RFC3339
	})

	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}
