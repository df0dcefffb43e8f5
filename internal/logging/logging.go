package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console logger on stderr, keeping stdout free for the
// interactive menu.
func New(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	consoleWriter := zerolog.NewConsoleWriter()
	consoleWriter.Out = os.Stderr
	consoleWriter.TimeFormat = time.DateTime

	return zerolog.New(consoleWriter).
		Level(parsed).
		With().
		Timestamp().
		Logger()
}
