// Package logging builds the application logger. Console output goes to
// stderr; when a log file is configured, a JSON copy goes to a
// size-capped rolling file next to the store, mirroring the desktop app's
// local clinic_app.log.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger at the given level. file may be empty for
// console-only logging.
func New(level, file string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if file != "" {
		w = zerolog.MultiLevelWriter(w, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // MB
			MaxBackups: 3,
		})
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
