// Package qfulog configures the process-wide logger for one qfu run:
// verbose raises the console level to debug, silent disables console output
// entirely, and an optional log file records everything at debug level
// regardless of the console settings.
package qfulog

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global logger and returns a shutdown func that flushes
// and closes the log file, if any. The shutdown func must run after the
// dispatched operation completes, on success and failure alike.
func Init(verbose, silent bool, logFile string) (func(), error) {
	var consoleLevel zerolog.Level
	switch {
	case silent:
		consoleLevel = zerolog.Disabled
	case verbose:
		consoleLevel = zerolog.DebugLevel
	default:
		consoleLevel = zerolog.InfoLevel
	}

	writers := []io.Writer{
		leveledWriter{w: zerolog.ConsoleWriter{Out: os.Stderr}, min: consoleLevel},
	}

	var file *os.File
	if logFile != "" {
		var err error
		file, err = os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "open log file %s", logFile)
		}
		writers = append(writers, file)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Logger().Level(zerolog.DebugLevel)

	shutdown := func() {
		if file != nil {
			_ = file.Sync()
			_ = file.Close()
		}
	}
	return shutdown, nil
}

// leveledWriter drops events below its minimum so the console and the log
// file can filter independently.
type leveledWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (lw leveledWriter) Write(p []byte) (int, error) {
	return lw.w.Write(p)
}

func (lw leveledWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < lw.min {
		return len(p), nil
	}
	return lw.w.Write(p)
}
