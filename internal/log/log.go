// Package log configures the process-wide zerolog logger, matching
// the teacher's (endgame/negamax/solver.go) direct use of
// github.com/rs/zerolog/log's global Logger rather than passing a
// *zerolog.Logger through every call.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. pretty selects a
// human-readable console writer (for cmd/inertia-cli and local
// development); false selects structured JSON (for cmd/inertia-server
// and cmd/corpus-builder-lambda running under a log collector).
func Init(level zerolog.Level, pretty bool) {
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer = os.Stderr
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// Component returns a sublogger tagged with a "component" field, the
// same per-package logging shape the teacher's call sites use (e.g.
// log.Warn().Int(...).Msg(...) throughout endgame/negamax/solver.go),
// so each package in this module gets its own named sublogger instead
// of sharing one undifferentiated stream.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// ParseLevel is a thin wrapper around zerolog.ParseLevel that falls
// back to InfoLevel on an unrecognized string, used by cmd/inertia-server
// (on the configured log level) and cmd/corpus-builder-lambda (on
// LOG_LEVEL).
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
