// Package logging forwards core log records to an externally installed
// logger. Foreign consumers install a Logger capability to receive the
// core's operational logs on their side of the boundary; while none is
// installed, records go to the default zerolog sink on stderr.
package logging

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Level identifies the severity of a log record.
type Level int

const (
	// LevelError designates very serious errors.
	LevelError Level = iota + 1
	// LevelWarn designates hazardous situations.
	LevelWarn
	// LevelInfo designates useful information.
	LevelInfo
	// LevelDebug designates lower priority information.
	LevelDebug
	// LevelTrace designates very low priority, often extremely verbose,
	// information.
	LevelTrace
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// zerologLevel maps a Level to its zerolog equivalent.
func (l Level) zerologLevel() zerolog.Level {
	switch l {
	case LevelError:
		return zerolog.ErrorLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelTrace:
		return zerolog.TraceLevel
	default:
		return zerolog.NoLevel
	}
}

// Logger receives log records emitted by the core. Implementations on the
// foreign side hold a registered reference with a lifetime independent of
// any model; they must not block, since log calls happen inline with the
// operation that produced them.
type Logger interface {
	Log(level Level, tag, message string)
}

// LoggerFunc adapts a function to the Logger interface.
type LoggerFunc func(level Level, tag, message string)

// Log calls f.
func (f LoggerFunc) Log(level Level, tag, message string) { f(level, tag, message) }

var (
	mu       sync.RWMutex
	foreign  Logger
	fallback = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

// Install registers a foreign logger. Passing nil uninstalls it, restoring
// the default zerolog sink.
func Install(l Logger) {
	mu.Lock()
	foreign = l
	mu.Unlock()
}

// Uninstall removes any installed foreign logger.
func Uninstall() {
	Install(nil)
}

// SetZerolog replaces the fallback zerolog sink used while no foreign
// logger is installed. Embedding applications call this once at startup.
func SetZerolog(l zerolog.Logger) {
	mu.Lock()
	fallback = l
	mu.Unlock()
}

func emit(level Level, tag, message string) {
	mu.RLock()
	l := foreign
	sink := fallback
	mu.RUnlock()
	if l != nil {
		l.Log(level, tag, message)
		return
	}
	sink.WithLevel(level.zerologLevel()).Str("tag", tag).Msg(message)
}

// Errorf logs a formatted record at the error level.
func Errorf(tag, format string, args ...any) {
	emit(LevelError, tag, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted record at the warn level.
func Warnf(tag, format string, args ...any) {
	emit(LevelWarn, tag, fmt.Sprintf(format, args...))
}

// Infof logs a formatted record at the info level.
func Infof(tag, format string, args ...any) {
	emit(LevelInfo, tag, fmt.Sprintf(format, args...))
}

// Debugf logs a formatted record at the debug level.
func Debugf(tag, format string, args ...any) {
	emit(LevelDebug, tag, fmt.Sprintf(format, args...))
}

// Tracef logs a formatted record at the trace level.
func Tracef(tag, format string, args ...any) {
	emit(LevelTrace, tag, fmt.Sprintf(format, args...))
}
