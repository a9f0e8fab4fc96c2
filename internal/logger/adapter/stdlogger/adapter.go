// Package stdlogger adapts zerolog to printf style logger interfaces,
// for example the writer of the gorm logger.
package stdlogger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger writes printf style messages to the global zerolog logger.
type Logger struct {
	// level of Printf calls
	level zerolog.Level
}

// New returns a Logger whose Printf logs on info level.
func New() *Logger {
	return &Logger{level: zerolog.InfoLevel}
}

// NewWithLevel returns a Logger whose Printf logs on the given level.
func NewWithLevel(level zerolog.Level) *Logger {
	return &Logger{level: level}
}

// Printf implements the gorm logger writer.
func (l *Logger) Printf(format string, args ...any) {
	log.WithLevel(l.level).Msg(message(format, args...))
}

// Debugf logs on debug level.
func (l *Logger) Debugf(format string, args ...any) {
	log.Debug().Msg(message(format, args...))
}

// Infof logs on info level.
func (l *Logger) Infof(format string, args ...any) {
	log.Info().Msg(message(format, args...))
}

// Warningf logs on warn level.
func (l *Logger) Warningf(format string, args ...any) {
	log.Warn().Msg(message(format, args...))
}

// Errorf logs on error level.
func (l *Logger) Errorf(format string, args ...any) {
	log.Error().Msg(message(format, args...))
}

// gorm puts the caller and the statement on separate lines
func message(format string, args ...any) string {
	return strings.ReplaceAll(strings.TrimSpace(fmt.Sprintf(format, args...)), "\n", " ")
}
