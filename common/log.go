package common

import (
	"io"
	"log"
	"strings"
)

// Level is a logging threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a case-insensitive level name to a Level. Unknown names
// fall back to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger is the logging surface shared by the core and the front-ends.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// StdLogger writes leveled lines through a standard library logger.
type StdLogger struct {
	logger *log.Logger
	level  Level
}

// NewLogger creates a StdLogger writing to out.
func NewLogger(out io.Writer, level Level) *StdLogger {
	return &StdLogger{
		logger: log.New(out, "", log.LstdFlags),
		level:  level,
	}
}

func (l *StdLogger) logf(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.logger.Printf(level.String()+": "+format, v...)
}

func (l *StdLogger) Debugf(format string, v ...interface{}) { l.logf(LevelDebug, format, v...) }
func (l *StdLogger) Infof(format string, v ...interface{})  { l.logf(LevelInfo, format, v...) }
func (l *StdLogger) Warnf(format string, v ...interface{})  { l.logf(LevelWarn, format, v...) }
func (l *StdLogger) Errorf(format string, v ...interface{}) { l.logf(LevelError, format, v...) }

// SetLevel changes the threshold.
func (l *StdLogger) SetLevel(level Level) {
	l.level = level
}

// Level returns the current threshold.
func (l *StdLogger) Level() Level {
	return l.level
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// Nop discards everything.
var Nop Logger = nopLogger{}
