package web

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/flappy-dunk/common"
)

// ConsoleLogger writes leveled messages to the browser console.
type ConsoleLogger struct {
	Level common.Level
}

var _ common.Logger = (*ConsoleLogger)(nil)

// NewConsoleLogger creates a console logger that drops messages below level.
func NewConsoleLogger(level common.Level) *ConsoleLogger {
	return &ConsoleLogger{Level: level}
}

func (l *ConsoleLogger) logf(level common.Level, method, format string, v ...interface{}) {
	if level < l.Level {
		return
	}
	console := js.Global.Get("console")
	if console == js.Undefined {
		return
	}
	console.Call(method, "["+level.String()+"] "+fmt.Sprintf(format, v...))
}

func (l *ConsoleLogger) Debugf(format string, v ...interface{}) {
	l.logf(common.LevelDebug, "log", format, v...)
}

func (l *ConsoleLogger) Infof(format string, v ...interface{}) {
	l.logf(common.LevelInfo, "info", format, v...)
}

func (l *ConsoleLogger) Warnf(format string, v ...interface{}) {
	l.logf(common.LevelWarn, "warn", format, v...)
}

func (l *ConsoleLogger) Errorf(format string, v ...interface{}) {
	l.logf(common.LevelError, "error", format, v...)
}
