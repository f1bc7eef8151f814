package logging

import (
	"fmt"
	"log"
)

// LogLogger writes through a standard library logger with a component prefix.
type LogLogger struct {
	logger *log.Logger
	prefix string
}

// NewLogLogger uses the standard logger, so output follows log.SetOutput.
func NewLogLogger(component string) *LogLogger {
	return &LogLogger{logger: log.Default(), prefix: component}
}

func (l *LogLogger) Printf(format string, v ...any) {
	if l.prefix == "" {
		l.logger.Printf(format, v...)
		return
	}
	l.logger.Print(l.prefix + ": " + fmt.Sprintf(format, v...))
}
