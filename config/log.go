package config

import (
	"fmt"
	"os"
	"path"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggersMu sync.Mutex
	loggers   []*logrus.Logger
)

// NamedLogger creates named package logger.
func NamedLogger(name string) *logrus.Logger {
	logger := &logrus.Logger{
		Out: os.Stderr,
		Formatter: &CustomTextFormatter{
			TextFormatter: logrus.TextFormatter{
				ForceColors: true,
			},
			name: name,
		},
		Hooks:        make(logrus.LevelHooks),
		Level:        logrus.InfoLevel,
		ReportCaller: true,
	}
	loggersMu.Lock()
	loggers = append(loggers, logger)
	loggersMu.Unlock()
	return logger
}

// SetLoggingLevel applies the named level to every logger created by
// NamedLogger.
func SetLoggingLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid logging level %q", name)
	}
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for _, logger := range loggers {
		logger.SetLevel(level)
	}
	return nil
}

// CustomTextFormatter ...
type CustomTextFormatter struct {
	logrus.TextFormatter
	name string
}

// Format renders a single log entry
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	file, no := "???", 0
	if entry.Caller != nil {
		file, no = path.Base(entry.Caller.File), entry.Caller.Line
	}
	entry.Message = fmt.Sprintf("[%-9s][%-15s:%03d] %s", f.name, file, no, entry.Message)
	// The caller is folded into the message, so keep the embedded formatter
	// from appending its own func/file fields.
	entry.Caller = nil
	return f.TextFormatter.Format(entry)
}
