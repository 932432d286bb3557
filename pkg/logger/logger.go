package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var (
	// logger is the process-wide logger instance
	logger *Logger
	once   sync.Once
)

// Logger wraps logrus with printf-style helpers and console colours
type Logger struct {
	*logrus.Logger
	green  *color.Color
	yellow *color.Color
}

// New returns the shared logger, creating it on first use
func New() *Logger {
	once.Do(func() {
		logger = &Logger{
			Logger: logrus.New(),
			green:  color.New(color.FgGreen),
			yellow: color.New(color.FgYellow),
		}

		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006/01/02 15:04:05",
			FullTimestamp:   true,
			ForceColors:     true,
			DisableSorting:  true,
		})

		if os.Getenv("DEBUG") == "true" {
			logger.SetLevel(logrus.DebugLevel)
			logger.Info("Debug logging enabled")
		} else {
			logger.SetLevel(logrus.InfoLevel)
		}
	})
	return logger
}

// SetLevelName switches the log level by name ("debug", "info", "warn", ...).
// An empty name leaves the current level untouched.
func (l *Logger) SetLevelName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	l.SetLevel(level)
	return nil
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.Logger.Debug(fmt.Sprintf(format, args...))
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Logger.Info(fmt.Sprintf(format, args...))
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.Logger.Warn(fmt.Sprintf(format, args...))
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Logger.Error(fmt.Sprintf(format, args...))
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.Logger.Fatal(fmt.Sprintf(format, args...))
}

// Available logs a highlighted "resource came up" line
func (l *Logger) Available(format string, args ...interface{}) {
	l.Logger.Info(l.green.Sprintf(format, args...))
}

// Unavailable logs a highlighted "resource went away" line
func (l *Logger) Unavailable(format string, args ...interface{}) {
	l.Logger.Warn(l.yellow.Sprintf(format, args...))
}

// Request returns an entry tagged with the request ID
func (l *Logger) Request(requestID string) *logrus.Entry {
	return l.WithField("request_id", requestID)
}

// IsDebugEnabled returns whether debug logging is enabled
func (l *Logger) IsDebugEnabled() bool {
	return l.GetLevel() >= logrus.DebugLevel
}
