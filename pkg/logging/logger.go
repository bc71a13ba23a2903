/*
File: logger.go
Description: Structured logging for tabreport. Wraps logrus with a small
configuration surface (level, format, colors) and report-specific helpers so
batch runs produce consistent, greppable output.
*/

package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// LogFormat selects the log output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// LoggerConfig holds the configuration for the logger.
type LoggerConfig struct {
	Level  string    `json:"level"`
	Format LogFormat `json:"format"`
	Colors bool      `json:"colors"`
}

// Validate checks the LoggerConfig for invalid values.
func (c *LoggerConfig) Validate() error {
	if _, err := logrus.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	switch c.Format {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	return nil
}

// Logger provides structured logging for report runs.
type Logger struct {
	config *LoggerConfig
	logger *logrus.Logger
}

// NewLogger creates a logger from the given configuration. A nil
// configuration yields colored text output at info level.
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = &LoggerConfig{
			Level:  "info",
			Format: LogFormatText,
			Colors: true,
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	l := &Logger{
		config: config,
		logger: logrus.New(),
	}

	level, _ := logrus.ParseLevel(config.Level)
	l.logger.SetLevel(level)

	switch config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{})
	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   config.Colors,
			DisableColors: !config.Colors,
		})
	}

	return l, nil
}

// GetLogger returns the underlying logrus logger.
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}

// Report-specific logging methods

// LogTableRead logs the shape of a freshly loaded input table.
func (l *Logger) LogTableRead(path string, rows, columns int) {
	l.logger.WithFields(logrus.Fields{
		"input":   path,
		"rows":    rows,
		"columns": columns,
	}).Info("Table loaded")
}

// LogReportWritten logs a completed report.
func (l *Logger) LogReportWritten(path string, format string) {
	l.logger.WithFields(logrus.Fields{
		"report": path,
		"format": format,
	}).Info("Report written")
}

// LogPolicy logs the disclosure control policy bound to the run.
func (l *Logger) LogPolicy(base, threshold int, runID string) {
	l.logger.WithFields(logrus.Fields{
		"round_base":         base,
		"suppress_threshold": threshold,
		"run_id":             runID,
	}).Info("Disclosure control policy bound")
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
