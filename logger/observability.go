package logger

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Component constants for consistent labeling
const (
	ComponentServer     = "segment_server"
	ComponentEngine     = "segment_engine"
	ComponentClassifier = "type_classifier"
	ComponentConfig     = "configuration"
)

// Category constants for log classification
const (
	CategoryRequest        = "request"
	CategorySegmentation   = "segmentation"
	CategoryClassification = "classification"
	CategoryFallback       = "fallback"
	CategoryError          = "error"
	CategoryHealth         = "health"
)

// ObservabilityLogger writes structured JSONL via logrus for Loki ingestion
type ObservabilityLogger struct {
	logger *logrus.Logger
	file   *os.File
}

// NewObservabilityLogger creates a structured logger writing to
// <logDir>/agent-segmenter.jsonl at the given minimum level.
func NewObservabilityLogger(logDir string, minLevel Level) (*ObservabilityLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}

	logPath := filepath.Join(logDir, "agent-segmenter.jsonl")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(file)
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	logger.SetLevel(logrusLevel(minLevel))

	return &ObservabilityLogger{
		logger: logger,
		file:   file,
	}, nil
}

// logrusLevel maps the service level enum to the logrus scale
func logrusLevel(level Level) logrus.Level {
	switch level {
	case DEBUG:
		return logrus.DebugLevel
	case WARN:
		return logrus.WarnLevel
	case ERROR:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Close closes the log file
func (o *ObservabilityLogger) Close() error {
	if o.file != nil {
		return o.file.Close()
	}
	return nil
}

// createEntry creates a logrus entry with the standard service fields
func (o *ObservabilityLogger) createEntry(component, category, requestID string, fields map[string]interface{}) *logrus.Entry {
	entry := o.logger.WithFields(logrus.Fields{
		"service":   "agent-segmenter",
		"component": component,
		"category":  category,
	})

	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	if fields != nil {
		entry = entry.WithFields(fields)
	}

	return entry
}

// Debug logs a debug message
func (o *ObservabilityLogger) Debug(component, category, requestID, message string, fields map[string]interface{}) {
	o.createEntry(component, category, requestID, fields).Debug(message)
}

// Info logs an info message
func (o *ObservabilityLogger) Info(component, category, requestID, message string, fields map[string]interface{}) {
	o.createEntry(component, category, requestID, fields).Info(message)
}

// Warn logs a warning message
func (o *ObservabilityLogger) Warn(component, category, requestID, message string, fields map[string]interface{}) {
	o.createEntry(component, category, requestID, fields).Warn(message)
}

// Error logs an error message
func (o *ObservabilityLogger) Error(component, category, requestID, message string, fields map[string]interface{}) {
	o.createEntry(component, category, requestID, fields).Error(message)
}
