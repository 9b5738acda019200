package logger

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Logger struct {
	*logrus.Entry
}

// New builds a run logger writing to w. An empty or "local" environment gets
// colored text; anything else gets one JSON object per line.
func New(w io.Writer, environment, level string) *Logger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(parseLevel(level))

	if environment == "" || environment == "local" {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			ForceColors:     true,
		})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}
	return &Logger{Entry: logrus.NewEntry(base)}
}

// parseLevel falls back to info for empty or unknown names.
func parseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// WithRun tags every entry of one generation run with a fresh run id.
func (l *Logger) WithRun() *Logger {
	return &Logger{Entry: l.Entry.WithField("run_id", uuid.NewString())}
}

// WithError keeps the error as a plain string field so JSON output stays flat.
func (l *Logger) WithError(err error) *logrus.Entry {
	if err == nil {
		return l.Entry
	}
	return l.Entry.WithField("error", err.Error())
}
