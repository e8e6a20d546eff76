package mylog

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/MarcGrol/fairywrenstore/lib/mycontext"
)

var backend = newBackend(os.Getenv("LOG_FORMAT"), os.Getenv("LOG_LEVEL"))

func newBackend(format string, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if strings.EqualFold(format, "json") {
		// Serverless log drains parse one JSON object per line.
		l.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "severity",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// Configure replaces the process wide log backend. Loggers created earlier
// keep writing to the backend they were created with.
func Configure(format string, level string) {
	backend = newBackend(format, level)
}

type logrusLogger struct {
	componentName string
	entry         *logrus.Entry
}

func New(componentName string) Logger {
	return logrusLogger{
		componentName: componentName,
		entry:         backend.WithField("component", componentName),
	}
}

// NewLeveled returns a logger with Debugf/Infof/Warnf/Errorf, the shape
// third party clients such as stripe-go expect.
func NewLeveled(componentName string) *logrus.Entry {
	return backend.WithField("component", componentName)
}

func (l logrusLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	entry := l.entry
	if traceLabel != "" {
		entry = entry.WithField("label", traceLabel)
	}
	if trace := mycontext.TraceFromContext(ctx); trace != "" {
		entry = entry.WithField("trace", trace)
	}
	entry.Logf(toLevel(severity), format, a...)
}

func toLevel(severity Severity) logrus.Level {
	switch severity {
	case SeverityDebug:
		return logrus.DebugLevel
	case SeverityWarn:
		return logrus.WarnLevel
	case SeverityError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
