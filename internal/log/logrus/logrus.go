package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/slok/zide/internal/log"
)

// NewLogrus returns a new log.Logger implementation based on a logrus entry.
func NewLogrus(entry *logrus.Entry) log.Logger {
	return logger{entry: entry}
}

type logger struct {
	entry *logrus.Entry
}

func (l logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }
func (l logger) Warningf(format string, args ...interface{}) {
	l.entry.Warningf(format, args...)
}
func (l logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

func (l logger) WithValues(values map[string]interface{}) log.Logger {
	return logger{entry: l.entry.WithFields(values)}
}
