// Package logging sets up the suite's logrus logger.
package logging

import (
	"fmt"
	"io"

	"practice_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to out with sensitive fields masked
func New(level logrus.Level, out io.Writer, redactor interfaces.Redactor) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if redactor != nil {
		logger.AddHook(NewRedactHook(redactor))
	}
	return logger
}

// RedactHook masks entry fields whose names look sensitive
type RedactHook struct {
	redactor interfaces.Redactor
}

func NewRedactHook(redactor interfaces.Redactor) *RedactHook {
	return &RedactHook{redactor: redactor}
}

func (h *RedactHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *RedactHook) Fire(entry *logrus.Entry) error {
	for key, value := range entry.Data {
		if value == nil || !h.redactor.IsSensitive(key) {
			continue
		}
		entry.Data[key] = h.redactor.Redact(key, fmt.Sprint(value))
	}
	return nil
}
