package logging

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/ncobase/relaypage/config"
	"github.com/sirupsen/logrus"
)

// SentryHook forwards error and worse entries to Sentry.
// It owns its hub, so several loggers may report to different projects.
type SentryHook struct {
	hub *sentry.Hub
}

// NewSentryHook creates a hook for the configured DSN.
func NewSentryHook(c *config.Sentry) (*SentryHook, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              c.Endpoint,
		AttachStacktrace: true,
		Environment:      c.Environment,
		Release:          c.Release,
	})
	if err != nil {
		return nil, err
	}
	return &SentryHook{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Levels implements logrus.Hook
func (h *SentryHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

// Fire implements logrus.Hook
func (h *SentryHook) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = sentryLevel(entry.Level)
	event.Message = entry.Message
	event.Timestamp = entry.Time
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		event.Extra[k] = v
	}
	h.hub.CaptureEvent(event)
	return nil
}

// Flush waits for buffered events to be sent
func (h *SentryHook) Flush(timeout time.Duration) bool {
	return h.hub.Flush(timeout)
}

func sentryLevel(level logrus.Level) sentry.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.InfoLevel:
		return sentry.LevelInfo
	default:
		return sentry.LevelDebug
	}
}
