package observe

import (
	"log"
	"time"

	"github.com/getsentry/sentry-go"
)

const _sentryFlushTimeout = 5 * time.Second

// SentryHook forwards errors to sentry when a DSN is configured. With an
// empty DSN it stays inert, so callers can wire it unconditionally.
type SentryHook struct {
	enabled bool
}

// NewSentryHook initializes the sentry SDK. Initialization failures are
// logged and leave the hook inert rather than failing startup.
func NewSentryHook(appName, env, dsn string) *SentryHook {
	if dsn == "" {
		return &SentryHook{}
	}

	err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
		Dsn:              dsn,
		Environment:      env,
		ServerName:       appName,
	})
	if err != nil {
		log.Println("sentry init error:", err)
		return &SentryHook{}
	}

	return &SentryHook{enabled: true}
}

// CaptureError reports an error to sentry.
func (h *SentryHook) CaptureError(err error) {
	if !h.enabled {
		return
	}
	sentry.CaptureException(err)
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() {
	if !h.enabled {
		return
	}
	sentry.Flush(_sentryFlushTimeout)
}
