// Package notify holds the notification sinks: structured log, in-memory
// inbox, fan-out and the queued dispatcher that shields callers from slow
// sinks.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
)

// LogNotifier writes every notification as a structured log line.
type LogNotifier struct {
	log zerolog.Logger
}

var _ ports.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Notify(_ context.Context, n domain.Notification) {
	ev := l.log.Info()
	if n.Kind == domain.NotifyError {
		ev = l.log.Warn()
	}
	ev.Str("notification_id", n.ID).
		Str("kind", string(n.Kind)).
		Str("description", n.Description).
		Msg(n.Title)
}
