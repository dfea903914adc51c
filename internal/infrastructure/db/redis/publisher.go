package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
)

// NotificationChannel is the pub/sub channel toasts are published on.
const NotificationChannel = "mediguard:notifications"

// Publisher fans notifications out to Redis subscribers as JSON.
type Publisher struct {
	client  redis.Cmdable
	channel string
	log     zerolog.Logger
}

var _ ports.Notifier = (*Publisher)(nil)

// NewPublisher publishes on channel, or NotificationChannel when empty.
func NewPublisher(client redis.Cmdable, channel string, log zerolog.Logger) *Publisher {
	if channel == "" {
		channel = NotificationChannel
	}
	return &Publisher{client: client, channel: channel, log: log}
}

// Notify publishes n. Failures are logged and otherwise ignored.
func (p *Publisher) Notify(ctx context.Context, n domain.Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		p.log.Warn().Err(err).Msg("failed to encode notification")
		return
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.log.Warn().Err(err).Str("channel", p.channel).Msg("failed to publish notification")
	}
}
