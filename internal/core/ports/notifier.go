package ports

import (
	"context"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

// Notifier accepts user-visible notifications. Delivery is fire-and-forget:
// callers never act on the outcome.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}
