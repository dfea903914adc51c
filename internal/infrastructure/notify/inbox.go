package notify

import (
	"context"
	"sync"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
)

const defaultInboxSize = 50

// Inbox keeps the most recent notifications in a fixed-size ring.
type Inbox struct {
	mu    sync.RWMutex
	items []domain.Notification
	next  int
	full  bool
}

var _ ports.Notifier = (*Inbox)(nil)

// NewInbox returns an inbox holding up to size entries; size <= 0 uses
// defaultInboxSize.
func NewInbox(size int) *Inbox {
	if size <= 0 {
		size = defaultInboxSize
	}
	return &Inbox{items: make([]domain.Notification, size)}
}

// Notify stores n, overwriting the oldest entry once the ring is full.
func (b *Inbox) Notify(_ context.Context, n domain.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items[b.next] = n
	b.next = (b.next + 1) % len(b.items)
	if b.next == 0 {
		b.full = true
	}
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all.
func (b *Inbox) Recent(limit int) []domain.Notification {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := b.next
	if b.full {
		count = len(b.items)
	}
	if limit > 0 && limit < count {
		count = limit
	}

	out := make([]domain.Notification, 0, count)
	idx := b.next
	for range count {
		idx = (idx - 1 + len(b.items)) % len(b.items)
		out = append(out, b.items[idx])
	}
	return out
}
