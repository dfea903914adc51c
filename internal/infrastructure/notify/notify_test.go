package notify

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

func note(i int, kind domain.NotificationKind) domain.Notification {
	return domain.Notification{ID: fmt.Sprintf("n-%d", i), Kind: kind, Title: fmt.Sprintf("title %d", i)}
}

func TestInbox_NewestFirstAndBounded(t *testing.T) {
	inbox := NewInbox(3)
	ctx := context.Background()

	assert.Empty(t, inbox.Recent(0))

	inbox.Notify(ctx, note(1, domain.NotifyInfo))
	inbox.Notify(ctx, note(2, domain.NotifyInfo))
	got := inbox.Recent(0)
	require.Len(t, got, 2)
	assert.Equal(t, "n-2", got[0].ID)
	assert.Equal(t, "n-1", got[1].ID)

	for i := 3; i <= 5; i++ {
		inbox.Notify(ctx, note(i, domain.NotifySuccess))
	}
	got = inbox.Recent(0)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"n-5", "n-4", "n-3"}, []string{got[0].ID, got[1].ID, got[2].ID})

	limited := inbox.Recent(2)
	require.Len(t, limited, 2)
	assert.Equal(t, "n-5", limited[0].ID)
}

func TestInbox_DefaultSize(t *testing.T) {
	inbox := NewInbox(0)
	for i := range defaultInboxSize + 10 {
		inbox.Notify(context.Background(), note(i, domain.NotifyInfo))
	}
	assert.Len(t, inbox.Recent(0), defaultInboxSize)
}

func TestFanout_DeliversToEverySink(t *testing.T) {
	a, b := NewInbox(5), NewInbox(5)
	Fanout{a, nil, b}.Notify(context.Background(), note(1, domain.NotifyError))

	assert.Len(t, a.Recent(0), 1)
	assert.Len(t, b.Recent(0), 1)
}

func TestLogNotifier_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	NewLogNotifier(zerolog.New(&buf)).Notify(context.Background(), domain.Notification{
		ID:          "n-1",
		Kind:        domain.NotifyError,
		Title:       "Authentication failed",
		Description: domain.MsgInvalidCredentials,
	})

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"message":"Authentication failed"`)
	assert.Contains(t, out, `"kind":"error"`)
	assert.Contains(t, out, `"notification_id":"n-1"`)
}

type collectingSink struct {
	mu   sync.Mutex
	got  []domain.Notification
	gate chan struct{}
}

func (s *collectingSink) Notify(_ context.Context, n domain.Notification) {
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
}

func (s *collectingSink) snapshot() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.got...)
}

func TestDispatcher_DeliversInOrderPerKind(t *testing.T) {
	sink := &collectingSink{}
	d := NewDispatcher(3, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := range 20 {
		d.Notify(ctx, note(i, domain.NotifySuccess))
	}

	require.Eventually(t, func() bool { return len(sink.snapshot()) == 20 }, 5*time.Second, 5*time.Millisecond)
	for i, n := range sink.snapshot() {
		assert.Equal(t, fmt.Sprintf("n-%d", i), n.ID)
	}
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	sink := &collectingSink{gate: make(chan struct{})}
	d := NewDispatcher(1, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// One notification is held by the blocked worker, channelBuffer more fill
	// the queue, and the rest are dropped without blocking the caller.
	done := make(chan struct{})
	go func() {
		for i := range channelBuffer + 10 {
			d.Notify(ctx, note(i, domain.NotifyInfo))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Notify blocked on a full queue")
	}

	close(sink.gate)
	require.Eventually(t, func() bool { return len(sink.snapshot()) > 0 }, 5*time.Second, 5*time.Millisecond)
	assert.LessOrEqual(t, len(sink.snapshot()), channelBuffer+1)
}

func TestDispatcher_DefaultWorkers(t *testing.T) {
	d := NewDispatcher(0, &collectingSink{}, zerolog.Nop())
	assert.Len(t, d.workers, defaultWorkers)

	for _, kind := range []domain.NotificationKind{domain.NotifySuccess, domain.NotifyError, domain.NotifyInfo} {
		idx := d.shardIndex(kind)
		assert.Equal(t, idx, d.shardIndex(kind), "shard must be deterministic")
		assert.True(t, idx >= 0 && idx < defaultWorkers)
	}
}
