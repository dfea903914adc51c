package notify

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
	"github.com/mediguard/security-dashboard/internal/pkg/metrics"
)

const (
	defaultWorkers = 2
	channelBuffer  = 128
)

// Dispatcher queues notifications and hands them to the downstream sink on
// worker goroutines. Notifications are sharded by kind, so toasts of one kind
// reach the sink in emission order.
type Dispatcher struct {
	workers []chan domain.Notification
	sink    ports.Notifier
	log     zerolog.Logger
}

var _ ports.Notifier = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Notification, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// anything still queued at that point is discarded.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify enqueues n without blocking. A full worker queue drops n.
func (d *Dispatcher) Notify(_ context.Context, n domain.Notification) {
	idx := d.shardIndex(n.Kind)
	select {
	case d.workers[idx] <- n:
		metrics.NotificationsTotal.WithLabelValues(string(n.Kind)).Inc()
		metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.NotificationsDroppedTotal.Inc()
		d.log.Warn().
			Str("notification_id", n.ID).
			Str("kind", string(n.Kind)).
			Int("worker_id", idx).
			Msg("notification queue full, dropping")
	}
}

// shardIndex maps a notification kind deterministically to a worker index.
func (d *Dispatcher) shardIndex(kind domain.NotificationKind) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(kind))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Notification) {
	depth := metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			// Shutdown stops the worker loop, not a delivery already under way.
			d.sink.Notify(context.WithoutCancel(ctx), n)
		}
	}
}
