// Package metrics defines and registers all custom Prometheus metrics for the
// MediGuard dashboard backend. It is the single source of truth for metric
// names, labels, and help strings.
//
// All vectors are registered with the default registry at package init via
// promauto; HTTP metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mediguard"

// ── Session metrics ───────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login and registration attempts.
// Labels:
//   - operation: "login" or "register"
//   - result: "success", "invalid_credentials", "duplicate_account", "in_progress", "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login and registration attempts, by outcome.",
	},
	[]string{"operation", "result"},
)

// LogoutsTotal counts logout calls.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout calls.",
	},
)

// SessionRestoresTotal counts startup restore outcomes.
// Label:
//   - result: "restored", "empty", "malformed", "error"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of persisted-session restore attempts, by outcome.",
	},
	[]string{"result"},
)

// RiskScore records every computed login risk score.
var RiskScore = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "risk_score",
		Help:      "Distribution of computed login risk scores.",
		Buckets:   prometheus.LinearBuckets(10, 10, 10), // 10, 20, … 100
	},
)

// ── Navigation metrics ────────────────────────────────────────────────────────

// GuardRedirectsTotal counts navigations the route guard redirected.
// Labels:
//   - from: requested destination
//   - to: redirect target
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of navigations redirected by the route guard.",
	},
	[]string{"from", "to"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts notifications accepted for delivery.
// Label:
//   - kind: "success", "error", "info"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of user notifications emitted, by kind.",
	},
	[]string{"kind"},
)

// NotificationsDroppedTotal counts notifications discarded because the
// dispatcher queue was full.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of notifications dropped on a full dispatcher queue.",
	},
)

// NotificationQueueDepth tracks pending notifications per dispatcher worker.
// Label:
//   - worker_id: numeric worker index
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
