// Package metrics defines all custom Prometheus metrics for the taskdeck
// API. It is the single source of truth for metric names, labels, and help
// strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskdeck"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "created" or "conflict"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens refused by the identity
// resolver. The reason label is internal observability only; clients see a
// single 401.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token", "unknown_user"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by internal reason.",
	},
	[]string{"reason"},
)

// ── Task metrics ──────────────────────────────────────────────────────────────

// TaskOperationsTotal counts completed task mutations.
// Label:
//   - op: "create", "update", or "delete"
var TaskOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_operations_total",
		Help:      "Total number of successful task mutations, by operation.",
	},
	[]string{"op"},
)
