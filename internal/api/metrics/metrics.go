// Package metrics defines and registers all custom Prometheus metrics for the
// projclock API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default registry at import time via promauto;
// the /metrics route exposes them through promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "projclock"

// AuthzDenialsTotal counts authorization denials by reason code.
// Label:
//   - reason: the denial reason (e.g. "not_owner", "not_project_member")
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of denied authorization checks, by reason.",
	},
	[]string{"reason"},
)

// ActivitiesCreatedTotal counts newly started activities.
var ActivitiesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_created_total",
		Help:      "Total number of activities started.",
	},
)

// ActivitiesStoppedTotal counts activities closed via the stop endpoint.
var ActivitiesStoppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_stopped_total",
		Help:      "Total number of activities stopped.",
	},
)

// AuditEventsTotal counts audit events successfully persisted.
// Labels:
//   - entity: "project" or "activity"
//   - action: "create", "update", or "delete"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events persisted, by entity and action.",
	},
	[]string{"entity", "action"},
)

// AuditQueueDepth tracks the number of audit events waiting in each worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
