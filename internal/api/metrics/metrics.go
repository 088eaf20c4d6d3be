// Package metrics defines and registers all custom Prometheus metrics for
// the ingestion platform. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "docuvault"

// ── Identity metrics ──────────────────────────────────────────────────────────

// RegistrationsTotal counts successful user registrations.
// Label:
//   - role: the role assigned at registration ("admin", "editor", "viewer")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── Ingestion metrics ─────────────────────────────────────────────────────────

// JobsTriggeredTotal counts ingestion jobs accepted for processing.
var JobsTriggeredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_jobs_triggered_total",
		Help:      "Total number of ingestion jobs triggered.",
	},
)

// JobsCompletedTotal counts ingestion jobs that reached the completed state.
var JobsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingestion_jobs_completed_total",
		Help:      "Total number of ingestion jobs completed.",
	},
)

// JobCompletionSeconds observes the wall-clock time from job creation to
// completion.
var JobCompletionSeconds = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ingestion_job_completion_seconds",
		Help:      "Time from job creation to completion, in seconds.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Document metrics ──────────────────────────────────────────────────────────

// DocumentsCreatedTotal counts document metadata records created.
var DocumentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_created_total",
		Help:      "Total number of document records created.",
	},
)
