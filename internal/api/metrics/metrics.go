// Package metrics defines and registers all custom Prometheus metrics for
// the timesheet API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timesheet"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failures are not broken down further,
//     matching the no-enumeration policy of the login endpoint)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// ── Timesheet metrics ─────────────────────────────────────────────────────────

// JobMutationsTotal counts successful job mutations.
// Label:
//   - action: "created", "updated", or "deleted"
var JobMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_mutations_total",
		Help:      "Total number of successful job mutations, by action.",
	},
	[]string{"action"},
)

// EntryMutationsTotal counts successful daily-entry mutations.
// Label:
//   - action: "created", "updated", or "deleted"
var EntryMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entry_mutations_total",
		Help:      "Total number of successful daily entry mutations, by action.",
	},
	[]string{"action"},
)

// EntryShiftHours observes the computed duration of logged shifts.
var EntryShiftHours = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "entry_shift_hours",
		Help:      "Distribution of computed shift durations in hours.",
		Buckets:   []float64{1, 2, 4, 6, 8, 10, 12, 16, 24},
	},
)

// ReportsGeneratedTotal counts report builds.
var ReportsGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of reports generated.",
	},
)
