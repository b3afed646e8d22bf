// Package metrics defines the custom Prometheus metrics for the betting
// core's HTTP surface. It is the single source of truth for metric names,
// labels, and help strings. Request-level metrics (latency, status codes)
// come from the echoprometheus middleware; these counters cover domain
// outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "betting"

// BetsPlacedTotal counts bets accepted and persisted with status VALIDATED.
var BetsPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bets_placed_total",
		Help:      "Total number of bets validated and persisted.",
	},
)

// BetsRejectedTotal counts bets refused before persistence.
// Label:
//   - reason: "validation" or "error"
var BetsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bets_rejected_total",
		Help:      "Total number of bet placements refused, by reason.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "rejected" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)
