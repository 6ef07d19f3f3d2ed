// Package metrics defines and registers the Prometheus metrics emitted
// by the core services. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bloodconnect"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "unknown_email" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created identities.
// Label:
//   - role: "donor", "recipient" or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of identities registered, labelled by role.",
	},
	[]string{"role"},
)

// RequestsCreatedTotal counts blood requests created.
// Label:
//   - urgency: the request's urgency level
var RequestsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_created_total",
		Help:      "Total number of blood requests created, labelled by urgency.",
	},
	[]string{"urgency"},
)

// DonorResponsesTotal counts donor responses actually appended to a
// request (idempotent repeats are not counted).
var DonorResponsesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donor_responses_total",
		Help:      "Total number of donor responses recorded on blood requests.",
	},
)

// MatchRunsTotal counts match computations for donors.
var MatchRunsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_runs_total",
		Help:      "Total number of donor match computations.",
	},
)

// SeedRunsTotal counts seeding decisions.
// Label:
//   - result: "seeded" (data written) or "skipped" (already present)
var SeedRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_runs_total",
		Help:      "Total number of seeding checks, labelled by outcome.",
	},
	[]string{"result"},
)
