// Package metrics defines and registers all custom Prometheus metrics for the
// property management system. It is the single source of truth for metric
// names, labels, and help strings. Metrics register themselves with the
// default registry via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "propertysys"

// ── Authentication workflow ──────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "unknown_user" or "bad_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CodesIssuedTotal counts one-time codes generated and handed to the notifier.
// Label:
//   - flow: "registration" or "recovery"
var CodesIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "codes_issued_total",
		Help:      "Total number of one-time codes issued, by workflow.",
	},
	[]string{"flow"},
)

// RegistrationsTotal counts completed registrations (user record persisted).
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully completed registrations.",
	},
)

// RecoveriesTotal counts completed password recoveries.
var RecoveriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recoveries_total",
		Help:      "Total number of successfully completed password recoveries.",
	},
)

// NotifierFailuresTotal counts code deliveries that failed. The workflow
// proceeds regardless, so this counter is the only visibility into lost codes.
var NotifierFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifier_failures_total",
		Help:      "Total number of failed code delivery attempts.",
	},
)

// ── Access gate ──────────────────────────────────────────────────────────────

// GateRedirectsTotal counts requests the access gate turned away.
// Label:
//   - rule: "protected" (anonymous hit a protected page), "auth_only"
//     (authenticated hit an auth page) or "logout"
var GateRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_redirects_total",
		Help:      "Total number of requests redirected by the access gate, by rule.",
	},
	[]string{"rule"},
)
