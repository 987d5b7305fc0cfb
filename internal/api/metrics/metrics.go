// Package metrics defines and registers all custom Prometheus metrics for
// the Compayre account service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created through registration.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthzDenialsTotal counts rejected authorization checks.
// Label:
//   - predicate: the gate that rejected (e.g. "require_admin")
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of requests rejected by a permission predicate.",
	},
	[]string{"predicate"},
)

// DataAccessChecksTotal counts entitlement checks against the access matrix.
// Labels:
//   - category: the data category checked (e.g. "director_pay")
//   - result: "allowed" or "denied"
var DataAccessChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "data_access_checks_total",
		Help:      "Total number of data category entitlement checks, by category and result.",
	},
	[]string{"category", "result"},
)

// NotificationsDispatchedTotal counts delivered account notifications.
// Label:
//   - type: notification type (e.g. "welcome", "subscription_changed")
var NotificationsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dispatched_total",
		Help:      "Total number of account notifications delivered, by type.",
	},
	[]string{"type"},
)
