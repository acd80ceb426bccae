// Package metrics defines and registers all custom Prometheus metrics for the
// use case hub. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init time;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usecasehub"

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

// TokenVerificationsTotal counts bearer token verdicts at the auth middleware.
// Label:
//   - verdict: "ok", "malformed", "signature_invalid", "expired"
//
// Callers see malformed/signature_invalid/expired as one generic failure;
// this metric is where the distinction survives.
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by verdict.",
	},
	[]string{"verdict"},
)

// RoleDenialsTotal counts requests rejected by the role gate.
// Label:
//   - role: the (normalized) role that was denied
var RoleDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_denials_total",
		Help:      "Total number of requests denied for insufficient role.",
	},
	[]string{"role"},
)

// UseCaseMutationsTotal counts writes to use case records.
// Labels:
//   - action: "create", "update", "delete"
//   - status: resulting lifecycle status (empty for delete)
var UseCaseMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "usecase_mutations_total",
		Help:      "Total number of use case mutations, by action and resulting status.",
	},
	[]string{"action", "status"},
)
