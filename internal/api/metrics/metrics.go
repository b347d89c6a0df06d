// Package metrics defines the custom Prometheus metrics for the commerce
// API. It is the single source of truth for metric names, labels, and help
// strings; collectors register themselves with the default registry via
// promauto at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// SignupsTotal counts accounts created, by role.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "bad_password", or "not_found"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ProductWritesTotal counts catalog mutations.
// Labels:
//   - op: "create", "update", or "delete"
//   - result: "ok" or "forbidden"
var ProductWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_writes_total",
		Help:      "Total number of product catalog mutations, by operation and result.",
	},
	[]string{"op", "result"},
)
