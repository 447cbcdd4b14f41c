package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// requestsTotal counts HTTP requests by method, route, and status.
// Labels use the route template (gin's FullPath), not the raw URL, so
// parameterized paths do not explode cardinality.
var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "openclaw",
	Subsystem: "gateway",
	Name:      "requests_total",
	Help:      "Total HTTP requests by method, route, and status",
}, []string{"method", "path", "status"})
