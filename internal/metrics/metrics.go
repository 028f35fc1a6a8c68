// Package metrics declares the Prometheus collectors of the console.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nauticalflow_gateway_requests_total",
		Help: "Backend requests sent through the gateway, by outcome",
	}, []string{"method", "outcome"})

	GatewayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nauticalflow_gateway_request_duration_seconds",
		Help:    "Time from dispatch until the response body was read",
		Buckets: prometheus.ExponentialBuckets(0.01, 2.0, 12), // 10ms to ~20s
	}, []string{"method"})

	SessionTerminations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nauticalflow_session_terminations_total",
		Help: "Logouts performed by the session controller, by reason",
	}, []string{"reason"})

	GuardDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nauticalflow_guard_decisions_total",
		Help: "Session guard results for protected commands",
	}, []string{"result"})
)

// Gateway outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeEmpty        = "empty"
	OutcomeUnavailable  = "unavailable"
	OutcomeUnauthorized = "unauthorized"
	OutcomeRejected     = "rejected"
	OutcomeProtocol     = "protocol"
)

// Guard results.
const (
	GuardAllowed         = "allowed"
	GuardUnauthenticated = "unauthenticated"
	GuardExpired         = "expired"
)
