package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "fleet", Name: "http_requests_total", Help: "HTTP requests by method, route and status."},
		[]string{"method", "route", "status"},
	)
	AuthFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "fleet", Name: "auth_failures_total", Help: "Rejected requests by failure reason."},
		[]string{"reason"},
	)
	ExchangeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Namespace: "fleet", Name: "auth_exchange_duration_seconds", Help: "Duration of upstream OAuth session-data calls."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RequestsTotal)
	reg.MustRegister(AuthFailures)
	reg.MustRegister(ExchangeDuration)
}
