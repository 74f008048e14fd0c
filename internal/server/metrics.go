package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	conversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "numerals",
		Name:      "conversions_total",
		Help:      "Conversions served, by operation, system and outcome.",
	}, []string{"op", "system", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "numerals",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"route", "status"})
)

func outcome(failed bool) string {
	if failed {
		return "error"
	}
	return "ok"
}
