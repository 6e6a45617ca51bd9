package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finquery_queries_total",
		Help: "Queries processed, by outcome.",
	}, []string{"outcome"})

	queryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "finquery_query_duration_seconds",
		Help:    "End-to-end pipeline latency.",
		Buckets: prometheus.DefBuckets,
	})
)
