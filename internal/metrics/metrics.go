// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "article_cache_hits_total",
		Help: "Cache lookups served from the cache, by key scope.",
	}, []string{"scope"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "article_cache_misses_total",
		Help: "Cache lookups that fell back to the database, by key scope.",
	}, []string{"scope"})

	CacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "article_cache_errors_total",
		Help: "Cache gateway failures, by operation.",
	}, []string{"op"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Completed HTTP requests, by method, route and status.",
	}, []string{"method", "route", "status"})
)
