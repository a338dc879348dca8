package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	CacheHits        *prometheus.CounterVec
	CacheMisses      *prometheus.CounterVec
	CacheSharedTotal *prometheus.CounterVec

	EvaluationDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
}

// New создает и регистрирует метрики в дефолтном регистраторе prometheus
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "result_cache_hits_total",
			Help:        "Result cache hits per operation",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		CacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "result_cache_misses_total",
			Help:        "Result cache misses per operation",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		CacheSharedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "result_cache_shared_total",
			Help:        "Computations shared between concurrent callers via single-flight",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		EvaluationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "engine_evaluation_duration_seconds",
			Help:        "Duration of a full engine evaluation (cache miss path)",
			ConstLabels: constLabels,
			Buckets:     []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}, []string{"operation"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"query", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"query"}),
	}
}
