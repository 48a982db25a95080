package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query-engine Prometheus metrics.
var (
	ParseDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "partdex",
			Name:      "parse_duration_seconds",
			Help:      "Intent parse duration in seconds, including the enhancer race",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.05, 0.5, 1, 2.5, 5, 10, 15},
		},
	)

	ParseConfidenceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partdex",
			Name:      "parse_confidence_total",
			Help:      "Parsed intents by final confidence level",
		},
		[]string{"confidence"},
	)

	EnhancerRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partdex",
			Name:      "enhancer_requests_total",
			Help:      "Total number of enhancer requests",
		},
		[]string{"model", "status"}, // status: success / error / timeout / disabled
	)

	EnhancerRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "partdex",
			Name:      "enhancer_request_duration_seconds",
			Help:      "Enhancer request duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 12, 15},
		},
		[]string{"model"},
	)

	EnhancerTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partdex",
			Name:      "enhancer_tokens_total",
			Help:      "Total enhancer tokens consumed",
		},
		[]string{"model", "type"}, // type: prompt / completion / total
	)

	EnhancerBudgetTokensRemaining = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "partdex",
			Name:      "enhancer_budget_tokens_remaining",
			Help:      "Enhancer tokens remaining in the budget window (-1 = unlimited)",
		},
		[]string{"window"}, // window: daily / monthly
	)

	EnhancerCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partdex",
			Name:      "enhancer_cache_total",
			Help:      "Enhancer intent cache lookups",
		},
		[]string{"result"}, // result: hit / miss
	)

	FilterDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "partdex",
			Name:      "filter_duration_seconds",
			Help:      "Filter pipeline duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.025, 0.1, 0.5},
		},
	)

	FilterExcludedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partdex",
			Name:      "filter_excluded_total",
			Help:      "Records excluded by each filter stage",
		},
		[]string{"stage"},
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers Prometheus engine metrics. Must be called once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(ParseDuration)
	prometheus.MustRegister(ParseConfidenceTotal)
	prometheus.MustRegister(EnhancerRequestsTotal)
	prometheus.MustRegister(EnhancerRequestDuration)
	prometheus.MustRegister(EnhancerTokensTotal)
	prometheus.MustRegister(EnhancerBudgetTokensRemaining)
	prometheus.MustRegister(EnhancerCacheTotal)
	prometheus.MustRegister(FilterDuration)
	prometheus.MustRegister(FilterExcludedTotal)
	engineMetricsRegistered = true
}
