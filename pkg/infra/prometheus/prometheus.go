package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(prometheus.Labels{"app": "semspace"}, registry)

var (
	// Latency buckets in milliseconds. Generation calls on a local model sit
	// in the upper range.
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000, 60000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "semspace_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "semspace_request_latency_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"method", "route"},
	)

	GenerationLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "semspace_generation_latency_ms",
			Help:    "Language model call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider", "outcome"},
	)

	EmbeddingLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "semspace_embedding_latency_ms",
			Help:    "Embedding call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider"},
	)

	EmbeddingCache = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "semspace_embedding_cache_total",
			Help: "Embedding cache lookups by result",
		},
		[]string{"result"}, // hit, miss or error
	)

	IndexSize = promauto.With(registerer).NewGauge(
		prometheus.GaugeOpts{
			Name: "semspace_index_size",
			Help: "Number of sentences in the vector index",
		},
	)

	ProjectionLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "semspace_projection_latency_ms",
			Help:    "3D projection latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"projector"},
	)
)

type MetricsConfig struct {
	Enabled        bool
	EnableProcess  bool // process collector (cpu, memory, fds)
	EnablePerRoute bool // route label on request metrics
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:        true,
		EnableProcess:  true,
		EnablePerRoute: true,
	}
}

var (
	Config   MetricsConfig
	initOnce sync.Once
)

func Initialize(cfg MetricsConfig) {
	Config = cfg
	initOnce.Do(func() {
		if cfg.EnableProcess {
			registry.MustRegister(
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				collectors.NewGoCollector(),
			)
		}
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

// RegisterLogDropped exports the number of log lines the async file writer
// discarded because its queue was full.
func RegisterLogDropped(dropped func() uint64) error {
	return registerer.Register(prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Name: "semspace_log_dropped_lines_total",
			Help: "Log lines dropped because the async log queue was full",
		},
		func() float64 { return float64(dropped()) },
	))
}

// Gatherer exposes the registry for the metrics endpoint.
func Gatherer() prometheus.Gatherer {
	return registry
}
