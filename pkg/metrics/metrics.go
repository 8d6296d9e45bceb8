package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the spot recommendation HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "spot_recommend_latency_seconds",
		Help:    "Latency of spot recommendation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served, by outcome
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "spot_recommend_requests_total",
		Help: "Total number of spot recommend requests",
	}, []string{"outcome"})

	// Records processed per ingestion pass, by result
	IngestRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_records_total",
		Help: "Training records processed by the ingestion pipeline",
	}, []string{"action"})

	// Total completed ingestion passes
	IngestPasses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ingest_passes_total",
		Help: "Total number of completed ingestion passes",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		IngestRecords,
		IngestPasses,
	)
}
