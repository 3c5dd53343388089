// Package metrics exposes Prometheus instrumentation for the keyword
// extraction pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DocumentsProcessedTotal counts documents run through an extractor
	DocumentsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyrank_documents_processed_total",
			Help: "Total number of documents run through keyword extraction",
		},
		[]string{"extractor", "status"},
	)

	// ExtractDurationSeconds measures end-to-end extraction latency
	ExtractDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "keyrank_extract_duration_seconds",
			Help:    "Duration of keyword extraction per document",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"extractor"},
	)

	// TextRankIterations observes how many scoring passes each run took
	TextRankIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "keyrank_textrank_iterations",
			Help:    "Number of score iterations per TextRank run",
			Buckets: []float64{1, 2, 5, 10, 20, 30, 40, 50},
		},
	)

	// TextRankRunsTotal counts runs by terminal state
	TextRankRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyrank_textrank_runs_total",
			Help: "Total TextRank runs by outcome (converged or budget)",
		},
		[]string{"outcome"},
	)

	// GraphVertices records the vertex count of the last built graph
	GraphVertices = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "keyrank_graph_vertices",
			Help: "Vertices in the most recently built co-occurrence graph",
		},
	)

	// GraphEdges records the edge count of the last built graph
	GraphEdges = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "keyrank_graph_edges",
			Help: "Edges in the most recently built co-occurrence graph",
		},
	)

	// BenchmarkRecall reports per extractor recall on the reference corpus
	BenchmarkRecall = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "keyrank_benchmark_recall",
			Help: "Recall of each extractor against the benchmark keywords",
		},
		[]string{"extractor", "theme"},
	)

	// SnapshotWriteDurationSeconds measures graph snapshot persistence
	SnapshotWriteDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "keyrank_snapshot_write_duration_seconds",
			Help:    "Duration of graph snapshot writes",
			Buckets: prometheus.DefBuckets,
		},
	)

	// SnapshotSizeBytes tracks the size of written snapshot files
	SnapshotSizeBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "keyrank_snapshot_size_bytes",
			Help: "Size of the most recently written graph snapshot",
		},
	)

	// HTTPRequestsTotal counts requests served by the extraction endpoint
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyrank_http_requests_total",
			Help: "Total HTTP requests by path and status code",
		},
		[]string{"path", "code"},
	)

	// RateLimitRequestsTotal counts rate limiter decisions on the API
	RateLimitRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyrank_rate_limit_requests_total",
			Help: "Total requests seen by the rate limiter, by outcome",
		},
		[]string{"outcome"},
	)
)
