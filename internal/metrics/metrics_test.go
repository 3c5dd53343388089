package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsInitialization(t *testing.T) {
	assert.NotNil(t, DocumentsProcessedTotal)
	assert.NotNil(t, ExtractDurationSeconds)
	assert.NotNil(t, TextRankIterations)
	assert.NotNil(t, TextRankRunsTotal)
	assert.NotNil(t, GraphVertices)
	assert.NotNil(t, GraphEdges)
	assert.NotNil(t, BenchmarkRecall)
	assert.NotNil(t, SnapshotWriteDurationSeconds)
	assert.NotNil(t, SnapshotSizeBytes)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, RateLimitRequestsTotal)
}
