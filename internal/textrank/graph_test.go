package textrank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both backends must satisfy the same observable contract, so every graph
// test runs against both.
var backends = []struct {
	name string
	make func() Graph
}{
	{"matrix", func() Graph { return NewMatrixGraph() }},
	{"edgelist", func() Graph { return NewEdgeListGraph() }},
}

func TestGraph_AddEdge(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			require.NoError(t, g.AddEdge(1, 2))

			assert.Equal(t, []int{1, 2}, g.Vertices())
			for _, pair := range [][2]int{{1, 2}, {2, 1}} {
				linked, err := g.IsIncidental(pair[0], pair[1])
				require.NoError(t, err)
				assert.True(t, linked, "edge must be visible from both sides")
			}
		})
	}
}

func TestGraph_AddEdgeSelfLoop(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			assert.ErrorIs(t, g.AddEdge(5, 5), ErrSelfLoop)
			assert.Empty(t, g.Vertices(), "rejected edge must not insert vertices")

			require.NoError(t, g.AddEdge(5, 6))
			assert.ErrorIs(t, g.AddEdge(5, 5), ErrSelfLoop)
			degree, err := g.InOutScore(5)
			require.NoError(t, err)
			assert.Equal(t, 1, degree, "rejected edge must leave the graph unchanged")
		})
	}
}

func TestGraph_ReAddEdgeIsNoOp(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			require.NoError(t, g.AddEdge(1, 2))
			require.NoError(t, g.AddEdge(2, 1))
			require.NoError(t, g.AddEdge(1, 2))

			for _, v := range []int{1, 2} {
				degree, err := g.InOutScore(v)
				require.NoError(t, err)
				assert.Equal(t, 1, degree)
			}
			assert.Equal(t, []int{1, 2}, g.Vertices())
		})
	}
}

func TestGraph_AbsentVertexQueries(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			require.NoError(t, g.AddEdge(1, 2))

			_, err := g.IsIncidental(1, 99)
			assert.ErrorIs(t, err, ErrVertexNotFound)
			_, err = g.IsIncidental(99, 1)
			assert.ErrorIs(t, err, ErrVertexNotFound)
			_, err = g.InOutScore(99)
			assert.ErrorIs(t, err, ErrVertexNotFound)
		})
	}
}

func TestGraph_FillFromTokens(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			require.NoError(t, g.FillFromTokens([]int{1, 2, 3, 1, 2}, 3))

			assert.ElementsMatch(t, []int{1, 2, 3}, g.Vertices())
			for _, v := range []int{1, 2, 3} {
				degree, err := g.InOutScore(v)
				require.NoError(t, err)
				assert.Equal(t, 2, degree, "vertex %d", v)
			}
		})
	}
}

func TestGraph_FillFromTokensPropagatesExtractorErrors(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			assert.ErrorIs(t, g.FillFromTokens(nil, 3), ErrNoTokens)
			assert.ErrorIs(t, g.FillFromTokens([]int{1, 2, 3}, 1), ErrInvalidWindow)
			assert.Empty(t, g.Vertices(), "failed fills must not mutate the graph")
		})
	}
}

func TestGraph_FillFromTokensWithoutPairs(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			require.NoError(t, g.FillFromTokens([]int{7, 7, 7}, 2))
			assert.Empty(t, g.Vertices())
		})
	}
}

func TestGraph_FillFromTokensAccumulates(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			require.NoError(t, g.FillFromTokens([]int{1, 2}, 2))
			require.NoError(t, g.FillFromTokens([]int{3, 4}, 2))

			assert.Equal(t, []int{1, 2, 3, 4}, g.Vertices())
			linked, err := g.IsIncidental(1, 2)
			require.NoError(t, err)
			assert.True(t, linked)
			linked, err = g.IsIncidental(1, 3)
			require.NoError(t, err)
			assert.False(t, linked)
		})
	}
}

func TestGraph_BackendEquivalence(t *testing.T) {
	tokens := []int{10, 11, 12, 10, 13, 11, 14, 10, 12, 15, 13, 11}

	dense := NewMatrixGraph()
	sparse := NewEdgeListGraph()
	require.NoError(t, dense.FillFromTokens(tokens, 4))
	require.NoError(t, sparse.FillFromTokens(tokens, 4))
	require.NoError(t, dense.AddEdge(100, 101))
	require.NoError(t, sparse.AddEdge(100, 101))

	vertices := dense.Vertices()
	assert.Equal(t, vertices, sparse.Vertices(), "vertex sets and order must match")

	for _, a := range vertices {
		denseDegree, err := dense.InOutScore(a)
		require.NoError(t, err)
		sparseDegree, err := sparse.InOutScore(a)
		require.NoError(t, err)
		assert.Equal(t, denseDegree, sparseDegree, "degree of %d", a)

		for _, b := range vertices {
			if a == b {
				continue
			}
			denseLinked, err := dense.IsIncidental(a, b)
			require.NoError(t, err)
			sparseLinked, err := sparse.IsIncidental(a, b)
			require.NoError(t, err)
			assert.Equal(t, denseLinked, sparseLinked, "edge (%d,%d)", a, b)
		}
	}
}

func TestGraph_PositionWeightsScenario(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			g.FillPositions([]int{10, 20, 10})
			require.NoError(t, g.CalculatePositionWeights())

			weights := g.PositionWeights()
			require.Len(t, weights, 2)
			// Raw sums are 1/1+1/3 for 10 and 1/2 for 20, normalizing to
			// 8/11 and 3/11.
			assert.InDelta(t, 8.0/11.0, weights[10], 1e-9)
			assert.InDelta(t, 3.0/11.0, weights[20], 1e-9)
			assert.InDelta(t, 1.0, weights[10]+weights[20], 1e-9)
		})
	}
}

func TestGraph_PositionWeightsSumToOne(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			g.FillPositions([]int{5, 3, 5, 8, 13, 3, 21, 5, 8})
			require.NoError(t, g.CalculatePositionWeights())

			var sum float64
			for _, w := range g.PositionWeights() {
				sum += w
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		})
	}
}

func TestGraph_PositionWeightsAccumulateAcrossCalls(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			g.FillPositions([]int{1})
			g.FillPositions([]int{1, 2})
			require.NoError(t, g.CalculatePositionWeights())

			weights := g.PositionWeights()
			// Vertex 1 holds positions [1, 1], vertex 2 holds [2]: the
			// numbering restarts on every call.
			assert.InDelta(t, 2.0/2.5, weights[1], 1e-9)
			assert.InDelta(t, 0.5/2.5, weights[2], 1e-9)
		})
	}
}

func TestGraph_PositionWeightsPreconditions(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			assert.ErrorIs(t, g.CalculatePositionWeights(), ErrNoPositions)
			assert.Empty(t, g.PositionWeights(), "weights must stay empty until calculated")
		})
	}
}

func TestGraph_PositionWeightsRecalculated(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			g.FillPositions([]int{1})
			require.NoError(t, g.CalculatePositionWeights())
			assert.InDelta(t, 1.0, g.PositionWeights()[1], 1e-9)

			g.FillPositions([]int{2})
			require.NoError(t, g.CalculatePositionWeights())
			weights := g.PositionWeights()
			assert.InDelta(t, 0.5, weights[1], 1e-9)
			assert.InDelta(t, 0.5, weights[2], 1e-9)
		})
	}
}

func TestGraph_PositionWeightsCopy(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			g := backend.make()
			g.FillPositions([]int{1, 2})
			require.NoError(t, g.CalculatePositionWeights())

			weights := g.PositionWeights()
			weights[1] = 42
			assert.NotEqual(t, 42.0, g.PositionWeights()[1], "returned map must not alias internal state")
		})
	}
}
