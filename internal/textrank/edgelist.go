package textrank

// EdgeListGraph stores adjacency as per-vertex neighbor sets. Lookups cost
// a hash probe and no storage grows quadratically, which suits the large
// sparse graphs keyword co-occurrence typically produces.
type EdgeListGraph struct {
	positionIndex

	vertices  []int
	neighbors map[int]map[int]struct{}
}

// NewEdgeListGraph returns an empty adjacency-list graph.
func NewEdgeListGraph() *EdgeListGraph {
	return &EdgeListGraph{
		positionIndex: newPositionIndex(),
		neighbors:     make(map[int]map[int]struct{}),
	}
}

// Vertices returns every vertex in first-added order.
func (g *EdgeListGraph) Vertices() []int {
	out := make([]int, len(g.vertices))
	copy(out, g.vertices)
	return out
}

func (g *EdgeListGraph) ensure(v int) map[int]struct{} {
	if set, known := g.neighbors[v]; known {
		return set
	}
	set := make(map[int]struct{})
	g.neighbors[v] = set
	g.vertices = append(g.vertices, v)
	return set
}

// AddEdge inserts both vertices if missing and marks the edge in both
// directions. Re-adding an existing edge is a no-op.
func (g *EdgeListGraph) AddEdge(a, b int) error {
	if a == b {
		return ErrSelfLoop
	}
	g.ensure(a)[b] = struct{}{}
	g.ensure(b)[a] = struct{}{}
	return nil
}

// IsIncidental reports whether an edge connects a and b.
func (g *EdgeListGraph) IsIncidental(a, b int) (bool, error) {
	na, oka := g.neighbors[a]
	_, okb := g.neighbors[b]
	if !oka || !okb {
		return false, ErrVertexNotFound
	}
	_, linked := na[b]
	return linked, nil
}

// InOutScore returns the degree of v.
func (g *EdgeListGraph) InOutScore(v int) (int, error) {
	set, known := g.neighbors[v]
	if !known {
		return 0, ErrVertexNotFound
	}
	return len(set), nil
}

// FillFromTokens extracts windowed co-occurrence pairs from tokens and adds
// each as an edge.
func (g *EdgeListGraph) FillFromTokens(tokens []int, windowLength int) error {
	return fillFromTokens(g, tokens, windowLength)
}
