package textrank

// MatrixGraph stores adjacency in a dense boolean matrix indexed by vertex
// insertion order. Edge and degree queries are array scans; inserting a new
// vertex grows every existing row by one column, which favors graphs with
// many high-degree vertices over very sparse ones.
type MatrixGraph struct {
	positionIndex

	index    map[int]int
	vertices []int
	adj      [][]bool
}

// NewMatrixGraph returns an empty dense-matrix graph.
func NewMatrixGraph() *MatrixGraph {
	return &MatrixGraph{
		positionIndex: newPositionIndex(),
		index:         make(map[int]int),
	}
}

// Vertices returns every vertex in first-added order.
func (g *MatrixGraph) Vertices() []int {
	out := make([]int, len(g.vertices))
	copy(out, g.vertices)
	return out
}

func (g *MatrixGraph) ensure(v int) int {
	if i, known := g.index[v]; known {
		return i
	}
	i := len(g.vertices)
	g.index[v] = i
	g.vertices = append(g.vertices, v)
	for r := range g.adj {
		g.adj[r] = append(g.adj[r], false)
	}
	g.adj = append(g.adj, make([]bool, i+1))
	return i
}

// AddEdge inserts both vertices if missing and marks the edge in both
// directions. Re-adding an existing edge is a no-op.
func (g *MatrixGraph) AddEdge(a, b int) error {
	if a == b {
		return ErrSelfLoop
	}
	ia := g.ensure(a)
	ib := g.ensure(b)
	g.adj[ia][ib] = true
	g.adj[ib][ia] = true
	return nil
}

// IsIncidental reports whether an edge connects a and b.
func (g *MatrixGraph) IsIncidental(a, b int) (bool, error) {
	ia, oka := g.index[a]
	ib, okb := g.index[b]
	if !oka || !okb {
		return false, ErrVertexNotFound
	}
	return g.adj[ia][ib], nil
}

// InOutScore returns the degree of v.
func (g *MatrixGraph) InOutScore(v int) (int, error) {
	i, known := g.index[v]
	if !known {
		return 0, ErrVertexNotFound
	}
	degree := 0
	for _, linked := range g.adj[i] {
		if linked {
			degree++
		}
	}
	return degree, nil
}

// FillFromTokens extracts windowed co-occurrence pairs from tokens and adds
// each as an edge.
func (g *MatrixGraph) FillFromTokens(tokens []int, windowLength int) error {
	return fillFromTokens(g, tokens, windowLength)
}
