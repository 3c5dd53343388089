package textrank

import "errors"

var (
	// ErrSelfLoop is returned when an edge would connect a vertex to itself.
	ErrSelfLoop = errors.New("self-loop edges are not allowed")
	// ErrVertexNotFound is returned when a queried vertex is not in the graph.
	ErrVertexNotFound = errors.New("vertex not present in graph")
	// ErrNoPositions is returned when position weights are requested before
	// any positions were recorded.
	ErrNoPositions = errors.New("no position records to weight")
)

// Graph is the capability contract shared by both co-occurrence graph
// backends. Scorers depend on this interface only, so either backend is
// substitutable for the other.
type Graph interface {
	// Vertices returns every vertex in the order it was first added.
	Vertices() []int
	// AddEdge inserts both vertices if missing and marks the undirected edge
	// between them. Adding an existing edge is a no-op. Fails with
	// ErrSelfLoop when a == b, leaving the graph unchanged.
	AddEdge(a, b int) error
	// IsIncidental reports whether an edge connects a and b. Fails with
	// ErrVertexNotFound when either vertex is absent.
	IsIncidental(a, b int) (bool, error)
	// InOutScore returns the degree of v, or ErrVertexNotFound.
	InOutScore(v int) (int, error)
	// FillFromTokens extracts windowed co-occurrence pairs from tokens and
	// adds each as an edge. Extraction errors leave the graph unchanged.
	// Effects accumulate across calls.
	FillFromTokens(tokens []int, windowLength int) error
	// FillPositions appends the 1-based positions of the call's sequence to
	// each token's position record. Records accumulate across calls; the
	// numbering restarts at 1 on every call.
	FillPositions(tokens []int)
	// CalculatePositionWeights derives normalized position weights from the
	// recorded positions, overwriting any previous result. Fails with
	// ErrNoPositions when nothing was recorded.
	CalculatePositionWeights() error
	// PositionWeights returns a copy of the last computed weights, empty if
	// CalculatePositionWeights never ran.
	PositionWeights() map[int]float64
}

func fillFromTokens(g Graph, tokens []int, windowLength int) error {
	pairs, err := ExtractPairs(tokens, windowLength)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if err := g.AddEdge(p.A, p.B); err != nil {
			return err
		}
	}
	return nil
}

// positionIndex tracks where tokens occurred in source sequences and derives
// normalized position weights from the records. Both graph backends embed
// one; recorded tokens need not be graph vertices.
type positionIndex struct {
	order     []int
	positions map[int][]int
	weights   map[int]float64
}

func newPositionIndex() positionIndex {
	return positionIndex{
		positions: make(map[int][]int),
		weights:   make(map[int]float64),
	}
}

// FillPositions appends 1-based positions of tokens to each token's record.
func (p *positionIndex) FillPositions(tokens []int) {
	for i, tok := range tokens {
		if _, known := p.positions[tok]; !known {
			p.order = append(p.order, tok)
		}
		p.positions[tok] = append(p.positions[tok], i+1)
	}
}

// CalculatePositionWeights sums the reciprocals of each token's recorded
// positions and normalizes by the grand total so all weights sum to 1.
// Tokens are visited in first-seen order, keeping the float accumulation
// reproducible run to run.
func (p *positionIndex) CalculatePositionWeights() error {
	if len(p.positions) == 0 {
		return ErrNoPositions
	}

	raw := make(map[int]float64, len(p.positions))
	var total float64
	for _, tok := range p.order {
		var sum float64
		for _, pos := range p.positions[tok] {
			sum += 1 / float64(pos)
		}
		raw[tok] = sum
		total += sum
	}

	weights := make(map[int]float64, len(raw))
	for _, tok := range p.order {
		weights[tok] = raw[tok] / total
	}
	p.weights = weights
	return nil
}

// PositionWeights returns a copy of the last computed weight map.
func (p *positionIndex) PositionWeights() map[int]float64 {
	out := make(map[int]float64, len(p.weights))
	for tok, w := range p.weights {
		out[tok] = w
	}
	return out
}
