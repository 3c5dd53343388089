package textrank

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

const (
	// Damping balances neighbor contributions against the baseline term.
	Damping = 0.85
	// ConvergenceThreshold is the total absolute score drift between
	// iterations accepted as stable.
	ConvergenceThreshold = 0.0001
	// MaxIterations bounds training when the iteration never converges.
	MaxIterations = 50
)

var (
	// ErrNoPositionWeights is returned when a position-biased scorer is
	// requested from a graph whose weights were never calculated, or when
	// training meets a vertex with no weight entry.
	ErrNoPositionWeights = errors.New("position weights have not been calculated")
	// ErrZeroDegree is returned when an incident vertex reports degree 0,
	// which contradicts the graph's own invariants.
	ErrZeroDegree = errors.New("incident vertex reports zero degree")
)

// baselineFunc computes a vertex's constant score contribution. It is the
// only axis of variation between the uniform and position-biased scorers;
// the convergence loop itself is shared.
type baselineFunc func(vertex int) (float64, error)

// Scorer runs a damped fixed-point iteration over one Graph and holds the
// resulting per-vertex importance scores. A scorer reads its graph only;
// all graph mutation must be finished before Train is called.
type Scorer struct {
	graph         Graph
	damping       float64
	threshold     float64
	maxIterations int
	baseline      baselineFunc

	order      []int
	scores     map[int]float64
	iterations int
	converged  bool
}

func newScorer(g Graph) *Scorer {
	return &Scorer{
		graph:         g,
		damping:       Damping,
		threshold:     ConvergenceThreshold,
		maxIterations: MaxIterations,
		scores:        make(map[int]float64),
	}
}

// NewScorer returns a scorer with the uniform baseline, (1 - damping) for
// every vertex.
func NewScorer(g Graph) *Scorer {
	s := newScorer(g)
	s.baseline = func(int) (float64, error) {
		return 1 - s.damping, nil
	}
	return s
}

// NewPositionBiasedScorer returns a scorer whose baseline is
// (1 - damping) * position weight, biasing scores toward tokens that appear
// early in the source text. Weights are pulled from the graph once, here;
// the graph must have FillPositions and CalculatePositionWeights already
// applied or construction fails with ErrNoPositionWeights.
func NewPositionBiasedScorer(g Graph) (*Scorer, error) {
	weights := g.PositionWeights()
	if len(weights) == 0 {
		return nil, ErrNoPositionWeights
	}
	s := newScorer(g)
	s.baseline = func(v int) (float64, error) {
		w, known := weights[v]
		if !known {
			return 0, fmt.Errorf("vertex %d: %w", v, ErrNoPositionWeights)
		}
		return (1 - s.damping) * w, nil
	}
	return s, nil
}

// Train runs the fixed-point iteration until the total score drift drops to
// the convergence threshold or the iteration budget runs out; both outcomes
// are success. Updates are Jacobi-style: every score in a pass is computed
// from the previous pass's snapshot only. Training always restarts from the
// same initial state, so retraining reproduces the same result.
func (s *Scorer) Train() error {
	s.order = s.graph.Vertices()
	s.scores = make(map[int]float64, len(s.order))
	for _, v := range s.order {
		s.scores[v] = 1.0
	}
	s.iterations = 0
	s.converged = false

	for iter := 0; iter < s.maxIterations; iter++ {
		prev := s.scores
		next := make(map[int]float64, len(prev))

		for _, v := range s.order {
			var sum float64
			for _, u := range s.order {
				linked, err := s.graph.IsIncidental(v, u)
				if err != nil {
					return err
				}
				if !linked {
					continue
				}
				degree, err := s.graph.InOutScore(u)
				if err != nil {
					return err
				}
				if degree == 0 {
					return fmt.Errorf("vertex %d: %w", u, ErrZeroDegree)
				}
				sum += prev[u] / float64(degree)
			}
			base, err := s.baseline(v)
			if err != nil {
				return err
			}
			next[v] = base + s.damping*sum
		}

		var drift float64
		for _, v := range s.order {
			drift += math.Abs(prev[v] - next[v])
		}
		s.scores = next
		s.iterations = iter + 1
		if drift <= s.threshold {
			s.converged = true
			break
		}
	}
	return nil
}

// Scores returns a copy of the current score map, empty before Train.
func (s *Scorer) Scores() map[int]float64 {
	out := make(map[int]float64, len(s.scores))
	for v, score := range s.scores {
		out[v] = score
	}
	return out
}

// TopKeywords returns the n highest-scoring vertices. Ties break toward the
// vertex added to the graph earlier, so results are deterministic. n beyond
// the vertex count returns all vertices; n <= 0 returns nothing.
func (s *Scorer) TopKeywords(n int) []int {
	if n <= 0 || len(s.order) == 0 {
		return nil
	}
	ranked := make([]int, len(s.order))
	copy(ranked, s.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return s.scores[ranked[i]] > s.scores[ranked[j]]
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// Iterations reports how many passes the last Train ran.
func (s *Scorer) Iterations() int { return s.iterations }

// Converged reports whether the last Train stopped on the drift threshold
// rather than the iteration budget.
func (s *Scorer) Converged() bool { return s.converged }
