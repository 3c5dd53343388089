package textrank

import "errors"

var (
	// ErrNoTokens is returned when a token sequence is empty.
	ErrNoTokens = errors.New("token sequence is empty")
	// ErrInvalidWindow is returned when a co-occurrence window is shorter than 2.
	ErrInvalidWindow = errors.New("window length must be at least 2")
)

// Pair is an unordered co-occurrence of two distinct token identifiers.
// A and B keep the orientation in which the pair was first encountered.
type Pair struct {
	A int
	B int
}

// ExtractPairs slides a window of windowLength across tokens and collects
// every unordered pair of distinct identifiers appearing together in at
// least one window. The window never extends past the end of the sequence,
// so sequences shorter than windowLength yield no pairs. Pairs are
// deduplicated by unordered value and returned in discovery order.
func ExtractPairs(tokens []int, windowLength int) ([]Pair, error) {
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	if windowLength < 2 {
		return nil, ErrInvalidWindow
	}

	type edge struct{ lo, hi int }
	seen := make(map[edge]struct{})
	var pairs []Pair

	for start := 0; start+windowLength <= len(tokens); start++ {
		window := tokens[start : start+windowLength]
		for i := 0; i < len(window); i++ {
			for j := i + 1; j < len(window); j++ {
				a, b := window[i], window[j]
				if a == b {
					continue
				}
				key := edge{lo: a, hi: b}
				if b < a {
					key = edge{lo: b, hi: a}
				}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				pairs = append(pairs, Pair{A: a, B: b})
			}
		}
	}
	return pairs, nil
}
