// Package rake scores words with the RAKE degree to frequency ratio over
// candidate keyword phrases.
package rake

import (
	"errors"
	"sort"
	"strings"
	"unicode"
)

// ErrNoPhrases reports text that yields no candidate keyword phrases.
var ErrNoPhrases = errors.New("rake: no candidate phrases")

// Adapter scores the words of a raw document. Unlike the token based
// extractors it consumes unprocessed text, since phrase boundaries carry the
// signal RAKE builds on.
type Adapter struct {
	text      string
	stopWords map[string]struct{}

	order  []string
	scores map[string]float64
}

// NewAdapter builds an Adapter over raw text and a stop word list.
func NewAdapter(text string, stopWords []string) *Adapter {
	a := &Adapter{
		text:      text,
		stopWords: make(map[string]struct{}, len(stopWords)),
	}
	for _, w := range stopWords {
		a.stopWords[w] = struct{}{}
	}
	return a
}

// Train extracts candidate keyword phrases and scores every content word by
// its degree to frequency ratio. Words that co-occur in long phrases score
// higher than words of the same frequency appearing alone.
func (a *Adapter) Train() error {
	candidates := a.candidatePhrases()
	if len(candidates) == 0 {
		return ErrNoPhrases
	}

	frequency := make(map[string]int)
	degree := make(map[string]int)
	a.order = a.order[:0]
	for _, phrase := range candidates {
		for _, word := range phrase {
			if _, seen := frequency[word]; !seen {
				a.order = append(a.order, word)
			}
			frequency[word]++
			degree[word] += len(phrase)
		}
	}

	a.scores = make(map[string]float64, len(frequency))
	for word, freq := range frequency {
		a.scores[word] = float64(degree[word]) / float64(freq)
	}
	return nil
}

// candidatePhrases splits the text into phrases at punctuation, then splits
// each phrase at stop words into runs of content words.
func (a *Adapter) candidatePhrases() [][]string {
	phrases := strings.FieldsFunc(a.text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsSpace(r)
	})

	var candidates [][]string
	for _, phrase := range phrases {
		words := strings.Fields(strings.ToLower(phrase))
		var run []string
		for _, word := range words {
			if _, stop := a.stopWords[word]; stop {
				if len(run) > 0 {
					candidates = append(candidates, run)
					run = nil
				}
				continue
			}
			run = append(run, word)
		}
		if len(run) > 0 {
			candidates = append(candidates, run)
		}
	}
	return candidates
}

// Scores returns a copy of the per word scores computed by Train.
func (a *Adapter) Scores() map[string]float64 {
	scores := make(map[string]float64, len(a.scores))
	for word, score := range a.scores {
		scores[word] = score
	}
	return scores
}

// TopKeywords returns the n highest scoring words, best first. Words with
// equal scores keep their first-appearance order.
func (a *Adapter) TopKeywords(n int) []string {
	if n <= 0 || len(a.order) == 0 {
		return nil
	}
	ranked := make([]string, len(a.order))
	copy(ranked, a.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return a.scores[ranked[i]] > a.scores[ranked[j]]
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
