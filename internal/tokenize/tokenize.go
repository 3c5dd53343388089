// Package tokenize turns raw text into the lowercase token stream the
// keyword extractors consume.
package tokenize

import "strings"

// Preprocessor strips punctuation, lowercases text and drops stop words.
type Preprocessor struct {
	stopWords   map[string]struct{}
	punctuation map[rune]struct{}
}

// NewPreprocessor builds a Preprocessor from a stop word list and a string of
// punctuation characters to strip during cleaning.
func NewPreprocessor(stopWords []string, punctuation string) *Preprocessor {
	p := &Preprocessor{
		stopWords:   make(map[string]struct{}, len(stopWords)),
		punctuation: make(map[rune]struct{}, len(punctuation)),
	}
	for _, w := range stopWords {
		p.stopWords[w] = struct{}{}
	}
	for _, r := range punctuation {
		p.punctuation[r] = struct{}{}
	}
	return p
}

// CleanAndTokenize removes punctuation characters, lowercases the text and
// splits it on whitespace. Punctuation is deleted in place, so hyphenated
// words collapse into a single token.
func (p *Preprocessor) CleanAndTokenize(text string) []string {
	stripped := strings.Map(func(r rune) rune {
		if _, ok := p.punctuation[r]; ok {
			return -1
		}
		return r
	}, text)
	return strings.Fields(strings.ToLower(stripped))
}

// RemoveStopWords filters out stop words, preserving the order of the
// remaining tokens.
func (p *Preprocessor) RemoveStopWords(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := p.stopWords[tok]; ok {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// Preprocess produces clean lowercase tokens with stop words removed.
func (p *Preprocessor) Preprocess(text string) []string {
	return p.RemoveStopWords(p.CleanAndTokenize(text))
}
