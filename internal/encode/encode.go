// Package encode maps string tokens to stable integer identifiers and back.
package encode

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTokens reports an empty token sequence.
	ErrNoTokens = errors.New("encode: no tokens")

	// ErrUnknownID reports an identifier the encoder never issued.
	ErrUnknownID = errors.New("encode: unknown token id")
)

// firstID keeps integer tokens clearly apart from ordinal values such as
// positions or window lengths.
const firstID = 1000

// Encoder assigns each distinct word a stable integer identifier in order of
// first sight.
type Encoder struct {
	wordToID map[string]int
	idToWord map[int]string
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{
		wordToID: make(map[string]int),
		idToWord: make(map[int]string),
	}
}

// Encode translates tokens into integer identifiers, issuing new ones for
// words it has not seen before. An identifier, once issued, never changes.
func (e *Encoder) Encode(tokens []string) ([]int, error) {
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	encoded := make([]int, len(tokens))
	for i, tok := range tokens {
		id, ok := e.wordToID[tok]
		if !ok {
			id = firstID + len(e.wordToID)
			e.wordToID[tok] = id
			e.idToWord[id] = tok
		}
		encoded[i] = id
	}
	return encoded, nil
}

// Decode translates identifiers back into words.
func (e *Encoder) Decode(ids []int) ([]string, error) {
	decoded := make([]string, len(ids))
	for i, id := range ids {
		word, ok := e.idToWord[id]
		if !ok {
			return nil, fmt.Errorf("id %d: %w", id, ErrUnknownID)
		}
		decoded[i] = word
	}
	return decoded, nil
}
