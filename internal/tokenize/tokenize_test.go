package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAndTokenize(t *testing.T) {
	p := NewPreprocessor(nil, DefaultPunctuation)

	got := p.CleanAndTokenize("The weather, the Weather!")
	assert.Equal(t, []string{"the", "weather", "the", "weather"}, got)
}

func TestCleanAndTokenize_PunctuationDeletedInPlace(t *testing.T) {
	p := NewPreprocessor(nil, DefaultPunctuation)

	got := p.CleanAndTokenize("state-of-the-art, they said")
	assert.Equal(t, []string{"stateoftheart", "they", "said"}, got)
}

func TestCleanAndTokenize_NoPunctuationConfigured(t *testing.T) {
	p := NewPreprocessor(nil, "")

	got := p.CleanAndTokenize("Ready, set, go!")
	assert.Equal(t, []string{"ready,", "set,", "go!"}, got)
}

func TestCleanAndTokenize_Empty(t *testing.T) {
	p := NewPreprocessor(DefaultStopWords, DefaultPunctuation)

	assert.Empty(t, p.CleanAndTokenize(""))
	assert.Empty(t, p.CleanAndTokenize("  \t\n"))
}

func TestRemoveStopWords(t *testing.T) {
	p := NewPreprocessor([]string{"the", "of"}, DefaultPunctuation)

	got := p.RemoveStopWords([]string{"the", "speed", "of", "light"})
	assert.Equal(t, []string{"speed", "light"}, got)
}

func TestRemoveStopWords_KeepsOrder(t *testing.T) {
	p := NewPreprocessor(DefaultStopWords, DefaultPunctuation)

	got := p.RemoveStopWords([]string{"by", "trains", "and", "boats", "and", "planes"})
	assert.Equal(t, []string{"trains", "boats", "planes"}, got)
}

func TestPreprocess(t *testing.T) {
	p := NewPreprocessor(DefaultStopWords, DefaultPunctuation)

	got := p.Preprocess("The quick, brown fox jumps over the lazy dog.")
	assert.Equal(t, []string{"quick", "brown", "fox", "jumps", "lazy", "dog"}, got)
}

func TestPreprocess_OnlyStopWords(t *testing.T) {
	p := NewPreprocessor(DefaultStopWords, DefaultPunctuation)

	assert.Empty(t, p.Preprocess("and then, if not that..."))
}
