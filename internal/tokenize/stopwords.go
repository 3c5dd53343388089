package tokenize

// DefaultStopWords lists common English function words that carry no
// discriminative value for keyword extraction.
var DefaultStopWords = []string{
	"the", "a", "an", "and", "or",
	"but", "if", "then", "than", "so",
	"as", "at", "by", "for", "from",
	"in", "into", "of", "on", "to",
	"with", "about", "up", "out", "over",
	"under", "again", "further", "once", "here",
	"there", "all", "any", "both", "each",
	"few", "more", "most", "other", "some",
	"such", "no", "nor", "not", "only",
	"own", "same", "too", "very", "is",
	"are", "was", "were", "be", "been",
	"being", "have", "has", "had", "do",
	"does", "did", "will", "would", "could",
	"should", "may", "might", "can", "shall",
	"it", "its", "this", "that", "these",
	"those", "i", "me", "my", "we",
	"our", "you", "your", "he", "him",
	"his", "she", "her", "they", "them",
	"their", "what", "which", "who", "whom",
	"when", "where", "why", "how",
}

// DefaultPunctuation holds the ASCII punctuation characters stripped during
// text cleaning.
const DefaultPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
