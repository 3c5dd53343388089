package benchmark

import (
	"os"
	"strings"

	gojson "github.com/goccy/go-json"

	kerrors "github.com/23skdu/keyrank/internal/errors"
)

// LoadStopWords reads a whitespace separated stop word file.
func LoadStopWords(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, kerrors.Wrap(err, kerrors.TypeConfiguration, "load stop words", path)
	}
	return strings.Fields(string(raw)), nil
}

// LoadIDF reads a JSON object mapping words to IDF values.
func LoadIDF(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, kerrors.Wrap(err, kerrors.TypeConfiguration, "load idf", path)
	}

	idf := make(map[string]float64)
	if err := gojson.Unmarshal(raw, &idf); err != nil {
		return nil, kerrors.Wrap(err, kerrors.TypeConfiguration, "load idf", path)
	}
	return idf, nil
}
