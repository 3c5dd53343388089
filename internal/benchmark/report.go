package benchmark

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	kerrors "github.com/23skdu/keyrank/internal/errors"
	"github.com/23skdu/keyrank/internal/storage"
)

// Report holds the recall of every extractor on every theme of one run.
type Report struct {
	RunID    string
	Duration time.Duration

	themes  []string
	recalls map[string]map[string]float64
}

// NewReport builds an empty report for the given themes with a fresh run id.
func NewReport(themes []string) *Report {
	r := &Report{
		RunID:   uuid.NewString(),
		themes:  append([]string(nil), themes...),
		recalls: make(map[string]map[string]float64, len(Extractors)),
	}
	for _, name := range Extractors {
		r.recalls[name] = make(map[string]float64, len(themes))
	}
	return r
}

func (r *Report) set(extractor, theme string, recall float64) {
	cells, ok := r.recalls[extractor]
	if !ok {
		cells = make(map[string]float64, len(r.themes))
		r.recalls[extractor] = cells
	}
	cells[theme] = recall
}

// Themes returns the themes of this run in benchmark order.
func (r *Report) Themes() []string {
	return append([]string(nil), r.themes...)
}

// Recall looks up one cell of the report.
func (r *Report) Recall(extractor, theme string) (float64, bool) {
	cells, ok := r.recalls[extractor]
	if !ok {
		return 0, false
	}
	recall, ok := cells[theme]
	return recall, ok
}

// Records flattens the report into storage rows, extractors in fixed order
// and themes in benchmark order within each extractor.
func (r *Report) Records() []storage.RecallRecord {
	records := make([]storage.RecallRecord, 0, len(Extractors)*len(r.themes))
	for _, extractor := range Extractors {
		for _, theme := range r.themes {
			recall, ok := r.Recall(extractor, theme)
			if !ok {
				continue
			}
			records = append(records, storage.RecallRecord{
				RunID:     r.RunID,
				Extractor: extractor,
				Theme:     theme,
				Recall:    recall,
			})
		}
	}
	return records
}

// SaveCSV writes the report as a table with one row per extractor and one
// column per theme.
func (r *Report) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return kerrors.Wrap(err, kerrors.TypeStorage, "save report csv", path)
	}

	w := csv.NewWriter(f)
	header := append([]string{"name"}, r.themes...)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return kerrors.Wrap(err, kerrors.TypeStorage, "save report csv", path)
	}
	for _, extractor := range Extractors {
		row := make([]string, 0, len(r.themes)+1)
		row = append(row, extractor)
		for _, theme := range r.themes {
			recall, _ := r.Recall(extractor, theme)
			row = append(row, strconv.FormatFloat(recall, 'f', -1, 64))
		}
		if err := w.Write(row); err != nil {
			_ = f.Close()
			return kerrors.Wrap(err, kerrors.TypeStorage, "save report csv", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return kerrors.Wrap(err, kerrors.TypeStorage, "save report csv", path)
	}
	if err := f.Close(); err != nil {
		return kerrors.Wrap(err, kerrors.TypeStorage, "save report csv", path)
	}
	return nil
}
