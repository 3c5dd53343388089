// Package storage persists co-occurrence graphs and benchmark reports as
// Parquet and JSON files, and answers analytical queries over them through an
// embedded DuckDB.
package storage

import (
	"io"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	kerrors "github.com/23skdu/keyrank/internal/errors"
	"github.com/23skdu/keyrank/internal/metrics"
	"github.com/23skdu/keyrank/internal/textrank"
)

// EdgeRecord is one undirected edge of a co-occurrence graph snapshot.
// Source always holds the vertex discovered first.
type EdgeRecord struct {
	Source int64 `parquet:"source"`
	Target int64 `parquet:"target"`
}

// RecallRecord is one extractor and theme cell of a benchmark report.
type RecallRecord struct {
	RunID     string  `parquet:"run_id"`
	Extractor string  `parquet:"extractor"`
	Theme     string  `parquet:"theme"`
	Recall    float64 `parquet:"recall"`
}

// WriteGraphSnapshot persists every edge of g to a Parquet file at path.
// Edges are emitted in vertex discovery order, so rewriting an unchanged
// graph produces an identical file.
func WriteGraphSnapshot(path string, g textrank.Graph) error {
	vertices := g.Vertices()
	var records []EdgeRecord
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			linked, err := g.IsIncidental(vertices[i], vertices[j])
			if err != nil {
				return kerrors.Wrap(err, kerrors.TypeStorage, "write graph snapshot", path)
			}
			if linked {
				records = append(records, EdgeRecord{
					Source: int64(vertices[i]),
					Target: int64(vertices[j]),
				})
			}
		}
	}

	start := time.Now()
	if err := writeParquet(path, records); err != nil {
		return kerrors.Wrap(err, kerrors.TypeStorage, "write graph snapshot", path)
	}
	metrics.SnapshotWriteDurationSeconds.Observe(time.Since(start).Seconds())
	metrics.GraphEdges.Set(float64(len(records)))
	if stat, err := os.Stat(path); err == nil {
		metrics.SnapshotSizeBytes.Set(float64(stat.Size()))
	}
	return nil
}

// ReadGraphSnapshot rebuilds an edge list graph from a snapshot written by
// WriteGraphSnapshot.
func ReadGraphSnapshot(path string) (*textrank.EdgeListGraph, error) {
	var records []EdgeRecord
	if err := readParquet(path, &records); err != nil {
		return nil, kerrors.Wrap(err, kerrors.TypeStorage, "read graph snapshot", path)
	}

	g := textrank.NewEdgeListGraph()
	for _, rec := range records {
		if err := g.AddEdge(int(rec.Source), int(rec.Target)); err != nil {
			return nil, kerrors.Wrap(err, kerrors.TypeStorage, "read graph snapshot", path)
		}
	}
	return g, nil
}

// WriteReportParquet persists benchmark recall records to path.
func WriteReportParquet(path string, records []RecallRecord) error {
	if err := writeParquet(path, records); err != nil {
		return kerrors.Wrap(err, kerrors.TypeStorage, "write report", path)
	}
	return nil
}

// ReadReportParquet loads benchmark recall records from path.
func ReadReportParquet(path string) ([]RecallRecord, error) {
	var records []RecallRecord
	if err := readParquet(path, &records); err != nil {
		return nil, kerrors.Wrap(err, kerrors.TypeStorage, "read report", path)
	}
	return records, nil
}

// writeParquet writes rows to a zstd compressed Parquet file using a single
// writer, so the file carries exactly one footer.
func writeParquet[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	pw := parquet.NewGenericWriter[T](f, parquet.Compression(&parquet.Zstd))
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		_ = f.Close()
		return err
	}
	if err := pw.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// readParquet loads every row of a Parquet file into *rows.
func readParquet[T any](path string, rows *[]T) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return err
	}

	pr := parquet.NewGenericReader[T](pf)
	defer pr.Close()

	out := make([]T, pr.NumRows())
	if _, err := pr.Read(out); err != nil && err != io.EOF {
		return err
	}
	*rows = out
	return nil
}
