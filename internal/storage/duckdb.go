package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/marcboeker/go-duckdb"

	kerrors "github.com/23skdu/keyrank/internal/errors"
)

// ReportDB answers ad hoc SQL queries over a persisted report snapshot. Each
// query runs against a fresh in-memory DuckDB with the Parquet file exposed
// as a view named report.
type ReportDB struct {
	reportPath string
}

// NewReportDB builds a ReportDB over the Parquet report at reportPath.
func NewReportDB(reportPath string) *ReportDB {
	return &ReportDB{reportPath: reportPath}
}

// Query executes one SQL statement and renders the result as strings. The
// first returned row holds the column names.
func (d *ReportDB) Query(ctx context.Context, query string) ([][]string, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, kerrors.Wrap(err, kerrors.TypeStorage, "open duckdb", d.reportPath)
	}
	defer db.Close()

	// A dedicated connection keeps the view visible to the query.
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, kerrors.Wrap(err, kerrors.TypeStorage, "open duckdb conn", d.reportPath)
	}
	defer conn.Close()

	createView := fmt.Sprintf(
		"CREATE VIEW report AS SELECT * FROM read_parquet('%s')",
		strings.ReplaceAll(d.reportPath, "'", "''"),
	)
	if _, err := conn.ExecContext(ctx, createView); err != nil {
		return nil, kerrors.Wrap(err, kerrors.TypeStorage, "create report view", d.reportPath)
	}

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, kerrors.Wrap(err, kerrors.TypeStorage, "query report", query)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, kerrors.Wrap(err, kerrors.TypeStorage, "query report", query)
	}

	out := [][]string{cols}
	values := make([]any, len(cols))
	scans := make([]any, len(cols))
	for i := range values {
		scans[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(scans...); err != nil {
			return nil, kerrors.Wrap(err, kerrors.TypeStorage, "scan report row", query)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = renderValue(v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, kerrors.Wrap(err, kerrors.TypeStorage, "iterate report rows", query)
	}
	return out, nil
}

func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(t)
	}
}
