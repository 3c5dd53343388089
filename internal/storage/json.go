package storage

import (
	"os"

	gojson "github.com/goccy/go-json"

	kerrors "github.com/23skdu/keyrank/internal/errors"
)

// WriteReportJSON writes v to path as indented JSON. goccy/go-json keeps the
// encoding/json surface while encoding noticeably faster.
func WriteReportJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return kerrors.Wrap(err, kerrors.TypeStorage, "write report json", path)
	}

	enc := gojson.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_ = f.Close()
		return kerrors.Wrap(err, kerrors.TypeStorage, "write report json", path)
	}
	if err := f.Close(); err != nil {
		return kerrors.Wrap(err, kerrors.TypeStorage, "write report json", path)
	}
	return nil
}

// ReadReportJSON decodes the JSON file at path into v.
func ReadReportJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return kerrors.Wrap(err, kerrors.TypeStorage, "read report json", path)
	}
	defer f.Close()

	if err := gojson.NewDecoder(f).Decode(v); err != nil {
		return kerrors.Wrap(err, kerrors.TypeStorage, "read report json", path)
	}
	return nil
}
