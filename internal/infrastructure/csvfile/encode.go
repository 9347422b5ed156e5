package csvfile

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
)

// Encode writes the header and every row of t to w. Nulls are written as empty
// fields.
func Encode(w io.Writer, t *dataset.Table) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := csv.NewWriter(buf)
	columns := t.Columns()
	if err := writer.Write(columns); err != nil {
		return crerr.Wrap(err, "write csv header")
	}

	record := make([]string, len(columns))
	for row := 0; row < t.Len(); row++ {
		for i, column := range columns {
			v, _ := t.Value(row, column)
			record[i] = v.Text
		}
		if err := writer.Write(record); err != nil {
			return crerr.Wrapf(err, "write csv record %d", row+1)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return crerr.Wrap(err, "flush csv")
	}

	if _, err := buf.WriteTo(w); err != nil {
		return crerr.Wrap(err, "write csv output")
	}
	return nil
}

// WriteFile encodes t to path, creating parent directories as needed.
func WriteFile(path string, t *dataset.Table) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return crerr.Wrapf(err, "create directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return crerr.Wrapf(err, "create %s", path)
	}
	if err := Encode(f, t); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return crerr.Wrapf(err, "close %s", path)
	}
	return nil
}
