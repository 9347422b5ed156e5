// Package csvfile reads and writes dataset tables as CSV.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
)

const (
	byteOrderMark        = "\ufeff"
	contextCheckInterval = 256
)

// ErrEmptyFile is returned when the input has no header row.
var ErrEmptyFile = errors.New("csv input has no header row")

// Decode reads a CSV document whose first record is the header. Empty fields
// become nulls and short records are padded with nulls; a record wider than the
// header is rejected.
func Decode(ctx context.Context, r io.Reader) (*dataset.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, crerr.Wrap(err, "read csv header")
	}

	out := dataset.New(headerNames(header)...)
	width := len(out.Columns())
	for n := 1; ; n++ {
		if n%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, crerr.Wrapf(err, "read csv record %d", n)
		}
		if len(record) > width {
			return nil, crerr.Newf("csv record %d has %d fields, header has %d", n, len(record), width)
		}

		row := make([]dataset.Value, width)
		for i, field := range record {
			if field != "" {
				row[i] = dataset.String(field)
			}
		}
		out.AppendRow(row)
	}

	return out, nil
}

func headerNames(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]struct{}, len(header))
	suffix := make(map[string]int)
	for i, raw := range header {
		name := raw
		if i == 0 {
			name = strings.TrimPrefix(name, byteOrderMark)
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if _, dup := used[name]; dup {
			base := name
			for {
				suffix[base]++
				name = base + "." + strconv.Itoa(suffix[base])
				if _, taken := used[name]; !taken {
					break
				}
			}
		}
		used[name] = struct{}{}
		names[i] = name
	}
	return names
}
