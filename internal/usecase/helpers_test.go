package usecase

import (
	"testing"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
)

// tableOf builds a table from string rows; an empty string is a null cell.
func tableOf(columns []string, rows ...[]string) *dataset.Table {
	t := dataset.New(columns...)
	for _, row := range rows {
		values := make([]dataset.Value, len(row))
		for i, cell := range row {
			if cell != "" {
				values[i] = dataset.String(cell)
			}
		}
		t.AppendRow(values)
	}
	return t
}

func cellText(t *testing.T, tbl *dataset.Table, row int, column string) string {
	t.Helper()
	v, ok := tbl.Value(row, column)
	if !ok {
		t.Fatalf("column %q missing, have %v", column, tbl.Columns())
	}
	return v.Text
}
