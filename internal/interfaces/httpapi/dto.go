package httpapi

import (
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/partition"
)

// tableDTO keeps the column order explicit; rows map column names to text or
// null.
type tableDTO struct {
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
	RowCount int              `json:"rowCount"`
}

type partitionKeyDTO struct {
	EventID    string `json:"eventId"`
	SeasonYear int    `json:"seasonYear"`
	LeagueCode string `json:"leagueCode"`
}

type eventListDTO struct {
	EventIDs []string `json:"eventIds"`
	Count    int      `json:"count"`
}

func tableToDTO(t *dataset.Table) tableDTO {
	columns := t.Columns()
	if columns == nil {
		columns = []string{}
	}
	rows := make([]map[string]any, 0, t.Len())
	for row := 0; row < t.Len(); row++ {
		item := make(map[string]any, len(columns))
		for _, column := range columns {
			v, _ := t.Value(row, column)
			if v.IsNull() {
				item[column] = nil
				continue
			}
			item[column] = v.Text
		}
		rows = append(rows, item)
	}

	return tableDTO{
		Columns:  columns,
		Rows:     rows,
		RowCount: len(rows),
	}
}

func partitionKeyToDTO(eventID string, key partition.Key) partitionKeyDTO {
	return partitionKeyDTO{
		EventID:    eventID,
		SeasonYear: key.SeasonYear,
		LeagueCode: key.LeagueCode,
	}
}
