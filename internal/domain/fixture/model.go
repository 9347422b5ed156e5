// Package fixture knows how to read partition signals out of rows of the
// fixtures base table, whose column names vary between dataset snapshots.
package fixture

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/id"
)

// IDColumns are the record id columns of the fixtures table, in lookup order.
var IDColumns = []string{"eventId", "eventid", "gameId", "id", "matchId"}

// DetailIDColumns are the record id columns of detail datasets. A bare "id" is
// left out because detail files use it for their own row ids.
var DetailIDColumns = []string{"eventId", "eventid", "gameId", "matchId"}

// LeagueFilterColumns are compared against a league filter when listing events.
var LeagueFilterColumns = []string{"leagueId", "midsizeName"}

// Strategy reads one candidate column. Extract reports false when the cell
// carries no usable value so resolution moves on to the next candidate.
type Strategy[T any] struct {
	Column  string
	Extract func(dataset.Value) (T, bool)
}

// Resolve evaluates strategies in order and returns the first usable value and
// the column it came from.
func Resolve[T any](t *dataset.Table, row int, strategies []Strategy[T]) (T, string, bool) {
	var zero T
	for _, s := range strategies {
		v, ok := t.Value(row, s.Column)
		if !ok || v.IsNull() {
			continue
		}
		if out, ok := s.Extract(v); ok {
			return out, s.Column, true
		}
	}
	return zero, "", false
}

// SeasonStrategies derive the season year: an explicit year column, then a
// "YYYY" / "YYYY-YYYY" season label, then the year of the match date.
var SeasonStrategies = []Strategy[int]{
	{Column: "seasonYear", Extract: yearNumber},
	{Column: "season", Extract: seasonLabel},
	{Column: "date", Extract: dateYear},
}

// LeagueStrategies derive the league code used in partition file names.
var LeagueStrategies = []Strategy[string]{
	{Column: "leagueId", Extract: nonBlank},
	{Column: "midsizeName", Extract: nonBlank},
	{Column: "league", Extract: nonBlank},
	{Column: "league_code", Extract: nonBlank},
}

func SeasonYear(t *dataset.Table, row int) (int, bool) {
	year, _, ok := Resolve(t, row, SeasonStrategies)
	return year, ok
}

func LeagueCode(t *dataset.Table, row int) (string, bool) {
	code, _, ok := Resolve(t, row, LeagueStrategies)
	return code, ok
}

// Locate finds the first row whose id equals recordID, which must already be
// normalized. The first id column with a match wins; cells that fail
// normalization never match.
func Locate(t *dataset.Table, recordID string) (int, bool) {
	for _, column := range IDColumns {
		values, ok := t.Column(column)
		if !ok {
			continue
		}
		for row, v := range values {
			if v.IsNull() {
				continue
			}
			if normalized, err := id.Normalize(v.Text); err == nil && normalized == recordID {
				return row, true
			}
		}
	}
	return 0, false
}

func nonBlank(v dataset.Value) (string, bool) {
	out := strings.TrimSpace(v.Text)
	return out, out != ""
}

func yearNumber(v dataset.Value) (int, bool) {
	normalized, err := id.Normalize(v.Text)
	if err != nil {
		return 0, false
	}
	year, err := strconv.Atoi(normalized)
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}

var seasonLabelPattern = regexp.MustCompile(`^(\d{4})(?:\s*[-/]\s*(?:\d{4}|\d{2}))?$`)

func seasonLabel(v dataset.Value) (int, bool) {
	label := strings.TrimSpace(v.Text)
	if m := seasonLabelPattern.FindStringSubmatch(label); m != nil {
		year, err := strconv.Atoi(m[1])
		return year, err == nil
	}
	return yearNumber(v)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

var leadingDatePattern = regexp.MustCompile(`^(\d{4})[-/]\d{1,2}[-/]\d{1,2}`)

func dateYear(v dataset.Value) (int, bool) {
	raw := strings.TrimSpace(v.Text)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Year(), true
		}
	}
	if m := leadingDatePattern.FindStringSubmatch(raw); m != nil {
		year, err := strconv.Atoi(m[1])
		return year, err == nil
	}
	return 0, false
}
