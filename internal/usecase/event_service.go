package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/basetable"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/fixture"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/id"
)

// EventFilter narrows ListEvents. Zero values disable a filter.
type EventFilter struct {
	League     string
	SeasonYear int
}

type EventService struct {
	baseTables basetable.Repository
}

func NewEventService(baseTables basetable.Repository) *EventService {
	return &EventService{baseTables: baseTables}
}

// ListEvents returns the event ids of the fixtures table in table order.
// Duplicate ids in the source are kept.
func (s *EventService) ListEvents(ctx context.Context, filter EventFilter) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.ListEvents",
		attrLeague.String(filter.League),
		attrSeason.Int(filter.SeasonYear),
	)
	defer span.End()

	if filter.SeasonYear < 0 {
		return nil, fmt.Errorf("%w: season year must be positive", ErrInvalidInput)
	}

	fixtures, err := s.baseTables.Load(ctx, basetable.KindFixtures)
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}

	idColumn, ok := fixtures.FirstColumn(fixture.IDColumns...)
	if !ok {
		return []string{}, nil
	}
	ids, _ := fixtures.Column(idColumn)

	league := cleanLeagueCode(filter.League)
	out := make([]string, 0, len(ids))
	for row, v := range ids {
		if v.IsNull() {
			continue
		}
		if league != "" && !matchesLeague(fixtures, row, league) {
			continue
		}
		if filter.SeasonYear > 0 {
			year, ok := fixture.SeasonYear(fixtures, row)
			if !ok || year != filter.SeasonYear {
				continue
			}
		}
		out = append(out, id.Canonical(v.Text))
	}
	return out, nil
}

func matchesLeague(fixtures *dataset.Table, row int, league string) bool {
	for _, column := range fixture.LeagueFilterColumns {
		v, ok := fixtures.Value(row, column)
		if ok && !v.IsNull() && cleanLeagueCode(v.Text) == league {
			return true
		}
	}
	return false
}

// cleanLeagueCode drops every non-alphanumeric rune and upper-cases the rest,
// so "ita.1", "ITA-1" and "ITA1" compare equal.
func cleanLeagueCode(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
