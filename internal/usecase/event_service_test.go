package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/basetable"
	basetablemock "github.com/riskibarqy/espn-soccer-reader/internal/mocks/domain/basetable"
)

func TestEventService_ListEvents(t *testing.T) {
	t.Parallel()

	fixtures := tableOf([]string{"eventId", "leagueId", "midsizeName", "season"},
		[]string{"1", "ITA.1", "ITA.1", "2024"},
		[]string{"1.0", "ITA.1", "ITA.1", "2024"},
		[]string{"2", "ENG.1", "ENG.1", "2023-2024"},
		[]string{"3", "", "ita.1", "2023"},
		[]string{"", "ITA.1", "", "2024"},
	)

	tests := []struct {
		name   string
		filter EventFilter
		want   []string
	}{
		{name: "no filter keeps duplicates", want: []string{"1", "1", "2", "3"}},
		{name: "league filter is punctuation and case blind", filter: EventFilter{League: "ita-1"}, want: []string{"1", "1", "3"}},
		{name: "season filter", filter: EventFilter{SeasonYear: 2023}, want: []string{"2", "3"}},
		{name: "both filters", filter: EventFilter{League: "ITA.1", SeasonYear: 2024}, want: []string{"1", "1"}},
		{name: "no match", filter: EventFilter{League: "ESP.1"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := basetablemock.NewRepository(t)
			repo.On("Load", mock.Anything, basetable.KindFixtures).Return(fixtures, nil).Once()

			got, err := NewEventService(repo).ListEvents(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("list events: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected ids: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestEventService_ListEvents_NoIDColumn(t *testing.T) {
	t.Parallel()

	repo := basetablemock.NewRepository(t)
	repo.On("Load", mock.Anything, basetable.KindFixtures).Return(tableOf([]string{"leagueId"}, []string{"ITA.1"}), nil).Once()

	got, err := NewEventService(repo).ListEvents(context.Background(), EventFilter{})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no ids, got %v", got)
	}
}

func TestEventService_ListEvents_InvalidSeason(t *testing.T) {
	t.Parallel()

	_, err := NewEventService(basetablemock.NewRepository(t)).ListEvents(context.Background(), EventFilter{SeasonYear: -1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
