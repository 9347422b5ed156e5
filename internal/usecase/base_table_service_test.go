package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/basetable"
	basetablemock "github.com/riskibarqy/espn-soccer-reader/internal/mocks/domain/basetable"
)

func TestBaseTableService_LoadByName(t *testing.T) {
	t.Parallel()

	repo := basetablemock.NewRepository(t)
	repo.On("Load", mock.Anything, basetable.KindTeamStats).Return(tableOf([]string{"teamId"}, []string{"1"}), nil).Twice()
	service := NewBaseTableService(repo)

	for _, name := range []string{"team_stats", "teamStats"} {
		got, err := service.Load(context.Background(), name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if got.Len() != 1 {
			t.Fatalf("unexpected row count %d", got.Len())
		}
	}

	if _, err := service.Load(context.Background(), "referees"); !errors.Is(err, basetable.ErrUnknownTableKind) {
		t.Fatalf("expected ErrUnknownTableKind, got %v", err)
	}
}

func TestBaseTableService_NamedAccessors(t *testing.T) {
	t.Parallel()

	repo := basetablemock.NewRepository(t)
	for _, kind := range basetable.Kinds() {
		repo.On("Load", mock.Anything, kind).Return(tableOf([]string{"kind"}, []string{string(kind)}), nil).Once()
	}
	service := NewBaseTableService(repo)
	ctx := context.Background()

	accessors := map[basetable.Kind]func(context.Context) (any, error){
		basetable.KindFixtures:   func(ctx context.Context) (any, error) { return service.Fixtures(ctx) },
		basetable.KindTeams:      func(ctx context.Context) (any, error) { return service.Teams(ctx) },
		basetable.KindPlayers:    func(ctx context.Context) (any, error) { return service.Players(ctx) },
		basetable.KindLeagues:    func(ctx context.Context) (any, error) { return service.Leagues(ctx) },
		basetable.KindVenues:     func(ctx context.Context) (any, error) { return service.Venues(ctx) },
		basetable.KindTeamStats:  func(ctx context.Context) (any, error) { return service.TeamStats(ctx) },
		basetable.KindStandings:  func(ctx context.Context) (any, error) { return service.Standings(ctx) },
		basetable.KindTeamRoster: func(ctx context.Context) (any, error) { return service.TeamRoster(ctx) },
		basetable.KindStatus:     func(ctx context.Context) (any, error) { return service.Status(ctx) },
	}
	for kind, load := range accessors {
		if _, err := load(ctx); err != nil {
			t.Fatalf("load %s: %v", kind, err)
		}
	}
}

func TestBaseTableService_WarmUp(t *testing.T) {
	t.Parallel()

	repo := basetablemock.NewRepository(t)
	repo.On("Load", mock.Anything, basetable.KindFixtures).Return(tableOf([]string{"eventId"}), nil).Once()
	repo.On("Load", mock.Anything, basetable.KindPlayers).Return(tableOf([]string{"athleteId"}), nil).Once()
	service := NewBaseTableService(repo)

	if err := service.WarmUp(context.Background(), []string{"fixtures", "players", "fixtures"}, 4); err != nil {
		t.Fatalf("warm up: %v", err)
	}
}

func TestBaseTableService_WarmUpFailures(t *testing.T) {
	t.Parallel()

	service := NewBaseTableService(basetablemock.NewRepository(t))
	if err := service.WarmUp(context.Background(), []string{"coaches"}, 2); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	repo := basetablemock.NewRepository(t)
	repo.On("Load", mock.Anything, basetable.KindVenues).Return(nil, basetable.ErrSourceFileMissing).Once()
	service = NewBaseTableService(repo)
	if err := service.WarmUp(context.Background(), []string{"venues"}, 1); !errors.Is(err, basetable.ErrSourceFileMissing) {
		t.Fatalf("expected ErrSourceFileMissing, got %v", err)
	}
}
