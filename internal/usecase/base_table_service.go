package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/basetable"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
)

type BaseTableService struct {
	repo basetable.Repository
}

func NewBaseTableService(repo basetable.Repository) *BaseTableService {
	return &BaseTableService{repo: repo}
}

// Load accepts a logical table name ("team_stats") or its file stem
// ("teamStats").
func (s *BaseTableService) Load(ctx context.Context, name string) (*dataset.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BaseTableService.Load", attrTableKind.String(name))
	defer span.End()

	kind, err := basetable.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, kind)
}

func (s *BaseTableService) Fixtures(ctx context.Context) (*dataset.Table, error) {
	return s.load(ctx, basetable.KindFixtures)
}

func (s *BaseTableService) Teams(ctx context.Context) (*dataset.Table, error) {
	return s.load(ctx, basetable.KindTeams)
}

func (s *BaseTableService) Players(ctx context.Context) (*dataset.Table, error) {
	return s.load(ctx, basetable.KindPlayers)
}

func (s *BaseTableService) Leagues(ctx context.Context) (*dataset.Table, error) {
	return s.load(ctx, basetable.KindLeagues)
}

func (s *BaseTableService) Venues(ctx context.Context) (*dataset.Table, error) {
	return s.load(ctx, basetable.KindVenues)
}

func (s *BaseTableService) TeamStats(ctx context.Context) (*dataset.Table, error) {
	return s.load(ctx, basetable.KindTeamStats)
}

func (s *BaseTableService) Standings(ctx context.Context) (*dataset.Table, error) {
	return s.load(ctx, basetable.KindStandings)
}

func (s *BaseTableService) TeamRoster(ctx context.Context) (*dataset.Table, error) {
	return s.load(ctx, basetable.KindTeamRoster)
}

func (s *BaseTableService) Status(ctx context.Context) (*dataset.Table, error) {
	return s.load(ctx, basetable.KindStatus)
}

func (s *BaseTableService) load(ctx context.Context, kind basetable.Kind) (*dataset.Table, error) {
	t, err := s.repo.Load(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}
	return t, nil
}

// WarmUp loads the given tables concurrently so later calls hit the cache. The
// first failure cancels the remaining loads.
func (s *BaseTableService) WarmUp(ctx context.Context, names []string, maxWorkers int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.BaseTableService.WarmUp")
	defer span.End()

	kinds := make([]basetable.Kind, 0, len(names))
	seen := make(map[basetable.Kind]struct{}, len(names))
	for _, name := range names {
		kind, err := basetable.ParseKind(name)
		if err != nil {
			return fmt.Errorf("%w: warm-up table: %w", ErrInvalidInput, err)
		}
		if _, ok := seen[kind]; ok {
			continue
		}
		seen[kind] = struct{}{}
		kinds = append(kinds, kind)
	}
	if len(kinds) == 0 {
		return nil
	}
	if maxWorkers <= 0 || maxWorkers > len(kinds) {
		maxWorkers = len(kinds)
	}

	p := pool.New().WithContext(ctx).WithMaxGoroutines(maxWorkers).WithCancelOnError().WithFirstError()
	for _, kind := range kinds {
		p.Go(func(ctx context.Context) error {
			_, err := s.load(ctx, kind)
			return err
		})
	}
	return p.Wait()
}
