package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/basetable"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/fixture"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/partition"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/id"
)

// PartitionResolver maps an event id to the season/league partition holding its
// detail files, using the fixtures base table as the index.
type PartitionResolver struct {
	baseTables basetable.Repository
}

func NewPartitionResolver(baseTables basetable.Repository) *PartitionResolver {
	return &PartitionResolver{baseTables: baseTables}
}

// Resolve fails with ErrRecordNotFound or ErrSeasonUndetermined. A fixture
// without a league signal resolves to a key with an empty LeagueCode.
func (r *PartitionResolver) Resolve(ctx context.Context, recordID string) (partition.Key, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PartitionResolver.Resolve", attrRecordID.String(recordID))
	defer span.End()

	normalized, err := normalizeRecordID(recordID)
	if err != nil {
		return partition.Key{}, err
	}

	fixtures, err := r.baseTables.Load(ctx, basetable.KindFixtures)
	if err != nil {
		return partition.Key{}, fmt.Errorf("load fixtures: %w", err)
	}

	row, ok := fixture.Locate(fixtures, normalized)
	if !ok {
		return partition.Key{}, fmt.Errorf("%w: event=%s", ErrRecordNotFound, normalized)
	}

	seasonYear, ok := fixture.SeasonYear(fixtures, row)
	if !ok {
		return partition.Key{}, fmt.Errorf("%w: event=%s", ErrSeasonUndetermined, normalized)
	}
	leagueCode, _ := fixture.LeagueCode(fixtures, row)

	return partition.Key{SeasonYear: seasonYear, LeagueCode: leagueCode}, nil
}

func normalizeRecordID(recordID string) (string, error) {
	normalized, err := id.Normalize(recordID)
	if err != nil {
		return "", fmt.Errorf("%w: event id %q: %w", ErrInvalidInput, recordID, err)
	}
	return normalized, nil
}
