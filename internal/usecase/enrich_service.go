package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/basetable"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/fixture"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/partition"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/id"
)

const (
	athleteIDColumn = "athleteId"
	teamIDColumn    = "teamId"
	positionColumn  = "position"
)

// baseJoin describes one left join against a base table: the key shared by
// both sides and the descriptive columns copied over under their aliases.
type baseJoin struct {
	kind    basetable.Kind
	key     string
	columns []string
	aliases map[string]string
}

var playerJoin = baseJoin{
	kind:    basetable.KindPlayers,
	key:     athleteIDColumn,
	columns: []string{"shortName", "displayName", "nationality"},
	aliases: map[string]string{
		"shortName":   "playerShortName",
		"displayName": "playerName",
		"nationality": "playerNationality",
	},
}

var teamJoin = baseJoin{
	kind:    basetable.KindTeams,
	key:     teamIDColumn,
	columns: []string{"displayName", "shortName", "abbrev"},
	aliases: map[string]string{
		"displayName": "teamName",
		"shortName":   "teamShortName",
		"abbrev":      "teamAbbrev",
	},
}

// PositionColumns are the lineup columns that can carry a player's position,
// in preference order.
var PositionColumns = []string{"position", "positionName", "playerPosition", "positionFullName", "positionAbbr"}

type lineupSource interface {
	Lineup(ctx context.Context, recordID string) (*dataset.Table, error)
}

// EnrichService joins player-stats rows with player and team descriptions and
// the player's position from the event lineup.
type EnrichService struct {
	baseTables basetable.Repository
	lineups    lineupSource
}

func NewEnrichService(baseTables basetable.Repository, lineups lineupSource) *EnrichService {
	return &EnrichService{
		baseTables: baseTables,
		lineups:    lineups,
	}
}

// EnrichPlayerStats never changes the row count or order of detail. Failing to
// find a lineup for the event only leaves the position column out.
func (s *EnrichService) EnrichPlayerStats(ctx context.Context, detail *dataset.Table) (*dataset.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnrichService.EnrichPlayerStats")
	defer span.End()

	out := detail.Clone()
	if out.IsEmpty() {
		return out, nil
	}

	recordColumn, hasRecordColumn := out.FirstColumn(fixture.DetailIDColumns...)
	keyColumns := []string{athleteIDColumn, teamIDColumn}
	if hasRecordColumn {
		keyColumns = append(keyColumns, recordColumn)
	}
	for _, column := range keyColumns {
		out.MapColumn(column, canonicalValue)
	}

	for _, join := range []baseJoin{playerJoin, teamJoin} {
		joined, err := s.joinBaseTable(ctx, out, join)
		if err != nil {
			return nil, err
		}
		out = joined
	}

	if !hasRecordColumn || !out.HasColumn(athleteIDColumn) || out.HasColumn(positionColumn) {
		return out, nil
	}
	recordID, ok := firstNonNull(out, recordColumn)
	if !ok {
		return out, nil
	}

	positions, err := s.lineupPositions(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if positions == nil {
		return out, nil
	}
	return dataset.LeftJoin(out, positions, athleteIDColumn, athleteIDColumn), nil
}

func (s *EnrichService) joinBaseTable(ctx context.Context, left *dataset.Table, join baseJoin) (*dataset.Table, error) {
	if !left.HasColumn(join.key) {
		return left, nil
	}

	right, err := s.baseTables.Load(ctx, join.kind)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", join.kind, err)
	}
	if !right.HasColumn(join.key) {
		return left, nil
	}

	right = right.Select(append([]string{join.key}, join.columns...)...).Rename(join.aliases)
	right.MapColumn(join.key, canonicalValue)
	return dataset.LeftJoin(left, right, join.key, join.key), nil
}

// lineupPositions returns an (athleteId, position) table for the event, or nil
// when the lineup cannot be resolved or has no position-like column.
func (s *EnrichService) lineupPositions(ctx context.Context, recordID string) (*dataset.Table, error) {
	lineup, err := s.lineups.Lineup(ctx, recordID)
	if err != nil {
		if isMissingLineup(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load lineup: %w", err)
	}
	if lineup.IsEmpty() || !lineup.HasColumn(athleteIDColumn) {
		return nil, nil
	}
	source, ok := lineup.FirstColumn(PositionColumns...)
	if !ok {
		return nil, nil
	}

	positions := lineup.Select(athleteIDColumn, source).DropDuplicates()
	positions.MapColumn(athleteIDColumn, canonicalValue)
	return positions.Rename(map[string]string{source: positionColumn}), nil
}

func isMissingLineup(err error) bool {
	return errors.Is(err, ErrRecordNotFound) ||
		errors.Is(err, ErrSeasonUndetermined) ||
		errors.Is(err, id.ErrNormalization) ||
		errors.Is(err, partition.ErrCategoryDirectoryMissing) ||
		errors.Is(err, basetable.ErrSourceFileMissing)
}

func canonicalValue(v dataset.Value) dataset.Value {
	if v.IsNull() {
		return v
	}
	return dataset.String(id.Canonical(v.Text))
}

func firstNonNull(t *dataset.Table, column string) (string, bool) {
	values, ok := t.Column(column)
	if !ok {
		return "", false
	}
	for _, v := range values {
		if !v.IsNull() {
			return v.Text, true
		}
	}
	return "", false
}
