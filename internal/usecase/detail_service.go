package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/fixture"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/partition"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/id"
)

type partitionResolver interface {
	Resolve(ctx context.Context, recordID string) (partition.Key, error)
}

// DetailService returns the rows of one event from a partitioned category.
type DetailService struct {
	resolver   partitionResolver
	partitions partition.Repository
}

func NewDetailService(resolver partitionResolver, partitions partition.Repository) *DetailService {
	return &DetailService{
		resolver:   resolver,
		partitions: partitions,
	}
}

func (s *DetailService) Commentary(ctx context.Context, recordID string) (*dataset.Table, error) {
	return s.ForCategory(ctx, partition.CategoryCommentary, recordID)
}

func (s *DetailService) KeyEvents(ctx context.Context, recordID string) (*dataset.Table, error) {
	return s.ForCategory(ctx, partition.CategoryKeyEvents, recordID)
}

func (s *DetailService) Lineup(ctx context.Context, recordID string) (*dataset.Table, error) {
	return s.ForCategory(ctx, partition.CategoryLineup, recordID)
}

func (s *DetailService) PlayerStats(ctx context.Context, recordID string) (*dataset.Table, error) {
	return s.ForCategory(ctx, partition.CategoryPlayerStats, recordID)
}

func (s *DetailService) Plays(ctx context.Context, recordID string) (*dataset.Table, error) {
	return s.ForCategory(ctx, partition.CategoryPlays, recordID)
}

// PartitionFor exposes the partition key an event resolves to.
func (s *DetailService) PartitionFor(ctx context.Context, recordID string) (partition.Key, error) {
	return s.resolver.Resolve(ctx, recordID)
}

// ForCategory resolves the event's partition, loads every matching file of the
// category and keeps the rows of the event. Data without a recognizable event
// id column is returned unfiltered.
func (s *DetailService) ForCategory(ctx context.Context, category partition.Category, recordID string) (*dataset.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DetailService.ForCategory",
		attrCategory.String(string(category)),
		attrRecordID.String(recordID),
	)
	defer span.End()

	normalized, err := normalizeRecordID(recordID)
	if err != nil {
		return nil, err
	}

	key, err := s.resolver.Resolve(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if !key.HasLeague() {
		return dataset.New(), nil
	}

	loaded, err := s.partitions.Load(ctx, category, key.Prefix(category))
	if err != nil {
		return nil, fmt.Errorf("load %s partition: %w", category, err)
	}

	return filterByRecord(loaded, normalized), nil
}

func filterByRecord(t *dataset.Table, normalizedID string) *dataset.Table {
	if t.IsEmpty() {
		return t
	}
	column, ok := t.FirstColumn(fixture.DetailIDColumns...)
	if !ok {
		return t
	}

	values, _ := t.Column(column)
	return t.Filter(func(row int) bool {
		v := values[row]
		if v.IsNull() {
			return false
		}
		cell, err := id.Normalize(v.Text)
		return err == nil && cell == normalizedID
	})
}
