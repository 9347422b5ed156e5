package cache

import (
	"context"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/basetable"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	basecache "github.com/riskibarqy/espn-soccer-reader/internal/platform/cache"
)

const baseTableKeyPrefix = "basetable:"

// BaseTableRepository memoizes base tables per kind. Callers always receive a
// copy so the cached table cannot be mutated through a returned value.
type BaseTableRepository struct {
	next  basetable.Repository
	cache *basecache.Store[*dataset.Table]
}

func NewBaseTableRepository(next basetable.Repository, cache *basecache.Store[*dataset.Table]) *BaseTableRepository {
	return &BaseTableRepository{next: next, cache: cache}
}

func (r *BaseTableRepository) Load(ctx context.Context, kind basetable.Kind) (*dataset.Table, error) {
	if _, err := kind.Path(); err != nil {
		return nil, err
	}

	v, err := r.cache.GetOrLoad(ctx, baseTableKey(kind), func(ctx context.Context) (*dataset.Table, error) {
		return r.next.Load(ctx, kind)
	})
	if err != nil {
		return nil, err
	}
	return v.Clone(), nil
}

// Invalidate drops the cached table for kind; the next Load re-reads it.
func (r *BaseTableRepository) Invalidate(ctx context.Context, kind basetable.Kind) {
	r.cache.Delete(ctx, baseTableKey(kind))
}

func (r *BaseTableRepository) InvalidateAll(ctx context.Context) {
	r.cache.DeletePrefix(ctx, baseTableKeyPrefix)
}

func (r *BaseTableRepository) Stats() basecache.Stats {
	return r.cache.Stats()
}

func baseTableKey(kind basetable.Kind) string {
	return baseTableKeyPrefix + string(kind)
}
