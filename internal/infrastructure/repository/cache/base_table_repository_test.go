package cache

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/basetable"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	basecache "github.com/riskibarqy/espn-soccer-reader/internal/platform/cache"
)

type countingRepository struct {
	mu    sync.Mutex
	calls map[basetable.Kind]int
	err   error
}

func (r *countingRepository) Load(_ context.Context, kind basetable.Kind) (*dataset.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = make(map[basetable.Kind]int)
	}
	r.calls[kind]++
	if r.err != nil {
		return nil, r.err
	}

	t := dataset.New("kind")
	t.AppendRow([]dataset.Value{dataset.String(string(kind))})
	return t, nil
}

func (r *countingRepository) count(kind basetable.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[kind]
}

func TestBaseTableRepository_LoadsOncePerKind(t *testing.T) {
	t.Parallel()

	next := &countingRepository{}
	repo := NewBaseTableRepository(next, basecache.NewStore[*dataset.Table](0))
	ctx := context.Background()

	first, err := repo.Load(ctx, basetable.KindFixtures)
	require.NoError(t, err)
	second, err := repo.Load(ctx, basetable.KindFixtures)
	require.NoError(t, err)

	assert.Equal(t, 1, next.count(basetable.KindFixtures))
	assert.Equal(t, first.Columns(), second.Columns())
	assert.Equal(t, first.Record(0), second.Record(0))

	_, err = repo.Load(ctx, basetable.KindTeams)
	require.NoError(t, err)
	assert.Equal(t, 1, next.count(basetable.KindTeams))

	stats := repo.Stats()
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, int64(2), stats.Loads)
}

func TestBaseTableRepository_ReturnsIsolatedCopies(t *testing.T) {
	t.Parallel()

	repo := NewBaseTableRepository(&countingRepository{}, basecache.NewStore[*dataset.Table](0))
	ctx := context.Background()

	first, err := repo.Load(ctx, basetable.KindPlayers)
	require.NoError(t, err)
	first.Set(0, "kind", dataset.String("mutated"))
	first.AddColumn("extra")

	second, err := repo.Load(ctx, basetable.KindPlayers)
	require.NoError(t, err)
	v, _ := second.Value(0, "kind")
	assert.Equal(t, "players", v.Text)
	assert.False(t, second.HasColumn("extra"))
}

func TestBaseTableRepository_Invalidate(t *testing.T) {
	t.Parallel()

	next := &countingRepository{}
	repo := NewBaseTableRepository(next, basecache.NewStore[*dataset.Table](0))
	ctx := context.Background()

	_, _ = repo.Load(ctx, basetable.KindVenues)
	_, _ = repo.Load(ctx, basetable.KindStatus)
	repo.Invalidate(ctx, basetable.KindVenues)
	_, _ = repo.Load(ctx, basetable.KindVenues)
	_, _ = repo.Load(ctx, basetable.KindStatus)

	assert.Equal(t, 2, next.count(basetable.KindVenues))
	assert.Equal(t, 1, next.count(basetable.KindStatus))

	repo.InvalidateAll(ctx)
	_, _ = repo.Load(ctx, basetable.KindStatus)
	assert.Equal(t, 2, next.count(basetable.KindStatus))
}

func TestBaseTableRepository_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	next := &countingRepository{err: basetable.ErrSourceFileMissing}
	repo := NewBaseTableRepository(next, basecache.NewStore[*dataset.Table](0))
	ctx := context.Background()

	_, err := repo.Load(ctx, basetable.KindStandings)
	require.True(t, errors.Is(err, basetable.ErrSourceFileMissing))
	_, err = repo.Load(ctx, basetable.KindStandings)
	require.Error(t, err)
	assert.Equal(t, 2, next.count(basetable.KindStandings))
}

func TestBaseTableRepository_UnknownKindSkipsStore(t *testing.T) {
	t.Parallel()

	next := &countingRepository{}
	repo := NewBaseTableRepository(next, basecache.NewStore[*dataset.Table](0))

	_, err := repo.Load(context.Background(), basetable.Kind("referees"))
	assert.ErrorIs(t, err, basetable.ErrUnknownTableKind)
	assert.Equal(t, 0, next.count(basetable.Kind("referees")))
}
