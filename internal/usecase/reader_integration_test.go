package usecase

import (
	"context"
	"errors"
	"io/fs"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/partition"
	cacherepo "github.com/riskibarqy/espn-soccer-reader/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/espn-soccer-reader/internal/infrastructure/repository/filesystem"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/cache"
)

type countingFS struct {
	fs.FS
	opens atomic.Int32
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.FS.Open(name)
}

type readerStack struct {
	fsys    *countingFS
	tables  *BaseTableService
	details *DetailService
	enrich  *EnrichService
	events  *EventService
}

func newReaderStack(files fstest.MapFS) readerStack {
	fsys := &countingFS{FS: files}
	baseRepo := cacherepo.NewBaseTableRepository(
		filesystem.NewBaseTableRepository(fsys),
		cache.NewStore[*dataset.Table](0),
	)
	details := NewDetailService(NewPartitionResolver(baseRepo), filesystem.NewPartitionRepository(fsys, 2))
	return readerStack{
		fsys:    fsys,
		tables:  NewBaseTableService(baseRepo),
		details: details,
		enrich:  NewEnrichService(baseRepo, details),
		events:  NewEventService(baseRepo),
	}
}

func datasetTree() fstest.MapFS {
	return fstest.MapFS{
		"base_data/fixtures.csv": {Data: []byte("id,season,leagueId,date\n100,2024-2025,ITA.1,2024-09-01\n101,2024-2025,ITA.1,2024-09-02\n")},
		"base_data/players.csv":  {Data: []byte("athleteId,shortName,displayName,nationality\n9,R. Leao,Rafael Leao,Portugal\n")},
		"base_data/teams.csv":    {Data: []byte("teamId,displayName,shortName,abbrev\n103,AC Milan,Milan,MIL\n")},
		"commentary_data/commentary_2024_ITA.1_part1.csv": {Data: []byte("eventId,minute,text\n100,1,kick off\n101,1,other\n100,90,full time\n")},
		"playerStats_data/playerStats_2024_ITA.1.csv":     {Data: []byte("eventId,athleteId,teamId,goals\n100,9,103,1\n100,12,103,0\n")},
	}
}

func TestReader_CommentaryScenario(t *testing.T) {
	t.Parallel()

	stack := newReaderStack(datasetTree())

	key, err := stack.details.PartitionFor(context.Background(), "100")
	if err != nil {
		t.Fatalf("partition for: %v", err)
	}
	if key.SeasonYear != 2024 || key.LeagueCode != "ITA.1" {
		t.Fatalf("unexpected key %+v", key)
	}

	got, err := stack.details.Commentary(context.Background(), "100")
	if err != nil {
		t.Fatalf("commentary: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("unexpected commentary rows %d", got.Len())
	}
	if text := cellText(t, got, 1, "text"); text != "full time" {
		t.Fatalf("unexpected row order, got %q", text)
	}
}

func TestReader_BaseTablesAreReadOnce(t *testing.T) {
	t.Parallel()

	stack := newReaderStack(datasetTree())
	ctx := context.Background()

	first, err := stack.tables.Fixtures(ctx)
	if err != nil {
		t.Fatalf("fixtures: %v", err)
	}
	opens := stack.fsys.opens.Load()

	first.Set(0, "leagueId", dataset.String("ENG.1"))
	second, err := stack.tables.Load(ctx, "fixtures")
	if err != nil {
		t.Fatalf("fixtures again: %v", err)
	}
	if stack.fsys.opens.Load() != opens {
		t.Fatalf("second load touched the filesystem")
	}
	if league := cellText(t, second, 0, "leagueId"); league != "ITA.1" {
		t.Fatalf("caller mutation leaked into cache: %q", league)
	}
}

func TestReader_EnrichWithoutLineupData(t *testing.T) {
	t.Parallel()

	stack := newReaderStack(datasetTree())
	ctx := context.Background()

	stats, err := stack.details.PlayerStats(ctx, "100")
	if err != nil {
		t.Fatalf("player stats: %v", err)
	}
	got, err := stack.enrich.EnrichPlayerStats(ctx, stats)
	if err != nil {
		t.Fatalf("enrich: %v", err)
	}
	if got.Len() != stats.Len() {
		t.Fatalf("row count changed: %d != %d", got.Len(), stats.Len())
	}
	if got.HasColumn("position") {
		t.Fatalf("position must be absent without lineup data")
	}
	if name := cellText(t, got, 0, "playerName"); name != "Rafael Leao" {
		t.Fatalf("unexpected player name %q", name)
	}
	if nat := cellText(t, got, 0, "playerNationality"); nat != "Portugal" {
		t.Fatalf("unexpected nationality %q", nat)
	}
	if team := cellText(t, got, 1, "teamShortName"); team != "Milan" {
		t.Fatalf("unexpected team short name %q", team)
	}
}

func TestReader_MissingCategoryDirectory(t *testing.T) {
	t.Parallel()

	stack := newReaderStack(datasetTree())
	_, err := stack.details.Plays(context.Background(), "100")
	if !errors.Is(err, partition.ErrCategoryDirectoryMissing) {
		t.Fatalf("expected ErrCategoryDirectoryMissing, got %v", err)
	}
}

func TestReader_ListEvents(t *testing.T) {
	t.Parallel()

	stack := newReaderStack(datasetTree())
	got, err := stack.events.ListEvents(context.Background(), EventFilter{League: "ita1", SeasonYear: 2024})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 2 || got[0] != "100" || got[1] != "101" {
		t.Fatalf("unexpected ids %v", got)
	}
}
