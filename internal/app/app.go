package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/espn-soccer-reader/internal/config"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/basetable"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	"github.com/riskibarqy/espn-soccer-reader/internal/infrastructure/csvfile"
	"github.com/riskibarqy/espn-soccer-reader/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/espn-soccer-reader/internal/infrastructure/repository/filesystem"
	"github.com/riskibarqy/espn-soccer-reader/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/espn-soccer-reader/internal/platform/cache"
	"github.com/riskibarqy/espn-soccer-reader/internal/platform/logging"
	"github.com/riskibarqy/espn-soccer-reader/internal/usecase"
)

// Reader bundles the dataset services built over one root directory.
type Reader struct {
	BaseTables *usecase.BaseTableService
	Details    *usecase.DetailService
	Enrich     *usecase.EnrichService
	Events     *usecase.EventService
	Export     *usecase.ExportService

	tableCache *cache.BaseTableRepository
}

func NewReader(cfg config.Config, logger *logging.Logger) (*Reader, error) {
	if logger == nil {
		logger = logging.Default()
	}

	fsys, err := filesystem.OpenRoot(cfg.DataRootDir)
	if err != nil {
		return nil, fmt.Errorf("open dataset root: %w", err)
	}

	var baseTables basetable.Repository = filesystem.NewBaseTableRepository(fsys)
	var tableCache *cache.BaseTableRepository
	if cfg.DataAutoCache {
		tableCache = cache.NewBaseTableRepository(baseTables, basecache.NewStore[*dataset.Table](cfg.DataCacheTTL))
		baseTables = tableCache
	}
	partitions := filesystem.NewPartitionRepository(fsys, cfg.DataLoaderWorkers)

	details := usecase.NewDetailService(usecase.NewPartitionResolver(baseTables), partitions)
	reader := &Reader{
		BaseTables: usecase.NewBaseTableService(baseTables),
		Details:    details,
		Enrich:     usecase.NewEnrichService(baseTables, details),
		Events:     usecase.NewEventService(baseTables),
		Export:     usecase.NewExportService(csvfile.WriteFile),
		tableCache: tableCache,
	}

	logger.Info("dataset reader ready",
		"root", cfg.DataRootDir,
		"autocache", cfg.DataAutoCache,
		"cache_ttl", cfg.DataCacheTTL.String(),
		"loader_workers", cfg.DataLoaderWorkers,
	)

	return reader, nil
}

// WarmUp preloads the configured base tables. It is a no-op without autocache.
func (r *Reader) WarmUp(ctx context.Context, names []string, maxWorkers int, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}
	if r.tableCache == nil || len(names) == 0 {
		return nil
	}

	start := time.Now()
	logger.DebugContext(ctx, "base table warm-up started", "tables", names)
	if err := r.BaseTables.WarmUp(ctx, names, maxWorkers); err != nil {
		return fmt.Errorf("warm up base tables: %w", err)
	}

	stats := r.tableCache.Stats()
	logger.DebugContext(ctx, "base table warm-up finished",
		"tables", names,
		"entries", stats.Entries,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// InvalidateCache drops every cached base table. It reports false without autocache.
func (r *Reader) InvalidateCache(ctx context.Context) bool {
	if r.tableCache == nil {
		return false
	}
	r.tableCache.InvalidateAll(ctx)
	return true
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	reader, err := NewReader(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := reader.WarmUp(ctx, cfg.DataWarmupTables, cfg.DataLoaderWorkers, logger); err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(reader.BaseTables, reader.Details, reader.Enrich, reader.Events, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.RequestTimeout)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
