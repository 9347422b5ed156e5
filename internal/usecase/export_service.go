package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
)

// TableWriter persists a table at path, creating parent directories.
type TableWriter func(path string, t *dataset.Table) error

type ExportService struct {
	write TableWriter
}

func NewExportService(write TableWriter) *ExportService {
	return &ExportService{write: write}
}

func (s *ExportService) ExportTable(ctx context.Context, t *dataset.Table, path string) error {
	_, span := startUsecaseSpan(ctx, "usecase.ExportService.ExportTable", attribute.String("export.path", path))
	defer span.End()

	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: export path is required", ErrInvalidInput)
	}
	if t == nil {
		t = dataset.New()
	}

	if err := s.write(path, t); err != nil {
		return fmt.Errorf("export table to %s: %w", path, err)
	}
	return nil
}
