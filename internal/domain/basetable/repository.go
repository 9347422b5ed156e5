package basetable

import (
	"context"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
)

// Repository loads base tables. Implementations return a table the caller owns.
type Repository interface {
	Load(ctx context.Context, kind Kind) (*dataset.Table, error)
}
