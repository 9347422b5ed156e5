package partition

import (
	"context"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
)

// Repository loads every file of a category whose name starts with prefix and
// concatenates them. No matching file yields an empty table, not an error.
type Repository interface {
	Load(ctx context.Context, category Category, prefix string) (*dataset.Table, error)
}
