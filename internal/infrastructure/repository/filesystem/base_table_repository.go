package filesystem

import (
	"context"
	"errors"
	"io/fs"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/basetable"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	"github.com/riskibarqy/espn-soccer-reader/internal/infrastructure/csvfile"
)

type BaseTableRepository struct {
	fsys fs.FS
}

func NewBaseTableRepository(fsys fs.FS) *BaseTableRepository {
	return &BaseTableRepository{fsys: fsys}
}

// Load reads base_data/<file>.csv for kind on every call.
func (r *BaseTableRepository) Load(ctx context.Context, kind basetable.Kind) (*dataset.Table, error) {
	name, err := kind.Path()
	if err != nil {
		return nil, err
	}

	f, err := r.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, crerr.Wrapf(basetable.ErrSourceFileMissing, "%s", name)
		}
		return nil, crerr.Wrapf(err, "open %s", name)
	}
	defer f.Close()

	out, err := csvfile.Decode(ctx, f)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, crerr.Wrapf(err, "decode %s", name)
	}
	return out, nil
}
