package filesystem

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zip"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/espn-soccer-reader/internal/domain/dataset"
	"github.com/riskibarqy/espn-soccer-reader/internal/domain/partition"
	"github.com/riskibarqy/espn-soccer-reader/internal/infrastructure/csvfile"
)

const (
	extCSV = ".csv"
	extZip = ".zip"

	// Archives created on macOS carry resource forks under this directory.
	macResourceDir = "__MACOSX/"
)

type PartitionRepository struct {
	fsys    fs.FS
	workers int
}

func NewPartitionRepository(fsys fs.FS, workers int) *PartitionRepository {
	return &PartitionRepository{fsys: fsys, workers: workers}
}

// Load decodes every .csv or .zip file in the category directory whose name
// starts with prefix and concatenates them in file name order. Any corrupt
// file aborts the whole load.
func (r *PartitionRepository) Load(ctx context.Context, category partition.Category, prefix string) (*dataset.Table, error) {
	dir := category.Dir()
	entries, err := fs.ReadDir(r.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, crerr.Wrapf(partition.ErrCategoryDirectoryMissing, "%s", dir)
		}
		return nil, crerr.Wrapf(err, "read directory %s", dir)
	}

	names := matchPartitionFiles(entries, prefix)
	if len(names) == 0 {
		return dataset.New(), nil
	}

	tables := make([]*dataset.Table, len(names))
	errs := make([]error, len(names))

	workerCount := normalizeWorkerCount(r.workers, len(names))
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, crerr.Wrap(err, "create partition worker pool")
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			break
		}

		i, name := i, name
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			tables[i], errs[i] = r.loadFile(ctx, path.Join(dir, name))
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, crerr.Wrap(err, "submit partition file to worker pool")
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return dataset.Concat(tables...), nil
}

func matchPartitionFiles(entries []fs.DirEntry, prefix string) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		switch strings.ToLower(path.Ext(name)) {
		case extCSV, extZip:
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (r *PartitionRepository) loadFile(ctx context.Context, name string) (*dataset.Table, error) {
	f, err := r.fsys.Open(name)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s", name)
	}
	defer f.Close()

	var out *dataset.Table
	if strings.EqualFold(path.Ext(name), extZip) {
		out, err = decodeArchive(ctx, f)
	} else {
		out, err = csvfile.Decode(ctx, f)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &partition.FileError{Path: name, Err: err}
	}
	return out, nil
}

// decodeArchive concatenates every CSV member of a zip archive in archive order.
func decodeArchive(ctx context.Context, f fs.File) (*dataset.Table, error) {
	readerAt, size, err := archiveSource(f)
	if err != nil {
		return nil, err
	}

	archive, err := zip.NewReader(readerAt, size)
	if err != nil {
		return nil, crerr.Wrap(err, "open zip archive")
	}

	tables := make([]*dataset.Table, 0, len(archive.File))
	for _, member := range archive.File {
		if member.FileInfo().IsDir() || strings.HasPrefix(member.Name, macResourceDir) {
			continue
		}
		if !strings.EqualFold(path.Ext(member.Name), extCSV) {
			continue
		}

		rc, err := member.Open()
		if err != nil {
			return nil, crerr.Wrapf(err, "open zip member %s", member.Name)
		}
		table, err := csvfile.Decode(ctx, rc)
		_ = rc.Close()
		if err != nil {
			return nil, crerr.Wrapf(err, "decode zip member %s", member.Name)
		}
		tables = append(tables, table)
	}
	return dataset.Concat(tables...), nil
}

func archiveSource(f fs.File) (io.ReaderAt, int64, error) {
	if ra, ok := f.(io.ReaderAt); ok {
		info, err := f.Stat()
		if err == nil {
			return ra, info.Size(), nil
		}
	}

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, crerr.Wrap(err, "read zip archive")
	}
	return bytes.NewReader(raw), int64(len(raw)), nil
}

func normalizeWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
