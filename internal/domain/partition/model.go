package partition

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCategory          = errors.New("unknown dataset category")
	ErrCategoryDirectoryMissing = errors.New("category directory missing")
	ErrPartitionFileCorrupt     = errors.New("partition file corrupt")
)

// Category is a per-match detail dataset kind. Its value is the file name stem.
type Category string

const (
	CategoryCommentary  Category = "commentary"
	CategoryKeyEvents   Category = "keyEvents"
	CategoryLineup      Category = "lineup"
	CategoryPlayerStats Category = "playerStats"
	CategoryPlays       Category = "plays"
)

var categories = []Category{
	CategoryCommentary,
	CategoryKeyEvents,
	CategoryLineup,
	CategoryPlayerStats,
	CategoryPlays,
}

func Categories() []Category {
	return append([]Category(nil), categories...)
}

// ParseCategory matches case-insensitively and ignores '-' and '_', so
// "key-events", "key_events" and "keyEvents" are the same category.
func ParseCategory(name string) (Category, error) {
	want := foldCategory(name)
	for _, c := range categories {
		if foldCategory(string(c)) == want {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

func foldCategory(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.NewReplacer("-", "", "_", "").Replace(v)
}

// Dir is the subdirectory holding the category files.
func (c Category) Dir() string {
	return string(c) + "_data"
}

func (c Category) String() string {
	return string(c)
}

// Key identifies one season/league partition.
type Key struct {
	SeasonYear int
	LeagueCode string
}

// HasLeague reports whether a league code was resolved. Without one no
// partition file can match.
func (k Key) HasLeague() bool {
	return strings.TrimSpace(k.LeagueCode) != ""
}

// Prefix is the file name prefix shared by every file of the partition,
// "{category}_{seasonYear}_{leagueCode}".
func (k Key) Prefix(c Category) string {
	return fmt.Sprintf("%s_%d_%s", c, k.SeasonYear, k.LeagueCode)
}

// FileError reports a partition file that failed to decode. It matches both
// ErrPartitionFileCorrupt and the underlying cause.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPartitionFileCorrupt, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{ErrPartitionFileCorrupt, e.Err}
}
