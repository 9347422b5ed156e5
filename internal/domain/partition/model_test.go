package partition

import (
	"errors"
	"io"
	"testing"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := map[string]Category{
		"commentary":   CategoryCommentary,
		"key-events":   CategoryKeyEvents,
		"key_events":   CategoryKeyEvents,
		"keyEvents":    CategoryKeyEvents,
		"Lineup":       CategoryLineup,
		"player-stats": CategoryPlayerStats,
		"plays":        CategoryPlays,
	}
	for in, want := range tests {
		got, err := ParseCategory(in)
		if err != nil {
			t.Fatalf("ParseCategory(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseCategory(%q)=%s want=%s", in, got, want)
		}
	}

	if _, err := ParseCategory("shots"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestKeyPrefix(t *testing.T) {
	t.Parallel()

	key := Key{SeasonYear: 2024, LeagueCode: "ITA.1"}
	if got := key.Prefix(CategoryCommentary); got != "commentary_2024_ITA.1" {
		t.Fatalf("unexpected prefix %q", got)
	}
	if got := CategoryKeyEvents.Dir(); got != "keyEvents_data" {
		t.Fatalf("unexpected dir %q", got)
	}
	if (Key{SeasonYear: 2024}).HasLeague() {
		t.Fatalf("expected key without league code")
	}
}

func TestFileError_MatchesKindAndCause(t *testing.T) {
	t.Parallel()

	err := error(&FileError{Path: "lineup_data/lineup_2024_ITA.1.csv", Err: io.ErrUnexpectedEOF})
	if !errors.Is(err, ErrPartitionFileCorrupt) {
		t.Fatalf("expected ErrPartitionFileCorrupt")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected cause to be preserved")
	}

	var fileErr *FileError
	if !errors.As(err, &fileErr) || fileErr.Path != "lineup_data/lineup_2024_ITA.1.csv" {
		t.Fatalf("expected FileError with path, got %v", err)
	}
}
