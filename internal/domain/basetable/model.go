package basetable

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Dir is the dataset subdirectory holding base tables.
const Dir = "base_data"

var (
	ErrUnknownTableKind  = errors.New("unknown base table kind")
	ErrSourceFileMissing = errors.New("base table source file missing")
)

// Kind names one of the whole-dataset reference tables.
type Kind string

const (
	KindFixtures   Kind = "fixtures"
	KindTeams      Kind = "teams"
	KindPlayers    Kind = "players"
	KindLeagues    Kind = "leagues"
	KindVenues     Kind = "venues"
	KindTeamStats  Kind = "team_stats"
	KindStandings  Kind = "standings"
	KindTeamRoster Kind = "team_roster"
	KindStatus     Kind = "status"
)

var kinds = []Kind{
	KindFixtures,
	KindTeams,
	KindPlayers,
	KindLeagues,
	KindVenues,
	KindTeamStats,
	KindStandings,
	KindTeamRoster,
	KindStatus,
}

var fileNames = map[Kind]string{
	KindFixtures:   "fixtures.csv",
	KindTeams:      "teams.csv",
	KindPlayers:    "players.csv",
	KindLeagues:    "leagues.csv",
	KindVenues:     "venues.csv",
	KindTeamStats:  "teamStats.csv",
	KindStandings:  "standings.csv",
	KindTeamRoster: "teamRoster.csv",
	KindStatus:     "status.csv",
}

// Kinds returns every registered kind in a stable order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// ParseKind accepts a logical name ("team_stats") or the file stem ("teamStats").
func ParseKind(name string) (Kind, error) {
	value := strings.TrimSpace(name)
	if _, ok := fileNames[Kind(value)]; ok {
		return Kind(value), nil
	}
	for kind, file := range fileNames {
		if strings.TrimSuffix(file, ".csv") == value {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTableKind, name)
}

// Path returns the slash-separated location of the kind below the dataset root.
func (k Kind) Path() (string, error) {
	file, ok := fileNames[k]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTableKind, string(k))
	}
	return path.Join(Dir, file), nil
}

func (k Kind) String() string {
	return string(k)
}
