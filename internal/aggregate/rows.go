package aggregate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tankwatch/internal/domain"
)

// Tracked returns the bottom-n slice of an already worst-first ranked list.
// n is a shipped configuration constant, never derived from data.
func Tracked(records []domain.TeamRecord, n int) []domain.TeamRecord {
	if n > len(records) {
		n = len(records)
	}
	if n < 0 {
		n = 0
	}
	return records[:n]
}

// Matrix is the remaining-matchup count keyed by tracked team id pairs.
// Symmetric by construction: Matrix[a][b] == Matrix[b][a].
type Matrix map[string]map[string]int

// BuildMatrix counts the not-yet-final games between every tracked pair.
// Games with no resolvable date count as remaining: over-counting beats
// silently dropping a matchup when a feed omits the date.
func BuildMatrix(tracked []domain.TeamRecord, games []domain.Game, now time.Time) Matrix {
	m := make(Matrix, len(tracked))
	for _, a := range tracked {
		m[a.TeamID] = make(map[string]int, len(tracked)-1)
		for _, b := range tracked {
			if a.TeamID != b.TeamID {
				m[a.TeamID][b.TeamID] = 0
			}
		}
	}

	for _, g := range games {
		if g.HomeTeamID == g.AwayTeamID {
			continue
		}
		if _, ok := m[g.HomeTeamID]; !ok {
			continue
		}
		if _, ok := m[g.AwayTeamID]; !ok {
			continue
		}
		if g.IsFinal {
			continue
		}
		if g.Date != nil && g.Date.Before(now) {
			continue
		}
		m[g.HomeTeamID][g.AwayTeamID]++
		m[g.AwayTeamID][g.HomeTeamID]++
	}
	return m
}

// BuildRows projects the tracked teams into presentation rows, in tracked
// (rank) order. Each row carries the opponents with remaining games sorted
// alphabetically by display name, and the pre-joined display string the
// table renders verbatim.
func BuildRows(tracked []domain.TeamRecord, games []domain.Game, now time.Time) []domain.Row {
	matrix := BuildMatrix(tracked, games, now)

	namesByID := make(map[string]string, len(tracked))
	for _, t := range tracked {
		namesByID[t.TeamID] = t.TeamName
	}

	rows := make([]domain.Row, 0, len(tracked))
	for i, team := range tracked {
		opponents := make([]domain.OpponentCount, 0, len(tracked)-1)
		total := 0
		for oppID, count := range matrix[team.TeamID] {
			if count == 0 {
				continue
			}
			opponents = append(opponents, domain.OpponentCount{
				TeamID:   oppID,
				TeamName: namesByID[oppID],
				Count:    count,
			})
			total += count
		}
		sort.Slice(opponents, func(a, b int) bool {
			return opponents[a].TeamName < opponents[b].TeamName
		})

		rows = append(rows, domain.Row{
			Rank:             i + 1,
			TeamID:           team.TeamID,
			TeamName:         team.TeamName,
			Tricode:          team.Tricode,
			Wins:             team.Wins,
			Losses:           team.Losses,
			WinPct:           team.WinPct,
			Streak:           team.Streak,
			Last10:           team.Last10,
			TotalRemaining:   total,
			Opponents:        opponents,
			OpponentsDisplay: displayList(opponents),
		})
	}
	return rows
}

func displayList(opponents []domain.OpponentCount) string {
	parts := make([]string, 0, len(opponents))
	for _, o := range opponents {
		parts = append(parts, fmt.Sprintf("%s (%d)", o.TeamName, o.Count))
	}
	return strings.Join(parts, ", ")
}
