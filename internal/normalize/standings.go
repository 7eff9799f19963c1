package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"tankwatch/internal/domain"
	"tankwatch/internal/jsonwalk"
)

// Resolver tables for standings candidates. Order matters: direct fields
// first, nested team objects next, grouped-ranking stat arrays last.
var (
	teamIDRules = []stringRule{
		aliasString("teamId", "teamID", "TeamID"),
		nestedString("team", "id", "teamId", "uid"),
		aliasString("id"),
	}
	teamNameRules = []stringRule{
		aliasString("teamDisplayName", "displayName", "fullName", "teamFullName"),
		nestedString("team", "displayName", "fullName"),
		composedName([2]string{"teamCity", "teamName"}, [2]string{"location", "name"}, [2]string{"city", "nickname"}),
	}
	tricodeRules = []stringRule{
		aliasString("teamTricode", "tricode", "triCode", "abbreviation", "teamAbbreviation"),
		nestedString("team", "abbreviation", "triCode"),
	}
	winsRules = []numberRule{
		aliasNumber("wins", "win", "w"),
		statNumber("wins"),
	}
	lossesRules = []numberRule{
		aliasNumber("losses", "loss", "l"),
		statNumber("losses"),
	}
	winPctRules = []numberRule{
		aliasNumber("winPct", "winPctV2", "pct", "winPercent", "winPercentage"),
		statNumber("winPercent", "winpct", "leaguewinpercent"),
	}
	streakTextRules = []stringRule{
		aliasString("streak", "strCurrentStreak", "currentStreak"),
		statDisplay("streak"),
	}
	streakValueRules = []numberRule{
		statNumber("streak"),
	}
	last10Rules = []stringRule{
		aliasString("last10", "lastTen", "strLastTen", "lastTenRecord", "l10"),
		statDisplay("last ten games", "lastTenGames"),
	}
)

// isTeamCandidate is the duck test for "anything that looks like a team
// record": an identifiable team id plus at least one record-shaped field.
func isTeamCandidate(obj map[string]any) bool {
	if _, ok := firstString(obj, teamIDRules); !ok {
		return false
	}
	if _, ok := firstNumber(obj, winsRules); ok {
		return true
	}
	if _, ok := firstNumber(obj, lossesRules); ok {
		return true
	}
	_, ok := firstNumber(obj, winPctRules)
	return ok
}

// Standings turns one provider's raw standings document into the canonical,
// deduplicated, worst-first ranked team list. Malformed candidates are
// dropped silently; only a non-object/array top level fails the pass.
func Standings(doc any) ([]domain.TeamRecord, error) {
	switch doc.(type) {
	case map[string]any, []any:
	default:
		return nil, fmt.Errorf("standings document must be a JSON object or array, got %T", doc)
	}

	byID := make(map[string]domain.TeamRecord)
	for _, obj := range jsonwalk.Find(doc, isTeamCandidate) {
		rec, ok := teamRecord(obj)
		if !ok {
			continue
		}
		// The same team shows up in several provider structures; the record
		// with the most games played is the most complete one seen.
		if kept, exists := byID[rec.TeamID]; !exists || rec.GamesPlayed() > kept.GamesPlayed() {
			byID[rec.TeamID] = rec
		}
	}

	records := make([]domain.TeamRecord, 0, len(byID))
	for _, rec := range byID {
		records = append(records, rec)
	}
	SortWorstFirst(records)
	return records, nil
}

// SortWorstFirst orders records by winPct ascending, then games played
// descending (a thinner record at equal percentage ranks worse), then team
// name ascending so the order is fully deterministic.
func SortWorstFirst(records []domain.TeamRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.WinPct != b.WinPct {
			return a.WinPct < b.WinPct
		}
		if a.GamesPlayed() != b.GamesPlayed() {
			return a.GamesPlayed() > b.GamesPlayed()
		}
		return a.TeamName < b.TeamName
	})
}

func teamRecord(obj map[string]any) (domain.TeamRecord, bool) {
	id, ok := firstString(obj, teamIDRules)
	if !ok {
		return domain.TeamRecord{}, false
	}

	tricode, _ := firstString(obj, tricodeRules)
	name, hasName := firstString(obj, teamNameRules)
	if !hasName {
		name = tricode
	}

	wins, hasWins := firstNumber(obj, winsRules)
	losses, hasLosses := firstNumber(obj, lossesRules)
	pct, hasPct := firstNumber(obj, winPctRules)
	if !hasPct && hasWins && hasLosses && wins+losses > 0 {
		pct = wins / (wins + losses)
		hasPct = true
	}
	if name == "" || !hasPct || pct < 0 || pct > 1 || wins < 0 || losses < 0 {
		return domain.TeamRecord{}, false
	}

	rec := domain.TeamRecord{
		TeamID:   id,
		TeamName: name,
		Tricode:  tricode,
		Wins:     int(wins),
		Losses:   int(losses),
		WinPct:   pct,
	}
	rec.Streak = resolveStreak(obj)
	if raw, ok := firstString(obj, last10Rules); ok {
		rec.Last10 = parseLast10(raw)
	}
	return rec, true
}

func resolveStreak(obj map[string]any) *domain.Streak {
	if raw, ok := firstString(obj, streakTextRules); ok {
		if s := parseStreak(raw); s != nil {
			return s
		}
	}
	// Some grouped feeds publish the streak as a signed count instead.
	if v, ok := firstNumber(obj, streakValueRules); ok && v != 0 {
		kind := "W"
		if v < 0 {
			kind = "L"
			v = -v
		}
		return &domain.Streak{Kind: kind, Count: int(v)}
	}
	return nil
}

// parseStreak normalizes the textual streak forms seen upstream: "W3",
// "L 2", "Won 3", "Lost 2".
func parseStreak(raw string) *domain.Streak {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return nil
	}
	var kind string
	switch {
	case strings.HasPrefix(s, "WON"):
		kind, s = "W", s[len("WON"):]
	case strings.HasPrefix(s, "LOST"):
		kind, s = "L", s[len("LOST"):]
	case s[0] == 'W':
		kind, s = "W", s[1:]
	case s[0] == 'L':
		kind, s = "L", s[1:]
	default:
		return nil
	}
	count, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || count <= 0 {
		return nil
	}
	return &domain.Streak{Kind: kind, Count: count}
}

// parseLast10 normalizes a "7-3" style won-lost pair.
func parseLast10(raw string) *domain.Last10 {
	parts := strings.SplitN(strings.TrimSpace(raw), "-", 2)
	if len(parts) != 2 {
		return nil
	}
	won, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	lost, errL := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errL != nil || won < 0 || lost < 0 || won+lost > 10 {
		return nil
	}
	return &domain.Last10{Won: won, Lost: lost}
}
