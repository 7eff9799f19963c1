package normalize

import (
	"fmt"
	"strings"
	"time"

	"tankwatch/internal/domain"
	"tankwatch/internal/jsonwalk"
	"tankwatch/internal/timeutil"
)

// statusCodeFinal is the numeric "final" code both numeric-status feeds use.
const statusCodeFinal = 3

var (
	homeSideKeys = []string{"homeTeam", "home"}
	awaySideKeys = []string{"awayTeam", "visitorTeam", "away"}

	gameIDRules = []stringRule{
		aliasString("gameId", "gameID", "gameCode"),
		aliasString("id"),
	}
	gameDateRules = []stringRule{
		aliasString("gameTimeUTC", "gameDateTimeUTC", "startTimeUTC", "date", "startDate", "gameDate"),
	}
	statusTextRules = []stringRule{
		aliasString("gameStatusText", "statusText"),
		statusTypeText,
	}
	statusCodeRules = []numberRule{
		aliasNumber("gameStatus", "statusNum", "status"),
	}
	sideNameRules = []stringRule{
		nestedString("team", "displayName", "fullName", "shortDisplayName"),
		aliasString("displayName", "fullName"),
		composedName([2]string{"teamCity", "teamName"}, [2]string{"location", "name"}),
		aliasString("teamName", "name"),
	}
)

// side is one resolved participant of a game candidate.
type side struct {
	id      string
	name    string
	tricode string
}

// isGameCandidate is the duck test for "anything that looks like a game":
// a resolvable home side and away side.
func isGameCandidate(obj map[string]any) bool {
	if _, ok := resolveSide(obj, homeSideKeys, "home"); !ok {
		return false
	}
	_, ok := resolveSide(obj, awaySideKeys, "away")
	return ok
}

// Schedule extracts the canonical deduplicated game list from one raw
// schedule/events document. Entity-level defects are dropped, never surfaced.
func Schedule(doc any) []domain.Game {
	seen := make(map[string]struct{})
	return appendGames(nil, seen, doc)
}

// ScheduleDocs folds several raw schedule documents (e.g. one per tracked
// team) into one canonical list, deduplicating across documents.
func ScheduleDocs(docs ...any) []domain.Game {
	seen := make(map[string]struct{})
	var games []domain.Game
	for _, doc := range docs {
		games = appendGames(games, seen, doc)
	}
	return games
}

func appendGames(games []domain.Game, seen map[string]struct{}, doc any) []domain.Game {
	for _, obj := range jsonwalk.Find(doc, isGameCandidate) {
		g, ok := game(obj)
		if !ok {
			continue
		}
		// Schedule entries for the same game are structurally near-identical
		// across occurrences; the first wins.
		if _, dup := seen[g.GameID]; dup {
			continue
		}
		seen[g.GameID] = struct{}{}
		games = append(games, g)
	}
	return games
}

func game(obj map[string]any) (domain.Game, bool) {
	home, ok := resolveSide(obj, homeSideKeys, "home")
	if !ok {
		return domain.Game{}, false
	}
	away, ok := resolveSide(obj, awaySideKeys, "away")
	if !ok {
		return domain.Game{}, false
	}

	g := domain.Game{
		HomeTeamID:   home.id,
		AwayTeamID:   away.id,
		HomeTeamName: home.name,
		AwayTeamName: away.name,
	}
	g.Date = resolveDate(obj)
	g.IsFinal, g.StatusText = resolveFinal(obj)

	if id, ok := firstString(obj, gameIDRules); ok {
		g.GameID = id
	} else {
		g.GameID = synthesizeGameID(away.id, home.id, g.Date)
	}
	return g, true
}

// resolveSide finds one participant: a directly-keyed sub-object, or an
// entry of an event-style competitors array flagged with homeAway.
func resolveSide(obj map[string]any, keys []string, homeAway string) (side, bool) {
	for _, key := range keys {
		if sub, ok := obj[key].(map[string]any); ok {
			if s, ok := teamSide(sub); ok {
				return s, true
			}
		}
	}
	if list, ok := obj["competitors"].([]any); ok {
		for _, item := range list {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			flag, _ := asString(entry["homeAway"])
			if !strings.EqualFold(flag, homeAway) {
				continue
			}
			if s, ok := teamSide(entry); ok {
				return s, true
			}
		}
	}
	return side{}, false
}

func teamSide(obj map[string]any) (side, bool) {
	id, ok := firstString(obj, teamIDRules)
	if !ok {
		return side{}, false
	}
	tricode, _ := firstString(obj, tricodeRules)
	name, _ := firstString(obj, sideNameRules)
	if name == "" {
		name = tricode
	}
	return side{id: id, name: name, tricode: tricode}, true
}

// resolveDate returns the first parseable date alias, or nil. A present but
// unparseable value is never an error.
func resolveDate(obj map[string]any) *time.Time {
	for _, rule := range gameDateRules {
		raw, ok := rule(obj)
		if !ok {
			continue
		}
		if ts, ok := timeutil.ParseFlexible(raw); ok {
			return &ts
		}
	}
	return nil
}

// resolveFinal applies the status rule: the known final code, a textual
// status containing "final", or an event-status completed flag.
func resolveFinal(obj map[string]any) (bool, string) {
	statusText, _ := firstString(obj, statusTextRules)
	if code, ok := firstNumber(obj, statusCodeRules); ok && int(code) == statusCodeFinal {
		return true, statusText
	}
	if strings.Contains(strings.ToLower(statusText), "final") {
		return true, statusText
	}
	if status, ok := obj["status"].(map[string]any); ok {
		if typ, ok := status["type"].(map[string]any); ok {
			if completed, ok := typ["completed"].(bool); ok && completed {
				return true, statusText
			}
		}
	}
	return false, statusText
}

// statusTypeText reads event-style nested status objects
// ({"status": {"type": {"description": "Final"}}}).
func statusTypeText(obj map[string]any) (string, bool) {
	status, ok := obj["status"].(map[string]any)
	if !ok {
		return "", false
	}
	if v, ok := aliasString("description", "detail", "shortDetail")(status); ok {
		return v, true
	}
	typ, ok := status["type"].(map[string]any)
	if !ok {
		return "", false
	}
	return aliasString("description", "detail", "shortDetail", "name")(typ)
}

// synthesizeGameID builds a stable composite id when the provider omits one.
func synthesizeGameID(awayID, homeID string, date *time.Time) string {
	datePart := "tbd"
	if date != nil {
		datePart = date.UTC().Format(timeutil.CompactLayout)
	}
	return fmt.Sprintf("%s-%s-%s", awayID, homeID, datePart)
}
