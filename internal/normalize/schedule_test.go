package normalize

import (
	"testing"
	"time"
)

func TestScheduleFromScoreboardFeed(t *testing.T) {
	doc := decode(t, `{
		"scoreboard": {"games": [
			{"gameId": "0022400001", "gameTimeUTC": "2025-03-12T23:30:00Z",
			 "gameStatus": 3, "gameStatusText": "Final",
			 "homeTeam": {"teamId": "1", "teamCity": "Washington", "teamName": "Wizards", "teamTricode": "WAS"},
			 "awayTeam": {"teamId": "2", "teamCity": "Detroit", "teamName": "Pistons", "teamTricode": "DET"}},
			{"gameId": "0022400002", "gameTimeUTC": "2025-03-14T00:00:00Z",
			 "gameStatus": 1, "gameStatusText": "7:00 pm ET",
			 "homeTeam": {"teamId": "3", "teamCity": "Portland", "teamName": "Trail Blazers"},
			 "awayTeam": {"teamId": "1", "teamCity": "Washington", "teamName": "Wizards"}}
		]}
	}`)

	games := Schedule(doc)
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}

	final := games[0]
	if final.GameID != "0022400001" || !final.IsFinal || final.StatusText != "Final" {
		t.Fatalf("unexpected final game: %+v", final)
	}
	if final.HomeTeamID != "1" || final.AwayTeamID != "2" {
		t.Fatalf("unexpected participants: %+v", final)
	}
	if final.HomeTeamName != "Washington Wizards" {
		t.Fatalf("unexpected home name %q", final.HomeTeamName)
	}
	want := time.Date(2025, 3, 12, 23, 30, 0, 0, time.UTC)
	if final.Date == nil || !final.Date.Equal(want) {
		t.Fatalf("unexpected date: %v", final.Date)
	}

	upcoming := games[1]
	if upcoming.IsFinal {
		t.Fatalf("scheduled game marked final: %+v", upcoming)
	}
}

func TestScheduleFromEventCompetitorsFeed(t *testing.T) {
	doc := decode(t, `{
		"events": [
			{"id": "401705001", "date": "2025-03-13T00:00Z",
			 "competitions": [
				{"id": "401705001", "date": "2025-03-13T00:00Z",
				 "status": {"type": {"description": "Final", "completed": true}},
				 "competitors": [
					{"homeAway": "home", "team": {"id": "27", "displayName": "Washington Wizards", "abbreviation": "WSH"}},
					{"homeAway": "away", "team": {"id": "8", "displayName": "Detroit Pistons", "abbreviation": "DET"}}
				 ]}
			 ]}
		]
	}`)

	games := Schedule(doc)
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	g := games[0]
	if g.GameID != "401705001" {
		t.Fatalf("unexpected game id %q", g.GameID)
	}
	if g.HomeTeamID != "27" || g.AwayTeamID != "8" {
		t.Fatalf("unexpected participants: %+v", g)
	}
	if !g.IsFinal || g.StatusText != "Final" {
		t.Fatalf("expected final with status text, got %+v", g)
	}
}

func TestScheduleCompactDateFallback(t *testing.T) {
	doc := decode(t, `[{"gameId": "x", "gameDate": "20250312",
		"homeTeam": {"teamId": "1"}, "awayTeam": {"teamId": "2"}}]`)

	games := Schedule(doc)
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	want := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	if games[0].Date == nil || !games[0].Date.Equal(want) {
		t.Fatalf("unexpected compact date: %v", games[0].Date)
	}
}

func TestScheduleUnparseableDateYieldsAbsent(t *testing.T) {
	doc := decode(t, `[{"gameId": "x", "gameTimeUTC": "TBD",
		"homeTeam": {"teamId": "1"}, "awayTeam": {"teamId": "2"}}]`)

	games := Schedule(doc)
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].Date != nil {
		t.Fatalf("expected absent date, got %v", games[0].Date)
	}
}

func TestScheduleFinalByTextOnly(t *testing.T) {
	doc := decode(t, `[{"gameId": "x", "gameStatusText": "Final/OT",
		"homeTeam": {"teamId": "1"}, "awayTeam": {"teamId": "2"}}]`)

	games := Schedule(doc)
	if len(games) != 1 || !games[0].IsFinal {
		t.Fatalf("expected text-final game, got %+v", games)
	}
}

func TestScheduleDedupFirstOccurrenceWins(t *testing.T) {
	doc := decode(t, `{
		"a": [{"gameId": "dup", "gameStatusText": "7:00 pm ET",
			"homeTeam": {"teamId": "1"}, "awayTeam": {"teamId": "2"}}],
		"b": [{"gameId": "dup", "gameStatusText": "Final",
			"homeTeam": {"teamId": "1"}, "awayTeam": {"teamId": "2"}}]
	}`)

	games := Schedule(doc)
	if len(games) != 1 {
		t.Fatalf("expected dedup to 1 game, got %d", len(games))
	}
	if games[0].IsFinal {
		t.Fatalf("expected first occurrence kept, got %+v", games[0])
	}
}

func TestScheduleSynthesizesGameID(t *testing.T) {
	doc := decode(t, `[{"gameTimeUTC": "2025-03-12T23:30:00Z",
		"homeTeam": {"teamId": "h1"}, "awayTeam": {"teamId": "a1"}}]`)

	games := Schedule(doc)
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].GameID != "a1-h1-20250312" {
		t.Fatalf("unexpected synthesized id %q", games[0].GameID)
	}

	noDate := decode(t, `[{"homeTeam": {"teamId": "h1"}, "awayTeam": {"teamId": "a1"}}]`)
	games = Schedule(noDate)
	if len(games) != 1 || games[0].GameID != "a1-h1-tbd" {
		t.Fatalf("unexpected dateless id: %+v", games)
	}
}

func TestScheduleDropsCandidatesMissingASide(t *testing.T) {
	doc := decode(t, `[
		{"gameId": "x", "homeTeam": {"teamId": "1"}},
		{"gameId": "y", "homeTeam": {"city": "Nowhere"}, "awayTeam": {"teamId": "2"}}
	]`)
	if games := Schedule(doc); len(games) != 0 {
		t.Fatalf("expected defective candidates dropped, got %+v", games)
	}
}

func TestScheduleDocsDedupAcrossDocuments(t *testing.T) {
	a := decode(t, `[{"gameId": "g1", "homeTeam": {"teamId": "1"}, "awayTeam": {"teamId": "2"}}]`)
	b := decode(t, `[
		{"gameId": "g1", "homeTeam": {"teamId": "1"}, "awayTeam": {"teamId": "2"}},
		{"gameId": "g2", "homeTeam": {"teamId": "2"}, "awayTeam": {"teamId": "3"}}
	]`)

	games := ScheduleDocs(a, b)
	if len(games) != 2 {
		t.Fatalf("expected cross-document dedup to 2 games, got %d", len(games))
	}
}
