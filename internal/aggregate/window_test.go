package aggregate

import (
	"testing"
	"time"

	"tankwatch/internal/domain"
	"tankwatch/internal/timeutil"
)

func TestScheduleWindowAlwaysHasRequestedDays(t *testing.T) {
	window := BuildScheduleWindow(trackedThree(), nil, aggNow, 3)
	if len(window) != 3 {
		t.Fatalf("expected 3 days, got %d", len(window))
	}
	prev := ""
	for _, day := range window {
		if day.Games == nil {
			t.Fatalf("day %s has nil games list", day.Date)
		}
		if len(day.Games) != 0 {
			t.Fatalf("day %s should be empty, got %d games", day.Date, len(day.Games))
		}
		if prev != "" && day.Date <= prev {
			t.Fatalf("dates out of order: %s after %s", day.Date, prev)
		}
		prev = day.Date
	}
	if window[0].Date != timeutil.EasternDate(aggNow) {
		t.Fatalf("window must start today eastern, got %s", window[0].Date)
	}
}

func TestScheduleWindowFiltersAndTags(t *testing.T) {
	// 23:30 UTC today is still today's Eastern evening; 3:00 UTC tomorrow is
	// also today's Eastern evening.
	tonight := time.Date(2025, 3, 12, 23, 30, 0, 0, time.UTC)
	lateGame := time.Date(2025, 3, 13, 3, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	games := []domain.Game{
		{GameID: "late", HomeTeamID: "por", AwayTeamID: "okc", Date: ts(lateGame)},
		{GameID: "early", HomeTeamID: "was", AwayTeamID: "det", Date: ts(tonight)},
		{GameID: "next", HomeTeamID: "bos", AwayTeamID: "was", Date: ts(tomorrow)},
		{GameID: "untracked", HomeTeamID: "bos", AwayTeamID: "okc", Date: ts(tonight)},
		{GameID: "dateless", HomeTeamID: "was", AwayTeamID: "det"},
	}

	window := BuildScheduleWindow(trackedThree(), games, aggNow, 2)
	if len(window) != 2 {
		t.Fatalf("expected 2 days, got %d", len(window))
	}

	today := window[0]
	if len(today.Games) != 2 {
		t.Fatalf("expected 2 games today, got %+v", today.Games)
	}
	// Sorted by kickoff: 23:30 UTC before 3:00 UTC next civil day.
	if today.Games[0].GameID != "early" || today.Games[1].GameID != "late" {
		t.Fatalf("unexpected kickoff order: %+v", today.Games)
	}
	if got := today.Games[0].TrackedTeamIDs; len(got) != 2 || got[0] != "det" || got[1] != "was" {
		t.Fatalf("unexpected tracked tags: %v", got)
	}
	if got := today.Games[1].TrackedTeamIDs; len(got) != 1 || got[0] != "por" {
		t.Fatalf("expected only the tracked participant tagged, got %v", got)
	}

	next := window[1]
	if len(next.Games) != 1 || next.Games[0].GameID != "next" {
		t.Fatalf("unexpected next-day games: %+v", next.Games)
	}
}

func TestScheduleWindowDefaultsToOneDay(t *testing.T) {
	if window := BuildScheduleWindow(trackedThree(), nil, aggNow, 0); len(window) != 1 {
		t.Fatalf("expected 1 day for non-positive request, got %d", len(window))
	}
}
