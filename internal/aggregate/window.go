package aggregate

import (
	"sort"
	"time"

	"tankwatch/internal/domain"
	"tankwatch/internal/timeutil"
)

// BuildScheduleWindow lists the tracked-team games for days consecutive
// Eastern calendar dates starting today. Every requested date appears in
// chronological order even when it has no games; each game is tagged with
// the subset of its participants that are tracked and each day's list is
// sorted by kickoff instant.
func BuildScheduleWindow(tracked []domain.TeamRecord, games []domain.Game, now time.Time, days int) []domain.ScheduleDay {
	if days <= 0 {
		days = 1
	}
	trackedSet := make(map[string]struct{}, len(tracked))
	for _, t := range tracked {
		trackedSet[t.TeamID] = struct{}{}
	}

	start := now.In(timeutil.Eastern())
	window := make([]domain.ScheduleDay, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := timeutil.FormatDate(start.AddDate(0, 0, i))
		window[i] = domain.ScheduleDay{Date: date, Games: []domain.ScheduledGame{}}
		index[date] = i
	}

	for _, g := range games {
		if g.Date == nil {
			continue
		}
		i, ok := index[timeutil.EasternDate(*g.Date)]
		if !ok {
			continue
		}
		ids := trackedParticipants(g, trackedSet)
		if len(ids) == 0 {
			continue
		}
		window[i].Games = append(window[i].Games, domain.ScheduledGame{Game: g, TrackedTeamIDs: ids})
	}

	for i := range window {
		day := window[i].Games
		sort.SliceStable(day, func(a, b int) bool {
			return day[a].Date.Before(*day[b].Date)
		})
	}
	return window
}

func trackedParticipants(g domain.Game, trackedSet map[string]struct{}) []string {
	var ids []string
	if _, ok := trackedSet[g.AwayTeamID]; ok {
		ids = append(ids, g.AwayTeamID)
	}
	if _, ok := trackedSet[g.HomeTeamID]; ok {
		ids = append(ids, g.HomeTeamID)
	}
	return ids
}
