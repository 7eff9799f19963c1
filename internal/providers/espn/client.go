// Package espn fetches standings and per-team schedules from the public
// ESPN site API. It serves as the fallback when the NBA CDN is unavailable.
package espn

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"tankwatch/internal/domain"
	"tankwatch/internal/metrics"
	"tankwatch/internal/normalize"
	"tankwatch/internal/providers"
)

const ProviderName = "espn"

const (
	defaultStandingsURL    = "https://site.api.espn.com/apis/v2/sports/basketball/nba/standings?level=1&region=us&lang=en"
	defaultTeamScheduleURL = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba/teams/{teamId}/schedule?region=us&lang=en"

	teamIDPlaceholder = "{teamId}"

	feedStandings = "standings"
	feedSchedule  = "schedule"
)

type Config struct {
	StandingsURL    string
	TeamScheduleURL string
	HTTPClient      *http.Client
	Retry           providers.RetryPolicy
	// TrackedTeams bounds how many bottom-ranked teams get their
	// schedules fetched, and is the minimum standings size accepted.
	TrackedTeams int
}

type Client struct {
	fetcher         *providers.Fetcher
	standingsURL    string
	teamScheduleURL string
	trackedTeams    int
}

func New(cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Client {
	if cfg.StandingsURL == "" {
		cfg.StandingsURL = defaultStandingsURL
	}
	if cfg.TeamScheduleURL == "" {
		cfg.TeamScheduleURL = defaultTeamScheduleURL
	}
	if cfg.TrackedTeams <= 0 {
		cfg.TrackedTeams = 1
	}
	return &Client{
		fetcher:         providers.NewFetcher(cfg.HTTPClient, cfg.Retry, logger, recorder, ProviderName),
		standingsURL:    cfg.StandingsURL,
		teamScheduleURL: cfg.TeamScheduleURL,
		trackedTeams:    cfg.TrackedTeams,
	}
}

func (c *Client) Name() string { return ProviderName }

// Fetch retrieves the league standings, then the schedules of the
// bottom-ranked teams concurrently. The per-team schedule feed only
// covers tracked teams; games between two untracked teams never affect
// downstream aggregation.
func (c *Client) Fetch(ctx context.Context) (*domain.Dataset, error) {
	standingsDoc, err := c.fetcher.FetchJSON(ctx, feedStandings, c.standingsURL)
	if err != nil {
		return nil, err
	}
	standings, err := normalize.Standings(standingsDoc)
	if err != nil {
		return nil, &providers.ShapeError{Feed: feedStandings, Reason: err.Error()}
	}
	if len(standings) < c.trackedTeams {
		return nil, &providers.ShapeError{
			Feed:   feedStandings,
			Reason: fmt.Sprintf("resolved %d teams, need at least %d", len(standings), c.trackedTeams),
		}
	}
	normalize.SortWorstFirst(standings)

	bottom := standings[:c.trackedTeams]
	docs := make([]any, len(bottom))
	var mu sync.Mutex
	fetches := make([]func(ctx context.Context) error, len(bottom))
	for i, record := range bottom {
		i, teamID := i, record.TeamID
		fetches[i] = func(ctx context.Context) error {
			url := strings.ReplaceAll(c.teamScheduleURL, teamIDPlaceholder, teamID)
			doc, err := c.fetcher.FetchJSON(ctx, feedSchedule, url)
			if err != nil {
				return err
			}
			mu.Lock()
			docs[i] = doc
			mu.Unlock()
			return nil
		}
	}
	if err := providers.FetchAll(ctx, fetches...); err != nil {
		return nil, err
	}

	games := normalize.ScheduleDocs(docs...)

	return &domain.Dataset{
		Provider:  ProviderName,
		Standings: standings,
		Games:     games,
		DataSources: map[string]string{
			feedStandings: c.standingsURL,
			feedSchedule:  c.teamScheduleURL,
		},
	}, nil
}
