// Package nbacdn fetches league standings and the full-season schedule
// from the NBA CDN static JSON endpoints.
package nbacdn

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"tankwatch/internal/domain"
	"tankwatch/internal/metrics"
	"tankwatch/internal/normalize"
	"tankwatch/internal/providers"
)

const ProviderName = "nbacdn"

const (
	defaultStandingsURL = "https://cdn.nba.com/static/json/staticData/standingsLeagueV2.json"
	defaultScheduleURL  = "https://cdn.nba.com/static/json/staticData/scheduleLeagueV2.json"

	feedStandings = "standings"
	feedSchedule  = "schedule"
)

type Config struct {
	StandingsURL string
	ScheduleURL  string
	HTTPClient   *http.Client
	Retry        providers.RetryPolicy
	// MinTeams is the smallest standings table accepted as complete.
	MinTeams int
}

type Client struct {
	fetcher      *providers.Fetcher
	standingsURL string
	scheduleURL  string
	minTeams     int
}

func New(cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Client {
	if cfg.StandingsURL == "" {
		cfg.StandingsURL = defaultStandingsURL
	}
	if cfg.ScheduleURL == "" {
		cfg.ScheduleURL = defaultScheduleURL
	}
	if cfg.MinTeams <= 0 {
		cfg.MinTeams = 1
	}
	return &Client{
		fetcher:      providers.NewFetcher(cfg.HTTPClient, cfg.Retry, logger, recorder, ProviderName),
		standingsURL: cfg.StandingsURL,
		scheduleURL:  cfg.ScheduleURL,
		minTeams:     cfg.MinTeams,
	}
}

func (c *Client) Name() string { return ProviderName }

// Fetch retrieves both feeds concurrently and normalizes them into a
// canonical dataset. A failure in either feed fails the whole fetch.
func (c *Client) Fetch(ctx context.Context) (*domain.Dataset, error) {
	var (
		mu           sync.Mutex
		standingsDoc any
		scheduleDoc  any
	)
	err := providers.FetchAll(ctx,
		func(ctx context.Context) error {
			doc, err := c.fetcher.FetchJSON(ctx, feedStandings, c.standingsURL)
			if err != nil {
				return err
			}
			mu.Lock()
			standingsDoc = doc
			mu.Unlock()
			return nil
		},
		func(ctx context.Context) error {
			doc, err := c.fetcher.FetchJSON(ctx, feedSchedule, c.scheduleURL)
			if err != nil {
				return err
			}
			mu.Lock()
			scheduleDoc = doc
			mu.Unlock()
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	standings, err := normalize.Standings(standingsDoc)
	if err != nil {
		return nil, &providers.ShapeError{Feed: feedStandings, Reason: err.Error()}
	}
	if len(standings) < c.minTeams {
		return nil, &providers.ShapeError{
			Feed:   feedStandings,
			Reason: fmt.Sprintf("resolved %d teams, need at least %d", len(standings), c.minTeams),
		}
	}
	games := normalize.Schedule(scheduleDoc)

	return &domain.Dataset{
		Provider:  ProviderName,
		Standings: standings,
		Games:     games,
		DataSources: map[string]string{
			feedStandings: c.standingsURL,
			feedSchedule:  c.scheduleURL,
		},
	}, nil
}
