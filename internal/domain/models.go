package domain

import "time"

// Streak is a normalized run of consecutive results, e.g. {Kind: "W", Count: 3}.
type Streak struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

// Last10 is the won-lost split over a team's last ten games.
type Last10 struct {
	Won  int `json:"won"`
	Lost int `json:"lost"`
}

// TeamRecord is the canonical standings entry, independent of provider schema.
// A record admitted on an explicit win percentage alone keeps Wins and Losses
// at zero; such a record ranks behind fuller records at the same percentage
// because GamesPlayed breaks the tie.
type TeamRecord struct {
	TeamID   string  `json:"teamId"`
	TeamName string  `json:"teamName"`
	Tricode  string  `json:"tricode,omitempty"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	WinPct   float64 `json:"winPct"`
	Streak   *Streak `json:"streak,omitempty"`
	Last10   *Last10 `json:"last10,omitempty"`
}

// GamesPlayed is the completeness proxy used for ranking ties and duplicate resolution.
func (r TeamRecord) GamesPlayed() int {
	return r.Wins + r.Losses
}

// Game is a canonical scheduled or completed contest. Date is nil when the
// provider supplied no parseable instant.
type Game struct {
	GameID       string     `json:"gameId"`
	HomeTeamID   string     `json:"homeTeamId"`
	AwayTeamID   string     `json:"awayTeamId"`
	HomeTeamName string     `json:"homeTeamName,omitempty"`
	AwayTeamName string     `json:"awayTeamName,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	IsFinal      bool       `json:"isFinal"`
	StatusText   string     `json:"statusText,omitempty"`
}

// OpponentCount pairs a tracked opponent with the remaining head-to-head games.
type OpponentCount struct {
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
	Count    int    `json:"count"`
}

// Row is the per-team projection consumed by the table renderer.
type Row struct {
	Rank             int             `json:"rank"`
	TeamID           string          `json:"teamId"`
	TeamName         string          `json:"teamName"`
	Tricode          string          `json:"tricode,omitempty"`
	Wins             int             `json:"wins"`
	Losses           int             `json:"losses"`
	WinPct           float64         `json:"winPct"`
	Streak           *Streak         `json:"streak,omitempty"`
	Last10           *Last10         `json:"last10,omitempty"`
	TotalRemaining   int             `json:"totalRemainingVsTracked"`
	Opponents        []OpponentCount `json:"opponents"`
	OpponentsDisplay string          `json:"opponentsDisplay"`
}

// ScheduledGame annotates a canonical game with its tracked participants.
type ScheduledGame struct {
	Game
	TrackedTeamIDs []string `json:"trackedTeamIds"`
}

// ScheduleDay holds the qualifying games for one Eastern calendar date.
// Days with no games keep an empty (never nil) list.
type ScheduleDay struct {
	Date  string          `json:"date"`
	Games []ScheduledGame `json:"games"`
}

// Refresh sources reported in provenance.
const (
	SourceLive   = "live"
	SourceCached = "cached"
)

// RefreshStatus distinguishes freshly computed output from a republished
// snapshot. The last four fields are only populated on cached fallback.
type RefreshStatus struct {
	Source              string     `json:"source"`
	Provider            string     `json:"provider"`
	GeneratedAt         time.Time  `json:"generatedAt"`
	LastLiveGeneratedAt *time.Time `json:"lastLiveGeneratedAt,omitempty"`
	AttemptedAt         *time.Time `json:"attemptedAt,omitempty"`
	FailureKind         string     `json:"failureKind,omitempty"`
	FailureDetail       string     `json:"failureDetail,omitempty"`
}

// Payload is the full persisted/served document.
type Payload struct {
	GeneratedAt   time.Time         `json:"generatedAt"`
	DataSources   map[string]string `json:"dataSources"`
	RefreshStatus RefreshStatus     `json:"refreshStatus"`
	Schedule      []ScheduleDay     `json:"todaySchedule"`
	Rows          []Row             `json:"rows"`
}

// Dataset is one provider's canonical output for a run.
type Dataset struct {
	Provider    string
	Standings   []TeamRecord
	Games       []Game
	DataSources map[string]string
}
