package match

import (
	"strings"
	"time"
)

const (
	StatusPlanned  = "planned"
	StatusLive     = "live"
	StatusStarted  = "started"
	StatusFinished = "finished"
	StatusFinal    = "final"
)

// Observation is one scrape-time snapshot of a fixture, produced by the
// extractor and consumed immediately by reconciliation.
type Observation struct {
	MatchID     string
	PlayerLeft  string
	PlayerRight string
	TeamLeft    string
	TeamRight   string
	GoalsLeft   *int
	GoalsRight  *int
	Status      string
	League      string
	Stadium     string
	Timestamp   *time.Time
}

// Record is one persisted side of a fixture. A fixture always yields two
// records sharing MatchID with swapped sides; uniqueness is on
// (MatchID, Player), never MatchID alone.
type Record struct {
	ID           int64
	MatchID      string
	Player       string
	Team         string
	Opponent     string
	Goals        *int
	GoalsAgainst *int
	Win          *bool
	League       string
	Stadium      string
	Date         time.Time
	TimeOfDay    string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ArchiveEntry is a write-once copy of a finished record.
type ArchiveEntry struct {
	ID           int64
	MatchID      string
	Player       string
	Team         string
	Opponent     string
	Goals        *int
	GoalsAgainst *int
	Win          *bool
	League       string
	Stadium      string
	Date         time.Time
	TimeOfDay    string
	ArchivedAt   time.Time
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusPlanned
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusLive, StatusStarted:
		return true
	default:
		return false
	}
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, StatusFinal:
		return true
	default:
		return false
	}
}

// LiveStatuses lists the raw status labels the source uses for in-play
// fixtures, in both casings seen on the site.
func LiveStatuses() []string {
	return []string{"Live", "Started", "live", "started"}
}

// PairFromObservation builds the two per-player records for a fixture. The
// observation date falls back to now's date when no timestamp was scraped.
func PairFromObservation(obs Observation, now time.Time) (Record, Record) {
	date := truncateToDate(now)
	timeOfDay := ""
	if obs.Timestamp != nil {
		date = truncateToDate(*obs.Timestamp)
		timeOfDay = obs.Timestamp.Format("15:04")
	}

	status := obs.Status
	if strings.TrimSpace(status) == "" {
		status = StatusPlanned
	}

	left := Record{
		MatchID:      obs.MatchID,
		Player:       obs.PlayerLeft,
		Team:         obs.TeamLeft,
		Opponent:     obs.TeamRight,
		Goals:        obs.GoalsLeft,
		GoalsAgainst: obs.GoalsRight,
		Win:          winFlag(obs.GoalsLeft, obs.GoalsRight),
		League:       obs.League,
		Stadium:      obs.Stadium,
		Date:         date,
		TimeOfDay:    timeOfDay,
		Status:       status,
	}
	right := Record{
		MatchID:      obs.MatchID,
		Player:       obs.PlayerRight,
		Team:         obs.TeamRight,
		Opponent:     obs.TeamLeft,
		Goals:        obs.GoalsRight,
		GoalsAgainst: obs.GoalsLeft,
		Win:          winFlag(obs.GoalsRight, obs.GoalsLeft),
		League:       obs.League,
		Stadium:      obs.Stadium,
		Date:         date,
		TimeOfDay:    timeOfDay,
		Status:       status,
	}

	return left, right
}

// Archive copies a record into its archive form.
func (r Record) Archive(archivedAt time.Time) ArchiveEntry {
	return ArchiveEntry{
		MatchID:      r.MatchID,
		Player:       r.Player,
		Team:         r.Team,
		Opponent:     r.Opponent,
		Goals:        r.Goals,
		GoalsAgainst: r.GoalsAgainst,
		Win:          r.Win,
		League:       r.League,
		Stadium:      r.Stadium,
		Date:         r.Date,
		TimeOfDay:    r.TimeOfDay,
		ArchivedAt:   archivedAt,
	}
}

// winFlag is unset when either goal count is unknown; the source sometimes
// publishes partial scores and those are never trusted.
func winFlag(own, opponent *int) *bool {
	if own == nil || opponent == nil {
		return nil
	}
	won := *own > *opponent
	return &won
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
