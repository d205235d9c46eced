package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
	"github.com/tiagoh/esoccer-tracker/internal/platform/logging"
)

// PlayerDailyStats aggregates one tracked player's records for a day.
type PlayerDailyStats struct {
	Player       string  `json:"player"`
	Matches      int     `json:"matches"`
	Wins         int     `json:"wins"`
	Goals        int     `json:"goals"`
	GoalsAgainst int     `json:"goalsAgainst"`
	Winrate      float64 `json:"winrate"`
}

// DashboardService serves the read side: today's fixtures, live fixtures and
// per-player daily aggregates.
type DashboardService struct {
	matches match.Repository
	state   *ScanState
	loc     *time.Location
	logger  *logging.Logger
	now     func() time.Time
}

func NewDashboardService(matches match.Repository, state *ScanState, loc *time.Location, logger *logging.Logger) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DashboardService{
		matches: matches,
		state:   state,
		loc:     loc,
		logger:  logger,
		now:     time.Now,
	}
}

// LastScan returns the last time both source pages were fetched, or nil when
// no cycle has succeeded yet.
func (s *DashboardService) LastScan() *time.Time {
	return s.state.LastScan()
}

// TodayMatches lists every record dated today in the tracker's timezone.
func (s *DashboardService) TodayMatches(ctx context.Context) ([]match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.TodayMatches")
	defer span.End()

	records, err := s.matches.ListByDate(ctx, s.now().In(s.loc))
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "list today matches"), ErrPersistence)
	}
	return records, nil
}

// LiveMatches lists records whose status marks them as currently in play.
func (s *DashboardService) LiveMatches(ctx context.Context) ([]match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.LiveMatches")
	defer span.End()

	records, err := s.matches.ListByStatuses(ctx, match.LiveStatuses())
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "list live matches"), ErrPersistence)
	}
	return records, nil
}

// RecentMatches pages through records newest first.
func (s *DashboardService) RecentMatches(ctx context.Context, limit, offset int) ([]match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.RecentMatches")
	defer span.End()

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.matches.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "list recent matches"), ErrPersistence)
	}
	return records, nil
}

// TodayStats aggregates today's records into per-player totals.
func (s *DashboardService) TodayStats(ctx context.Context) ([]PlayerDailyStats, error) {
	records, err := s.TodayMatches(ctx)
	if err != nil {
		return nil, err
	}
	return DailyStats(records), nil
}

// DailyStats folds a set of records into per-player aggregates, sorted by
// player name. Records with unknown goals count toward matches but not goals;
// records with an unknown outcome count toward matches but not wins.
func DailyStats(records []match.Record) []PlayerDailyStats {
	byPlayer := make(map[string]*PlayerDailyStats)
	for _, r := range records {
		stats, ok := byPlayer[r.Player]
		if !ok {
			stats = &PlayerDailyStats{Player: r.Player}
			byPlayer[r.Player] = stats
		}
		stats.Matches++
		if r.Win != nil && *r.Win {
			stats.Wins++
		}
		if r.Goals != nil {
			stats.Goals += *r.Goals
		}
		if r.GoalsAgainst != nil {
			stats.GoalsAgainst += *r.GoalsAgainst
		}
	}

	out := make([]PlayerDailyStats, 0, len(byPlayer))
	for _, stats := range byPlayer {
		if stats.Matches > 0 {
			stats.Winrate = math.Round(float64(stats.Wins)/float64(stats.Matches)*1000) / 1000
		}
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Player < out[j].Player })
	return out
}
