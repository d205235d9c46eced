package usecase

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
	"github.com/tiagoh/esoccer-tracker/internal/domain/player"
	"github.com/tiagoh/esoccer-tracker/internal/platform/logging"
)

// MatchSource produces observations from the upstream live and results pages.
type MatchSource interface {
	LiveMatches(ctx context.Context) ([]match.Observation, error)
	RecentResults(ctx context.Context) ([]match.Observation, error)
}

// Notifier delivers operator email. Implementations must be safe for
// concurrent use; callers treat delivery failures as best effort.
type Notifier interface {
	Send(ctx context.Context, to, attachmentPath, subject, body string) error
}

// CycleSummary reports what a single scan cycle did, for logging and tests.
type CycleSummary struct {
	Observed  int
	Relevant  int
	Created   int
	Updated   int
	Unchanged int
	Failed    int
}

// ScanService runs one full scrape-filter-reconcile cycle.
type ScanService struct {
	source    MatchSource
	players   player.Repository
	reconcile *ReconcileService
	state     *ScanState
	notifier  Notifier
	alertTo   string
	loc       *time.Location
	logger    *logging.Logger
	now       func() time.Time
}

func NewScanService(
	source MatchSource,
	players player.Repository,
	reconcile *ReconcileService,
	state *ScanState,
	notifier Notifier,
	alertTo string,
	loc *time.Location,
	logger *logging.Logger,
) *ScanService {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ScanService{
		source:    source,
		players:   players,
		reconcile: reconcile,
		state:     state,
		notifier:  notifier,
		alertTo:   alertTo,
		loc:       loc,
		logger:    logger,
		now:       time.Now,
	}
}

// RunCycle fetches both upstream pages, filters the observations down to
// tracked players, and reconciles the survivors one by one. A fetch failure
// aborts the cycle; a failure on a single observation is logged and the cycle
// moves on. The last-scan mark is set as soon as both fetches succeed so the
// dashboard reflects source reachability, not persistence health.
func (s *ScanService) RunCycle(ctx context.Context) (CycleSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScanService.RunCycle")
	defer span.End()

	var summary CycleSummary

	live, err := s.source.LiveMatches(ctx)
	if err != nil {
		s.alert(ctx, "scan failure", "failed to fetch live matches page: "+err.Error())
		return summary, crerr.Mark(crerr.Wrap(err, "fetch live matches"), ErrDependencyUnavailable)
	}

	results, err := s.source.RecentResults(ctx)
	if err != nil {
		s.alert(ctx, "scan failure", "failed to fetch recent results page: "+err.Error())
		return summary, crerr.Mark(crerr.Wrap(err, "fetch recent results"), ErrDependencyUnavailable)
	}

	s.state.MarkSuccess(s.now().In(s.loc))

	roster, err := s.players.List(ctx)
	if err != nil {
		return summary, crerr.Mark(crerr.Wrap(err, "load tracked players"), ErrPersistence)
	}

	observations := append(live, results...)
	summary.Observed = len(observations)

	for _, obs := range observations {
		if !IsRelevant(obs, roster) {
			continue
		}
		summary.Relevant++

		outcome, err := s.reconcile.Reconcile(ctx, obs)
		switch outcome {
		case OutcomeCreated:
			summary.Created++
		case OutcomeUpdated:
			summary.Updated++
		case OutcomeUnchanged:
			summary.Unchanged++
		default:
			summary.Failed++
		}
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to reconcile observation",
				"match_id", obs.MatchID,
				"error", err,
			)
		}
	}

	s.logger.InfoContext(ctx, "scan cycle complete",
		"observed", summary.Observed,
		"relevant", summary.Relevant,
		"created", summary.Created,
		"updated", summary.Updated,
		"unchanged", summary.Unchanged,
		"failed", summary.Failed,
	)

	return summary, nil
}

func (s *ScanService) alert(ctx context.Context, subject, body string) {
	if s.notifier == nil || s.alertTo == "" {
		return
	}
	if err := s.notifier.Send(ctx, s.alertTo, "", subject, body); err != nil {
		s.logger.WarnContext(ctx, "failed to send alert email", "error", err)
	}
}

// IsRelevant reports whether either side of the fixture is a tracked player.
// Usernames are matched exactly. An empty roster keeps everything, which is
// what a fresh deployment with no players configured yet expects.
func IsRelevant(obs match.Observation, roster []player.Player) bool {
	if len(roster) == 0 {
		return true
	}
	for _, p := range roster {
		if p.Username == obs.PlayerLeft || p.Username == obs.PlayerRight {
			return true
		}
	}
	return false
}
