package usecase

import (
	"context"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
	"github.com/tiagoh/esoccer-tracker/internal/platform/logging"
)

// Outcome classifies what reconciling one observation did.
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeFailed    Outcome = "failed"
)

// ReconcileService maps scrape observations onto persisted match state. It is
// the sole writer of match records and the finished-match archive.
type ReconcileService struct {
	matches match.Repository
	logger  *logging.Logger
	now     func() time.Time
}

func NewReconcileService(matches match.Repository, logger *logging.Logger) *ReconcileService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ReconcileService{
		matches: matches,
		logger:  logger,
		now:     time.Now,
	}
}

// Reconcile decides create vs. update vs. no-op for one observation.
//
// When a record already exists for (match id, left player) only the status
// field is reconciled: score changes to an already-seen match are never
// written back. Archival happens only on first creation of a finished
// fixture, never when a later status update reaches a finished state.
func (s *ReconcileService) Reconcile(ctx context.Context, obs match.Observation) (Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.Reconcile")
	defer span.End()

	if obs.MatchID == "" || obs.PlayerLeft == "" || obs.PlayerRight == "" {
		return OutcomeFailed, fmt.Errorf("%w: observation missing match id or players", ErrInvalidInput)
	}

	existing, err := s.matches.GetByMatchAndPlayer(ctx, obs.MatchID, obs.PlayerLeft)
	if err != nil {
		return OutcomeFailed, crerr.Mark(
			crerr.Wrapf(err, "lookup match match_id=%s player=%s", obs.MatchID, obs.PlayerLeft),
			ErrPersistence,
		)
	}

	if existing != nil {
		if existing.Status == obs.Status {
			return OutcomeUnchanged, nil
		}
		if err := s.matches.UpdateStatus(ctx, existing.ID, obs.Status); err != nil {
			return OutcomeFailed, crerr.Mark(
				crerr.Wrapf(err, "update status match_id=%s player=%s", obs.MatchID, obs.PlayerLeft),
				ErrPersistence,
			)
		}
		return OutcomeUpdated, nil
	}

	left, right := match.PairFromObservation(obs, s.now())
	archive := match.IsFinishedStatus(obs.Status)
	if err := s.matches.CreatePair(ctx, left, right, archive); err != nil {
		return OutcomeFailed, crerr.Mark(
			crerr.Wrapf(err, "create match pair match_id=%s", obs.MatchID),
			ErrPersistence,
		)
	}

	s.logger.InfoContext(ctx, "match saved",
		"match_id", obs.MatchID,
		"player_left", obs.PlayerLeft,
		"player_right", obs.PlayerRight,
		"status", obs.Status,
		"archived", archive,
	)

	return OutcomeCreated, nil
}
