package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
	"github.com/tiagoh/esoccer-tracker/internal/domain/player"
	"github.com/tiagoh/esoccer-tracker/internal/platform/logging"
)

type stubSource struct {
	live       []match.Observation
	results    []match.Observation
	liveErr    error
	resultsErr error
}

func (s *stubSource) LiveMatches(context.Context) ([]match.Observation, error) {
	return s.live, s.liveErr
}

func (s *stubSource) RecentResults(context.Context) ([]match.Observation, error) {
	return s.results, s.resultsErr
}

type stubPlayerRepo struct {
	players []player.Player
	listErr error
}

func (s *stubPlayerRepo) List(context.Context) ([]player.Player, error) {
	return s.players, s.listErr
}

func (s *stubPlayerRepo) GetByUsername(_ context.Context, username string) (*player.Player, error) {
	for _, p := range s.players {
		if p.Username == username {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubPlayerRepo) Create(_ context.Context, p player.Player) (player.Player, error) {
	p.ID = int64(len(s.players) + 1)
	s.players = append(s.players, p)
	return p, nil
}

func (s *stubPlayerRepo) Delete(_ context.Context, id int64) error {
	for i, p := range s.players {
		if p.ID == id {
			s.players = append(s.players[:i], s.players[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type stubNotifier struct {
	mu       sync.Mutex
	sent     []string
	subjects []string
	err      error
}

func (s *stubNotifier) Send(_ context.Context, to, _, subject, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	s.subjects = append(s.subjects, subject)
	return nil
}

func (s *stubNotifier) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func newScanService(source MatchSource, players player.Repository, repo match.Repository, notifier Notifier) (*ScanService, *ScanState) {
	state := NewScanState()
	reconcile := NewReconcileService(repo, logging.NewNop())
	scan := NewScanService(source, players, reconcile, state, notifier, "ops@example.com", time.UTC, logging.NewNop())
	return scan, state
}

func TestRunCycle_FetchFailureAbortsAndAlerts(t *testing.T) {
	t.Parallel()

	source := &stubSource{liveErr: errors.New("connection refused")}
	notifier := &stubNotifier{}
	scan, state := newScanService(source, &stubPlayerRepo{}, &stubMatchRepo{}, notifier)

	_, err := scan.RunCycle(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if state.LastScan() != nil {
		t.Fatalf("failed cycle must not mark a successful scan")
	}
	if notifier.count() != 1 {
		t.Fatalf("expected one alert email, got %d", notifier.count())
	}
}

func TestRunCycle_ResultsFetchFailureAborts(t *testing.T) {
	t.Parallel()

	source := &stubSource{resultsErr: errors.New("boom")}
	scan, state := newScanService(source, &stubPlayerRepo{}, &stubMatchRepo{}, &stubNotifier{})

	if _, err := scan.RunCycle(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if state.LastScan() != nil {
		t.Fatalf("both pages must succeed before marking the scan")
	}
}

func TestRunCycle_AlertDeliveryFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	source := &stubSource{liveErr: errors.New("down")}
	scan, _ := newScanService(source, &stubPlayerRepo{}, &stubMatchRepo{}, &stubNotifier{err: errors.New("smtp down")})

	if _, err := scan.RunCycle(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("alert failure must not replace the fetch error, got %v", err)
	}
}

func TestRunCycle_MarksScanAndReconcilesRelevant(t *testing.T) {
	t.Parallel()

	aliceObs := observation()
	carolObs := observation()
	carolObs.MatchID = "esb-2002"
	carolObs.PlayerLeft = "carol"
	carolObs.PlayerRight = "dan"

	source := &stubSource{live: []match.Observation{aliceObs}, results: []match.Observation{carolObs}}
	players := &stubPlayerRepo{players: []player.Player{{ID: 1, Username: "alice"}}}
	repo := &stubMatchRepo{}
	scan, state := newScanService(source, players, repo, &stubNotifier{})

	summary, err := scan.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("RunCycle error: %v", err)
	}
	if state.LastScan() == nil {
		t.Fatalf("successful cycle must mark the scan time")
	}
	if summary.Observed != 2 || summary.Relevant != 1 || summary.Created != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if repo.createdLeft == nil || repo.createdLeft.Player != "alice" {
		t.Fatalf("expected alice's match persisted, got %+v", repo.createdLeft)
	}
}

func TestRunCycle_ObservationFailureDoesNotAbortCycle(t *testing.T) {
	t.Parallel()

	good := observation()
	bad := observation()
	bad.MatchID = ""

	source := &stubSource{live: []match.Observation{bad, good}}
	repo := &stubMatchRepo{}
	scan, _ := newScanService(source, &stubPlayerRepo{}, repo, &stubNotifier{})

	summary, err := scan.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("RunCycle error: %v", err)
	}
	if summary.Failed != 1 || summary.Created != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestRunCycle_RosterLoadFailureIsCycleFailure(t *testing.T) {
	t.Parallel()

	source := &stubSource{live: []match.Observation{observation()}}
	players := &stubPlayerRepo{listErr: errors.New("db down")}
	scan, state := newScanService(source, players, &stubMatchRepo{}, &stubNotifier{})

	if _, err := scan.RunCycle(context.Background()); !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if state.LastScan() == nil {
		t.Fatalf("fetches succeeded, scan time must already be marked")
	}
}

func TestIsRelevant(t *testing.T) {
	t.Parallel()

	roster := []player.Player{{Username: "alice"}, {Username: "bob"}}

	obs := observation()
	if !IsRelevant(obs, roster) {
		t.Fatalf("tracked left player must be relevant")
	}

	obs.PlayerLeft = "mallory"
	if !IsRelevant(obs, roster) {
		t.Fatalf("tracked right player must be relevant")
	}

	obs.PlayerRight = "trent"
	if IsRelevant(obs, roster) {
		t.Fatalf("untracked fixture must be filtered out")
	}

	if !IsRelevant(obs, nil) {
		t.Fatalf("empty roster keeps everything")
	}

	obs.PlayerLeft = "Alice"
	if IsRelevant(obs, roster) {
		t.Fatalf("username matching is exact, including case")
	}
}
