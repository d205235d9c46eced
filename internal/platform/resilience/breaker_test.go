package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestBreaker_TripsAfterThreshold(t *testing.T) {
	t.Parallel()

	b := NewBreaker(3, time.Minute)
	failure := errors.New("boom")

	for i := 0; i < 2; i++ {
		b.Record(failure)
		if err := b.Allow(); err != nil {
			t.Fatalf("breaker must stay closed below threshold, got %v", err)
		}
	}

	b.Record(failure)
	if err := b.Allow(); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen after threshold, got %v", err)
	}
	if b.State() != BreakerOpen {
		t.Fatalf("expected open state, got %s", b.State())
	}
}

func TestBreaker_AllowsProbeAfterCooloff(t *testing.T) {
	t.Parallel()

	b := NewBreaker(1, time.Minute)
	current := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return current }

	b.Record(errors.New("boom"))
	if err := b.Allow(); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}

	current = current.Add(61 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("probe after cooloff must be allowed, got %v", err)
	}

	b.Record(nil)
	if b.State() != BreakerClosed {
		t.Fatalf("success must close the breaker, got %s", b.State())
	}
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	t.Parallel()

	b := NewBreaker(2, time.Minute)
	current := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return current }

	b.Record(errors.New("boom"))
	b.Record(errors.New("boom"))
	current = current.Add(2 * time.Minute)

	if err := b.Allow(); err != nil {
		t.Fatalf("probe must be allowed, got %v", err)
	}
	b.Record(errors.New("still down"))

	if err := b.Allow(); !errors.Is(err, ErrOpen) {
		t.Fatalf("failed probe must reopen the breaker, got %v", err)
	}
}
