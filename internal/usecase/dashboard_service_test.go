package usecase

import (
	"math"
	"testing"
	"time"

	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
)

func boolPtr(v bool) *bool { return &v }

func TestDailyStats_AggregatesPerPlayer(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	records := []match.Record{
		{Player: "alice", Goals: intPtr(2), GoalsAgainst: intPtr(1), Win: boolPtr(true), Date: day},
		{Player: "alice", Goals: intPtr(0), GoalsAgainst: intPtr(3), Win: boolPtr(false), Date: day},
		{Player: "alice", Goals: intPtr(1), GoalsAgainst: intPtr(0), Win: boolPtr(true), Date: day},
		{Player: "bob", Date: day},
	}

	stats := DailyStats(records)
	if len(stats) != 2 {
		t.Fatalf("expected 2 players, got %d", len(stats))
	}

	alice := stats[0]
	if alice.Player != "alice" {
		t.Fatalf("stats must be sorted by player, got %q first", alice.Player)
	}
	if alice.Matches != 3 || alice.Wins != 2 || alice.Goals != 3 || alice.GoalsAgainst != 4 {
		t.Fatalf("unexpected totals %+v", alice)
	}
	if math.Abs(alice.Winrate-0.667) > 1e-9 {
		t.Fatalf("winrate must round to three decimals, got %v", alice.Winrate)
	}

	bob := stats[1]
	if bob.Matches != 1 || bob.Wins != 0 || bob.Goals != 0 {
		t.Fatalf("unknown scores must not count toward totals: %+v", bob)
	}
}

func TestDailyStats_EmptyInput(t *testing.T) {
	t.Parallel()

	if stats := DailyStats(nil); len(stats) != 0 {
		t.Fatalf("expected no stats, got %+v", stats)
	}
}
