package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
)

// MatchRepository keeps records in process memory. Used when no database is
// configured and by the service tests.
type MatchRepository struct {
	mu       sync.RWMutex
	nextID   int64
	records  []match.Record
	archived []match.ArchiveEntry
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{nextID: 1}
}

func (r *MatchRepository) GetByMatchAndPlayer(_ context.Context, matchID, player string) (*match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.MatchID == matchID && rec.Player == player {
			copied := rec
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MatchRepository) CreatePair(_ context.Context, left, right match.Record, archive bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.MatchID == left.MatchID && (rec.Player == left.Player || rec.Player == right.Player) {
			return fmt.Errorf("duplicate match record %s/%s", rec.MatchID, rec.Player)
		}
	}

	now := time.Now().UTC()
	for _, rec := range []match.Record{left, right} {
		rec.ID = r.nextID
		r.nextID++
		rec.CreatedAt = now
		rec.UpdatedAt = now
		r.records = append(r.records, rec)
		if archive {
			r.archived = append(r.archived, rec.Archive(now))
		}
	}
	return nil
}

func (r *MatchRepository) UpdateStatus(_ context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i].Status = status
			r.records[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return fmt.Errorf("match record %d not found", id)
}

func (r *MatchRepository) ListByDate(_ context.Context, date time.Time) ([]match.Record, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []match.Record
	for _, rec := range r.records {
		if rec.Date.Equal(day) {
			out = append(out, rec)
		}
	}
	sortByTime(out, false)
	return out, nil
}

func (r *MatchRepository) ListByStatuses(_ context.Context, statuses []string) ([]match.Record, error) {
	wanted := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		wanted[s] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []match.Record
	for _, rec := range r.records {
		if _, ok := wanted[rec.Status]; ok {
			out = append(out, rec)
		}
	}
	sortByTime(out, false)
	return out, nil
}

func (r *MatchRepository) ListRecent(_ context.Context, limit, offset int) ([]match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]match.Record(nil), r.records...)
	sortByTime(out, true)

	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// Archived exposes the archive for inspection; only tests use it.
func (r *MatchRepository) Archived() []match.ArchiveEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]match.ArchiveEntry(nil), r.archived...)
}

func sortByTime(records []match.Record, descending bool) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if descending {
			a, b = b, a
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.TimeOfDay != b.TimeOfDay {
			return a.TimeOfDay < b.TimeOfDay
		}
		return a.ID < b.ID
	})
}
