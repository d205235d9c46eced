package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tiagoh/esoccer-tracker/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	nextID int64
	teams  []team.Team
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{nextID: 1}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]team.Team(nil), r.teams...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (*team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.teams {
		if t.Name == name {
			copied := t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.teams {
		if existing.Name == t.Name {
			return existing, nil
		}
	}

	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = time.Now().UTC()
	r.teams = append(r.teams, t)
	return t, nil
}
