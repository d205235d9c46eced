package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tiagoh/esoccer-tracker/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	nextID  int64
	players []player.Player
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{nextID: 1}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]player.Player(nil), r.players...)
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *PlayerRepository) GetByUsername(_ context.Context, username string) (*player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if p.Username == username {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.players {
		if existing.Username == p.Username {
			return player.Player{}, fmt.Errorf("duplicate player %s", p.Username)
		}
	}

	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now().UTC()
	r.players = append(r.players, p)
	return p, nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("player %d not found", id)
}
