package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/tiagoh/esoccer-tracker/internal/domain/player"
	"github.com/tiagoh/esoccer-tracker/internal/domain/team"
	"github.com/tiagoh/esoccer-tracker/internal/platform/logging"
)

type stubTeamRepo struct {
	teams []team.Team
}

func (s *stubTeamRepo) List(context.Context) ([]team.Team, error) {
	return s.teams, nil
}

func (s *stubTeamRepo) GetByName(_ context.Context, name string) (*team.Team, error) {
	for _, t := range s.teams {
		if t.Name == name {
			copied := t
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubTeamRepo) Create(_ context.Context, t team.Team) (team.Team, error) {
	t.ID = int64(len(s.teams) + 1)
	s.teams = append(s.teams, t)
	return t, nil
}

func TestAddPlayer(t *testing.T) {
	t.Parallel()

	service := NewRegistryService(&stubPlayerRepo{}, &stubTeamRepo{}, logging.NewNop())

	created, err := service.AddPlayer(context.Background(), " alice ", "Alice A.")
	if err != nil {
		t.Fatalf("AddPlayer error: %v", err)
	}
	if created.Username != "alice" || created.DisplayName != "Alice A." {
		t.Fatalf("unexpected player %+v", created)
	}

	if _, err := service.AddPlayer(context.Background(), "alice", ""); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	if _, err := service.AddPlayer(context.Background(), "  ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRemovePlayer(t *testing.T) {
	t.Parallel()

	players := &stubPlayerRepo{players: []player.Player{{ID: 1, Username: "alice"}}}
	service := NewRegistryService(players, &stubTeamRepo{}, logging.NewNop())

	if err := service.RemovePlayer(context.Background(), "alice"); err != nil {
		t.Fatalf("RemovePlayer error: %v", err)
	}
	if len(players.players) != 0 {
		t.Fatalf("player must be deleted")
	}

	if err := service.RemovePlayer(context.Background(), "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddTeam(t *testing.T) {
	t.Parallel()

	service := NewRegistryService(&stubPlayerRepo{}, &stubTeamRepo{}, logging.NewNop())

	created, err := service.AddTeam(context.Background(), "Real Madrid")
	if err != nil {
		t.Fatalf("AddTeam error: %v", err)
	}
	if created.Name != "Real Madrid" {
		t.Fatalf("unexpected team %+v", created)
	}

	again, err := service.AddTeam(context.Background(), "Real Madrid")
	if err != nil {
		t.Fatalf("AddTeam twice error: %v", err)
	}
	if again.ID != created.ID {
		t.Fatalf("re-adding a team must return the stored row")
	}

	if _, err := service.AddTeam(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
