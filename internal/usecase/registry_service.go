package usecase

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/tiagoh/esoccer-tracker/internal/domain/player"
	"github.com/tiagoh/esoccer-tracker/internal/domain/team"
	"github.com/tiagoh/esoccer-tracker/internal/platform/logging"
)

// RegistryService manages the tracked-player roster and the team catalog
// behind the relevance filter and the dashboard.
type RegistryService struct {
	players player.Repository
	teams   team.Repository
	logger  *logging.Logger
}

func NewRegistryService(players player.Repository, teams team.Repository, logger *logging.Logger) *RegistryService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RegistryService{
		players: players,
		teams:   teams,
		logger:  logger,
	}
}

func (s *RegistryService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.ListPlayers")
	defer span.End()

	players, err := s.players.List(ctx)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "list players"), ErrPersistence)
	}
	return players, nil
}

// AddPlayer registers a username for tracking. The username must match the
// source page exactly, including case.
func (s *RegistryService) AddPlayer(ctx context.Context, username, displayName string) (*player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.AddPlayer")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	existing, err := s.players.GetByUsername(ctx, username)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "lookup player username=%s", username), ErrPersistence)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: player %s", ErrAlreadyExists, username)
	}

	created, err := s.players.Create(ctx, player.Player{Username: username, DisplayName: strings.TrimSpace(displayName)})
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "create player username=%s", username), ErrPersistence)
	}

	s.logger.InfoContext(ctx, "player registered", "username", username)
	return &created, nil
}

// RemovePlayer drops a username from the roster. Existing match records are
// kept; only future relevance filtering changes.
func (s *RegistryService) RemovePlayer(ctx context.Context, username string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.RemovePlayer")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	existing, err := s.players.GetByUsername(ctx, username)
	if err != nil {
		return crerr.Mark(crerr.Wrapf(err, "lookup player username=%s", username), ErrPersistence)
	}
	if existing == nil {
		return fmt.Errorf("%w: player %s", ErrNotFound, username)
	}

	if err := s.players.Delete(ctx, existing.ID); err != nil {
		return crerr.Mark(crerr.Wrapf(err, "delete player username=%s", username), ErrPersistence)
	}

	s.logger.InfoContext(ctx, "player removed", "username", username)
	return nil
}

func (s *RegistryService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.ListTeams")
	defer span.End()

	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "list teams"), ErrPersistence)
	}
	return teams, nil
}

// AddTeam registers a team name in the catalog. Adding an existing name is a
// no-op returning the stored row.
func (s *RegistryService) AddTeam(ctx context.Context, name string) (*team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistryService.AddTeam")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	existing, err := s.teams.GetByName(ctx, name)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "lookup team name=%s", name), ErrPersistence)
	}
	if existing != nil {
		return existing, nil
	}

	created, err := s.teams.Create(ctx, team.Team{Name: name})
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "create team name=%s", name), ErrPersistence)
	}
	return &created, nil
}
