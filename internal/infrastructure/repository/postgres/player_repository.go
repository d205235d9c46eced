package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/tiagoh/esoccer-tracker/internal/domain/player"
	qb "github.com/tiagoh/esoccer-tracker/internal/platform/querybuilder"
)

const playersTable = "players"

var playerColumns = []string{"id", "username", "display_name", "created_at"}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerColumns...).From(playersTable).
		OrderBy("username").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toPlayer())
	}
	return out, nil
}

func (r *PlayerRepository) GetByUsername(ctx context.Context, username string) (*player.Player, error) {
	query, args, err := qb.Select(playerColumns...).From(playersTable).
		Where(qb.Eq("username", username)).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select player by username: %w", err)
	}

	p := row.toPlayer()
	return &p, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertInto(playersTable).
		Columns("username", "display_name").
		Values(p.Username, stringToNullString(p.DisplayName)).
		Suffix("RETURNING id, username, display_name, created_at").
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}
	return row.toPlayer(), nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM players WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}
