package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/tiagoh/esoccer-tracker/internal/domain/team"
	qb "github.com/tiagoh/esoccer-tracker/internal/platform/querybuilder"
)

const teamsTable = "teams"

var teamColumns = []string{"id", "name", "created_at"}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From(teamsTable).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toTeam())
	}
	return out, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (*team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From(teamsTable).
		Where(qb.Eq("name", name)).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select team by name: %w", err)
	}

	t := row.toTeam()
	return &t, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	query, args, err := qb.InsertInto(teamsTable).
		Columns("name").
		Values(t.Name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id, name, created_at").
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}
	return row.toTeam(), nil
}
