package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
	qb "github.com/tiagoh/esoccer-tracker/internal/platform/querybuilder"
)

const (
	matchesTable = "matches"
	archiveTable = "finished_matches"
)

var matchColumns = []string{
	"id", "match_id", "player", "team", "opponent",
	"goals", "goals_against", "win",
	"league", "stadium", "date", "time", "status",
	"created_at", "updated_at",
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByMatchAndPlayer(ctx context.Context, matchID, player string) (*match.Record, error) {
	query, args, err := qb.Select(matchColumns...).From(matchesTable).
		Where(
			qb.Eq("match_id", matchID),
			qb.Eq("player", player),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select match by match and player: %w", err)
	}

	record := row.toRecord()
	return &record, nil
}

func (r *MatchRepository) CreatePair(ctx context.Context, left, right match.Record, archive bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create pair tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, record := range []match.Record{left, right} {
		query, args, err := qb.InsertModel(matchesTable, newMatchInsertModel(record), "")
		if err != nil {
			return fmt.Errorf("build insert match query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert match record player=%s: %w", record.Player, err)
		}
	}

	if archive {
		archivedAt := time.Now().UTC()
		for _, record := range []match.Record{left, right} {
			query, args, err := qb.InsertModel(
				archiveTable,
				newArchiveInsertModel(record.Archive(archivedAt)),
				"ON CONFLICT (match_id, player) DO NOTHING",
			)
			if err != nil {
				return fmt.Errorf("build insert archive query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert archive entry player=%s: %w", record.Player, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create pair tx: %w", err)
	}
	return nil
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query, args, err := qb.Update(matchesTable).
		Set("status", status).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match status query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match status: %w", err)
	}
	return nil
}

func (r *MatchRepository) ListByDate(ctx context.Context, date time.Time) ([]match.Record, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	query, args, err := qb.Select(matchColumns...).From(matchesTable).
		Where(qb.Eq("date", day)).
		OrderBy("time", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by date query: %w", err)
	}

	return r.selectRecords(ctx, query, args)
}

func (r *MatchRepository) ListByStatuses(ctx context.Context, statuses []string) ([]match.Record, error) {
	values := make([]any, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, s)
	}

	query, args, err := qb.Select(matchColumns...).From(matchesTable).
		Where(qb.In("status", values)).
		OrderBy("date", "time", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by status query: %w", err)
	}

	return r.selectRecords(ctx, query, args)
}

func (r *MatchRepository) ListRecent(ctx context.Context, limit, offset int) ([]match.Record, error) {
	query, args, err := qb.Select(matchColumns...).From(matchesTable).
		OrderBy("date DESC", "time DESC", "id DESC").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recent matches query: %w", err)
	}

	return r.selectRecords(ctx, query, args)
}

func (r *MatchRepository) selectRecords(ctx context.Context, query string, args []any) ([]match.Record, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toRecord())
	}
	return out, nil
}
