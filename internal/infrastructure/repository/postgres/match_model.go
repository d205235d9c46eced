package postgres

import (
	"database/sql"
	"time"

	"github.com/tiagoh/esoccer-tracker/internal/domain/match"
)

type matchTableModel struct {
	ID           int64          `db:"id"`
	MatchID      string         `db:"match_id"`
	Player       string         `db:"player"`
	Team         string         `db:"team"`
	Opponent     string         `db:"opponent"`
	Goals        sql.NullInt64  `db:"goals"`
	GoalsAgainst sql.NullInt64  `db:"goals_against"`
	Win          sql.NullBool   `db:"win"`
	League       string         `db:"league"`
	Stadium      string         `db:"stadium"`
	Date         time.Time      `db:"date"`
	TimeOfDay    sql.NullString `db:"time"`
	Status       string         `db:"status"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type matchInsertModel struct {
	MatchID      string         `db:"match_id"`
	Player       string         `db:"player"`
	Team         string         `db:"team"`
	Opponent     string         `db:"opponent"`
	Goals        sql.NullInt64  `db:"goals"`
	GoalsAgainst sql.NullInt64  `db:"goals_against"`
	Win          sql.NullBool   `db:"win"`
	League       string         `db:"league"`
	Stadium      string         `db:"stadium"`
	Date         time.Time      `db:"date"`
	TimeOfDay    sql.NullString `db:"time"`
	Status       string         `db:"status"`
}

type archiveInsertModel struct {
	MatchID      string         `db:"match_id"`
	Player       string         `db:"player"`
	Team         string         `db:"team"`
	Opponent     string         `db:"opponent"`
	Goals        sql.NullInt64  `db:"goals"`
	GoalsAgainst sql.NullInt64  `db:"goals_against"`
	Win          sql.NullBool   `db:"win"`
	League       string         `db:"league"`
	Stadium      string         `db:"stadium"`
	Date         time.Time      `db:"date"`
	TimeOfDay    sql.NullString `db:"time"`
	ArchivedAt   time.Time      `db:"archived_at"`
}

func newMatchInsertModel(r match.Record) matchInsertModel {
	return matchInsertModel{
		MatchID:      r.MatchID,
		Player:       r.Player,
		Team:         r.Team,
		Opponent:     r.Opponent,
		Goals:        ptrToNullInt(r.Goals),
		GoalsAgainst: ptrToNullInt(r.GoalsAgainst),
		Win:          ptrToNullBool(r.Win),
		League:       r.League,
		Stadium:      r.Stadium,
		Date:         r.Date,
		TimeOfDay:    stringToNullString(r.TimeOfDay),
		Status:       r.Status,
	}
}

func newArchiveInsertModel(e match.ArchiveEntry) archiveInsertModel {
	return archiveInsertModel{
		MatchID:      e.MatchID,
		Player:       e.Player,
		Team:         e.Team,
		Opponent:     e.Opponent,
		Goals:        ptrToNullInt(e.Goals),
		GoalsAgainst: ptrToNullInt(e.GoalsAgainst),
		Win:          ptrToNullBool(e.Win),
		League:       e.League,
		Stadium:      e.Stadium,
		Date:         e.Date,
		TimeOfDay:    stringToNullString(e.TimeOfDay),
		ArchivedAt:   e.ArchivedAt,
	}
}

func (m matchTableModel) toRecord() match.Record {
	return match.Record{
		ID:           m.ID,
		MatchID:      m.MatchID,
		Player:       m.Player,
		Team:         m.Team,
		Opponent:     m.Opponent,
		Goals:        nullIntToPtr(m.Goals),
		GoalsAgainst: nullIntToPtr(m.GoalsAgainst),
		Win:          nullBoolToPtr(m.Win),
		League:       m.League,
		Stadium:      m.Stadium,
		Date:         m.Date,
		TimeOfDay:    nullStringToString(m.TimeOfDay),
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
