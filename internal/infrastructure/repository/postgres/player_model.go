package postgres

import (
	"database/sql"
	"time"

	"github.com/tiagoh/esoccer-tracker/internal/domain/player"
)

type playerTableModel struct {
	ID          int64          `db:"id"`
	Username    string         `db:"username"`
	DisplayName sql.NullString `db:"display_name"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (m playerTableModel) toPlayer() player.Player {
	return player.Player{
		ID:          m.ID,
		Username:    m.Username,
		DisplayName: nullStringToString(m.DisplayName),
		CreatedAt:   m.CreatedAt,
	}
}
