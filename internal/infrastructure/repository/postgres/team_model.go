package postgres

import (
	"time"

	"github.com/tiagoh/esoccer-tracker/internal/domain/team"
)

type teamTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (m teamTableModel) toTeam() team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}
