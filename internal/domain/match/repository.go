package match

import (
	"context"
	"time"
)

// Repository persists match records and the finished-match archive. The
// reconciliation engine is the only writer; read models share the same
// interface.
type Repository interface {
	// GetByMatchAndPlayer returns nil when no record exists for the pair.
	GetByMatchAndPlayer(ctx context.Context, matchID, player string) (*Record, error)
	// CreatePair inserts both sides of a fixture atomically. When archive is
	// true the archive copies are written in the same transaction.
	CreatePair(ctx context.Context, left, right Record, archive bool) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
	ListByStatuses(ctx context.Context, statuses []string) ([]Record, error)
	ListRecent(ctx context.Context, limit, offset int) ([]Record, error)
}
