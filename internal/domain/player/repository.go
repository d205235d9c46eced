package player

import "context"

type Repository interface {
	List(ctx context.Context) ([]Player, error)
	// GetByUsername returns nil when no player matches.
	GetByUsername(ctx context.Context, username string) (*Player, error)
	Create(ctx context.Context, p Player) (Player, error)
	Delete(ctx context.Context, id int64) error
}
