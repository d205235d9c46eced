package team

import "context"

type Repository interface {
	List(ctx context.Context) ([]Team, error)
	// GetByName returns nil when no team matches.
	GetByName(ctx context.Context, name string) (*Team, error)
	Create(ctx context.Context, t Team) (Team, error)
}
