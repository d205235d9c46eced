package player

import "time"

// Player is a tracked esports player; scraping only persists fixtures
// involving tracked players when the roster is non-empty.
type Player struct {
	ID          int64
	Username    string
	DisplayName string
	CreatedAt   time.Time
}
