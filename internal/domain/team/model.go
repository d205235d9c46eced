package team

import "time"

// Team names the clubs players pick in fixtures; kept as optional context
// only, never part of reconciliation.
type Team struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
