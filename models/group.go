package models

import "time"

// Group is a "girone": a set of teams playing a round robin among themselves.
// TeamIDs are weak references, the group does not own the teams.
type Group struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	TeamIDs []int `json:"team_ids" db:"-"`

	Teams []Team `json:"teams,omitempty" db:"-"`
}
