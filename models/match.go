package models

import "time"

// MatchSet holds the game score of a single set. Sets are not independently
// identified, ownership is positional within Match.Sets (index 0, 1, 2).
type MatchSet struct {
	Team1Score int `json:"team1_score"`
	Team2Score int `json:"team2_score"`
}

type Match struct {
	ID      int `json:"id" db:"id"`
	GroupID int `json:"group_id" db:"group_id"`
	Team1ID int `json:"team1_id" db:"team1_id"`
	Team2ID int `json:"team2_id" db:"team2_id"`

	// Date is the calendar day in YYYY-MM-DD form, empty while the match is
	// generated but not yet scheduled. Time is optional (HH:MM).
	Date string  `json:"date" db:"date"`
	Time *string `json:"time,omitempty" db:"time"`

	// Giornata tags which generated round the match belongs to.
	// Nil (or 0) means the match was created by hand, outside a schedule.
	Giornata *int `json:"giornata,omitempty" db:"giornata"`

	Sets      []MatchSet `json:"sets" db:"sets"`
	Completed bool       `json:"completed" db:"completed"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
