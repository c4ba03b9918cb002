package models

// Standing is one row of a group table. It is derived from the group's
// completed matches on every read and never persisted.
type Standing struct {
	TeamID         int    `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	SetsWon        int    `json:"sets_won"`
	SetsLost       int    `json:"sets_lost"`
	SetDifference  int    `json:"set_difference"`
	GamesWon       int    `json:"games_won"`
	GamesLost      int    `json:"games_lost"`
	GameDifference int    `json:"game_difference"`
	Points         int    `json:"points"`
}
