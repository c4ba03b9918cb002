package models

type Player struct {
	ID     int    `json:"id" db:"id"`
	TeamID int    `json:"team_id" db:"team_id"`
	Name   string `json:"name" db:"name"`
}
