package models

type BracketRound string

const (
	BracketRoundQuarter BracketRound = "quarter"
	BracketRoundSemi    BracketRound = "semi"
	BracketRoundFinal   BracketRound = "final"
)

// BracketSlot is one node of the fixed 8-team single elimination tree:
// four quarterfinals (position 0-3), two semifinals (0-1) and one final (0).
// The UID is derived from round and position, e.g. "quarter-2".
// Invariant: WinnerID, when set, equals Team1ID or Team2ID.
type BracketSlot struct {
	UID      string       `json:"id" db:"uid"`
	Round    BracketRound `json:"round" db:"round"`
	Position int          `json:"position" db:"position"`
	Team1ID  *int         `json:"team1_id" db:"team1_id"`
	Team2ID  *int         `json:"team2_id" db:"team2_id"`
	WinnerID *int         `json:"winner_id" db:"winner_id"`
}
