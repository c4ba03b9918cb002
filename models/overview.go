package models

// Overview bundles the whole tournament state for the public landing page.
type Overview struct {
	Teams   []*Team        `json:"teams"`
	Groups  []*Group       `json:"groups"`
	Matches []*Match       `json:"matches"`
	Bracket []*BracketSlot `json:"bracket"`
}
