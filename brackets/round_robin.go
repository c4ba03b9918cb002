// Package brackets contains the fixture generators and the fixed single
// elimination bracket for the tournament: a circle-method round robin
// scheduler for the group phase and a 7-slot knockout tree.
package brackets

import "errors"

// ErrInsufficientTeams is returned when a schedule is requested for fewer
// than two teams.
var ErrInsufficientTeams = errors.New("at least 2 teams are required to generate a schedule")

// Pairing is one fixture between two teams.
type Pairing struct {
	Team1ID int
	Team2ID int
}

// Round ("giornata") is the set of pairings played in one scheduling round.
type Round []Pairing

// byeTeamID pads an odd team list so the rotation works on an even length.
// Real team ids are positive, so 0 can never collide.
const byeTeamID = 0

// GenerateSchedule produces a full single round robin for the given teams,
// partitioned into rounds with the circle method: the first team stays
// fixed, everyone else rotates one position per round. The team idle against
// the bye placeholder simply sits the round out.
//
// For an even team count n this yields n-1 rounds of n/2 pairings each; for
// odd n, n rounds of (n-1)/2 pairings.
func GenerateSchedule(teamIDs []int) ([]Round, error) {
	if len(teamIDs) < 2 {
		return nil, ErrInsufficientTeams
	}

	// The round count comes from the original team count, before padding.
	numRounds := len(teamIDs)
	if len(teamIDs)%2 == 0 {
		numRounds = len(teamIDs) - 1
	}

	rotation := make([]int, len(teamIDs))
	copy(rotation, teamIDs)
	if len(rotation)%2 != 0 {
		rotation = append(rotation, byeTeamID)
	}

	rounds := make([]Round, 0, numRounds)
	for r := 0; r < numRounds; r++ {
		round := make(Round, 0, len(rotation)/2)
		for i := 0; i < len(rotation)/2; i++ {
			team1 := rotation[i]
			team2 := rotation[len(rotation)-1-i]
			if team1 == byeTeamID || team2 == byeTeamID {
				continue
			}
			round = append(round, Pairing{Team1ID: team1, Team2ID: team2})
		}
		rounds = append(rounds, round)

		// Rotate: last element moves to position 1, position 0 stays fixed.
		last := rotation[len(rotation)-1]
		copy(rotation[2:], rotation[1:len(rotation)-1])
		rotation[1] = last
	}

	return rounds, nil
}

// SamePairing reports whether the two fixtures involve the same two teams,
// ignoring side order. Used to skip pairings that already exist as matches.
func SamePairing(a1, a2, b1, b2 int) bool {
	return (a1 == b1 && a2 == b2) || (a1 == b2 && a2 == b1)
}
