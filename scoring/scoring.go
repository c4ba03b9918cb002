// Package scoring holds the padel rule functions: set score legality,
// match completion and the standings calculation. Everything here is pure,
// persistence and transport live elsewhere.
package scoring

import "github.com/padeltour/tournament-server/models"

// SuperTiebreakIndex is the set index played as a super tiebreak instead of
// a regular set.
const SuperTiebreakIndex = 2

// ValidateSetScore reports whether score1/score2 is a legal final score for
// the set at setIndex.
//
// Regular sets (index 0 and 1): legal finals are 6-0 .. 6-4, 7-5 and 7-6.
// Third set (super tiebreak): first to 10 with a margin of at least 2,
// capped at 22-20.
func ValidateSetScore(score1, score2, setIndex int) bool {
	maxScore, minScore := score1, score2
	if minScore > maxScore {
		maxScore, minScore = minScore, maxScore
	}

	if setIndex == SuperTiebreakIndex {
		if maxScore < 10 || maxScore > 22 {
			return false
		}
		if minScore < 0 || minScore > 20 {
			return false
		}
		if maxScore-minScore < 2 {
			return false
		}
		if maxScore == 22 && minScore != 20 {
			return false
		}
		return true
	}

	if maxScore < 6 || maxScore > 7 {
		return false
	}
	if minScore < 0 || minScore > 6 {
		return false
	}
	if maxScore == 6 && minScore == 6 {
		return false // 6-6 goes to a tiebreak, final score is 7-6
	}
	if maxScore == 6 && minScore == 5 {
		return false // play continues to 7-5 or a tiebreak
	}
	if maxScore == 7 && minScore < 5 {
		return false
	}
	return true
}

// IsMatchComplete reports whether sets describe a finished best-of-three
// match. Every set must be a legal final score at its index; a single
// invalid set makes the whole sequence incomplete.
func IsMatchComplete(sets []models.MatchSet) bool {
	if len(sets) == 0 {
		return false
	}

	team1Sets, team2Sets := 0, 0
	for i, set := range sets {
		if !ValidateSetScore(set.Team1Score, set.Team2Score, i) {
			return false
		}
		if set.Team1Score > set.Team2Score {
			team1Sets++
		} else {
			team2Sets++
		}
	}

	return team1Sets == 2 || team2Sets == 2
}

// MatchWinner returns 1 or 2 for the side that won two sets, or 0 when the
// match is not decided. Set legality is not checked here, callers validate
// with IsMatchComplete first.
func MatchWinner(sets []models.MatchSet) int {
	team1Sets, team2Sets := setWins(sets)
	switch {
	case team1Sets == 2:
		return 1
	case team2Sets == 2:
		return 2
	default:
		return 0
	}
}

func setWins(sets []models.MatchSet) (team1Sets, team2Sets int) {
	for _, set := range sets {
		if set.Team1Score > set.Team2Score {
			team1Sets++
		} else {
			team2Sets++
		}
	}
	return team1Sets, team2Sets
}
