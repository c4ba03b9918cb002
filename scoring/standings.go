package scoring

import (
	"sort"

	"github.com/padeltour/tournament-server/models"
)

// Points awarded per match. A straight-set win is worth more than a win
// that needed the super tiebreak.
const (
	pointsStraightWin  = 3 // 2-0 winner
	pointsTiebreakWin  = 2 // 2-1 winner
	pointsTiebreakLoss = 1 // 2-1 loser
	pointsStraightLoss = 0 // 2-0 loser
)

// CalculateStandings builds the ranked table for one group from its
// completed matches. A team appears in the table as soon as it has at least
// one scheduled match in the group, regardless of group membership records.
// Matches referencing a team id with no Team entity still produce a row,
// only the name stays empty.
//
// Ranking: points desc, then set difference desc, then game difference desc.
// Teams equal on all three keep a stable team-id order.
func CalculateStandings(matches []*models.Match, teams []*models.Team, groupID int) []models.Standing {
	namesByID := make(map[int]string, len(teams))
	for _, team := range teams {
		namesByID[team.ID] = team.Name
	}

	groupMatches := make([]*models.Match, 0, len(matches))
	table := make(map[int]*models.Standing)
	for _, match := range matches {
		if match.GroupID != groupID {
			continue
		}
		groupMatches = append(groupMatches, match)
		for _, teamID := range []int{match.Team1ID, match.Team2ID} {
			if _, ok := table[teamID]; !ok {
				table[teamID] = &models.Standing{
					TeamID:   teamID,
					TeamName: namesByID[teamID],
				}
			}
		}
	}

	for _, match := range groupMatches {
		if !match.Completed {
			continue
		}

		team1Sets, team2Sets := setWins(match.Sets)
		team1Won := team1Sets > team2Sets

		var team1Points, team2Points int
		if team1Won {
			if team2Sets == 0 {
				team1Points, team2Points = pointsStraightWin, pointsStraightLoss
			} else {
				team1Points, team2Points = pointsTiebreakWin, pointsTiebreakLoss
			}
		} else {
			if team1Sets == 0 {
				team1Points, team2Points = pointsStraightLoss, pointsStraightWin
			} else {
				team1Points, team2Points = pointsTiebreakLoss, pointsTiebreakWin
			}
		}

		var team1Games, team2Games int
		for i, set := range match.Sets {
			if i == SuperTiebreakIndex {
				// The super tiebreak counts as 7-6 so it weighs like a
				// regular set in the game difference.
				if set.Team1Score > set.Team2Score {
					team1Games += 7
					team2Games += 6
				} else {
					team1Games += 6
					team2Games += 7
				}
				continue
			}
			team1Games += set.Team1Score
			team2Games += set.Team2Score
		}

		row1 := table[match.Team1ID]
		row1.Played++
		row1.SetsWon += team1Sets
		row1.SetsLost += team2Sets
		row1.GamesWon += team1Games
		row1.GamesLost += team2Games
		row1.Points += team1Points

		row2 := table[match.Team2ID]
		row2.Played++
		row2.SetsWon += team2Sets
		row2.SetsLost += team1Sets
		row2.GamesWon += team2Games
		row2.GamesLost += team1Games
		row2.Points += team2Points

		if team1Won {
			row1.Wins++
			row2.Losses++
		} else {
			row1.Losses++
			row2.Wins++
		}
	}

	standings := make([]models.Standing, 0, len(table))
	for _, row := range table {
		row.SetDifference = row.SetsWon - row.SetsLost
		row.GameDifference = row.GamesWon - row.GamesLost
		standings = append(standings, *row)
	}

	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.SetDifference != b.SetDifference {
			return a.SetDifference > b.SetDifference
		}
		if a.GameDifference != b.GameDifference {
			return a.GameDifference > b.GameDifference
		}
		return a.TeamID < b.TeamID
	})

	return standings
}
