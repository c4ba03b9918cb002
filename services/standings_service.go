package services

import (
	"context"

	"github.com/padeltour/tournament-server/models"
	"github.com/padeltour/tournament-server/repositories"
	"github.com/padeltour/tournament-server/scoring"
)

// StandingsService recomputes group tables on demand; nothing is cached or
// persisted, the table is always derived from the store's current matches.
type StandingsService interface {
	GroupStandings(ctx context.Context, groupID int) ([]models.Standing, error)
}

type standingsService struct {
	groupRepo repositories.GroupRepository
	matchRepo repositories.MatchRepository
	teamRepo  repositories.TeamRepository
}

func NewStandingsService(
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
) StandingsService {
	return &standingsService{
		groupRepo: groupRepo,
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
	}
}

func (s *standingsService) GroupStandings(ctx context.Context, groupID int) ([]models.Standing, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, translateGroupError(err)
	}

	matches, err := s.matchRepo.List(ctx, &groupID)
	if err != nil {
		return nil, translateMatchError(err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, translateTeamError(err)
	}

	return scoring.CalculateStandings(matches, teams, groupID), nil
}
