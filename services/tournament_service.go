package services

import (
	"context"

	"github.com/padeltour/tournament-server/models"
	"golang.org/x/sync/errgroup"
)

// TournamentService assembles the full public snapshot: teams, groups,
// matches and bracket, fetched concurrently.
type TournamentService interface {
	GetOverview(ctx context.Context) (*models.Overview, error)
}

type tournamentService struct {
	teams   TeamService
	groups  GroupService
	matches MatchService
	bracket BracketService
}

func NewTournamentService(
	teams TeamService,
	groups GroupService,
	matches MatchService,
	bracket BracketService,
) TournamentService {
	return &tournamentService{
		teams:   teams,
		groups:  groups,
		matches: matches,
		bracket: bracket,
	}
}

func (s *tournamentService) GetOverview(ctx context.Context) (*models.Overview, error) {
	overview := &models.Overview{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		teams, err := s.teams.ListTeams(gCtx, "")
		if err != nil {
			return err
		}
		overview.Teams = teams
		return nil
	})
	g.Go(func() error {
		groups, err := s.groups.ListGroups(gCtx)
		if err != nil {
			return err
		}
		overview.Groups = groups
		return nil
	})
	g.Go(func() error {
		matches, err := s.matches.ListMatches(gCtx, nil)
		if err != nil {
			return err
		}
		overview.Matches = matches
		return nil
	})
	g.Go(func() error {
		bracket, err := s.bracket.GetBracket(gCtx)
		if err != nil {
			return err
		}
		overview.Bracket = bracket
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}
