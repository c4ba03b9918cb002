package services

import (
	"context"
	"database/sql"

	"github.com/padeltour/tournament-server/brackets"
	"github.com/padeltour/tournament-server/models"
	"github.com/padeltour/tournament-server/repositories"
	"github.com/padeltour/tournament-server/scoring"
)

type MatchService interface {
	CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	ListMatches(ctx context.Context, groupID *int) ([]*models.Match, error)
	UpdateResult(ctx context.Context, id int, input UpdateMatchInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
}

type CreateMatchInput struct {
	GroupID  int     `json:"group_id"`
	Team1ID  int     `json:"team1_id"`
	Team2ID  int     `json:"team2_id"`
	Date     string  `json:"date"`
	Time     *string `json:"time,omitempty"`
	Giornata *int    `json:"giornata,omitempty"`
}

type UpdateMatchInput struct {
	Sets []models.MatchSet `json:"sets"`
	Date *string           `json:"date,omitempty"`
	Time *string           `json:"time,omitempty"`
}

type matchService struct {
	db        *sql.DB
	matchRepo repositories.MatchRepository
	groupRepo repositories.GroupRepository
	hub       *brackets.Hub
}

func NewMatchService(
	db *sql.DB,
	matchRepo repositories.MatchRepository,
	groupRepo repositories.GroupRepository,
	hub *brackets.Hub,
) MatchService {
	return &matchService{
		db:        db,
		matchRepo: matchRepo,
		groupRepo: groupRepo,
		hub:       hub,
	}
}

func (s *matchService) CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	if input.Team1ID == input.Team2ID {
		return nil, ErrMatchSameTeam
	}
	if _, err := s.groupRepo.GetByID(ctx, input.GroupID); err != nil {
		return nil, translateGroupError(err)
	}

	match := &models.Match{
		GroupID:  input.GroupID,
		Team1ID:  input.Team1ID,
		Team2ID:  input.Team2ID,
		Date:     input.Date,
		Time:     input.Time,
		Giornata: input.Giornata,
		Sets:     []models.MatchSet{},
	}
	if err := s.matchRepo.Create(ctx, s.db, match); err != nil {
		return nil, translateMatchError(err)
	}
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context, groupID *int) ([]*models.Match, error) {
	matches, err := s.matchRepo.List(ctx, groupID)
	if err != nil {
		return nil, translateMatchError(err)
	}
	return matches, nil
}

// UpdateResult records the entered sets. Every set must be a legal final
// score at its index; the completed flag is derived from the sets with the
// same rule the standings use, so the stored flag can never drift from the
// scores.
func (s *matchService) UpdateResult(ctx context.Context, id int, input UpdateMatchInput) (*models.Match, error) {
	if _, err := s.matchRepo.GetByID(ctx, id); err != nil {
		return nil, translateMatchError(err)
	}

	sets := input.Sets
	if sets == nil {
		sets = []models.MatchSet{}
	}
	for i, set := range sets {
		if !scoring.ValidateSetScore(set.Team1Score, set.Team2Score, i) {
			return nil, ErrInvalidSetScore
		}
	}
	completed := scoring.IsMatchComplete(sets)

	if err := s.matchRepo.UpdateResult(ctx, id, sets, completed, input.Date, input.Time); err != nil {
		return nil, translateMatchError(err)
	}

	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateMatchError(err)
	}

	if s.hub != nil {
		s.hub.BroadcastEvent(brackets.Event{Type: brackets.EventMatchUpdated, Payload: match})
		if completed {
			s.hub.BroadcastEvent(brackets.Event{Type: brackets.EventStandingsUpdated, Payload: map[string]int{"group_id": match.GroupID}})
		}
	}
	return match, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	return translateMatchError(s.matchRepo.Delete(ctx, id))
}
