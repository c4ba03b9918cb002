package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/padeltour/tournament-server/models"
	"github.com/padeltour/tournament-server/repositories"
)

type GroupService interface {
	CreateGroup(ctx context.Context, input GroupInput) (*models.Group, error)
	GetGroupByID(ctx context.Context, id int) (*models.Group, error)
	ListGroups(ctx context.Context) ([]*models.Group, error)
	UpdateGroup(ctx context.Context, id int, input GroupInput) (*models.Group, error)
	DeleteGroup(ctx context.Context, id int) error
}

type GroupInput struct {
	Name    string `json:"name"`
	TeamIDs []int  `json:"team_ids"`
}

type groupService struct {
	db        *sql.DB
	groupRepo repositories.GroupRepository
	matchRepo repositories.MatchRepository
}

func NewGroupService(
	db *sql.DB,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
) GroupService {
	return &groupService{
		db:        db,
		groupRepo: groupRepo,
		matchRepo: matchRepo,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, input GroupInput) (*models.Group, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrGroupNameRequired
	}

	group := &models.Group{Name: strings.TrimSpace(input.Name)}
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.groupRepo.Create(ctx, tx, group); err != nil {
			return translateGroupError(err)
		}
		return translateGroupError(s.groupRepo.SetTeams(ctx, tx, group.ID, input.TeamIDs))
	})
	if err != nil {
		return nil, err
	}
	group.TeamIDs = input.TeamIDs
	if group.TeamIDs == nil {
		group.TeamIDs = []int{}
	}
	return group, nil
}

func (s *groupService) GetGroupByID(ctx context.Context, id int) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateGroupError(err)
	}
	return group, nil
}

func (s *groupService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, translateGroupError(err)
	}
	return groups, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, id int, input GroupInput) (*models.Group, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrGroupNameRequired
	}

	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		group := &models.Group{ID: id, Name: strings.TrimSpace(input.Name)}
		if err := s.groupRepo.Update(ctx, tx, group); err != nil {
			return translateGroupError(err)
		}
		return translateGroupError(s.groupRepo.SetTeams(ctx, tx, id, input.TeamIDs))
	})
	if err != nil {
		return nil, err
	}
	return s.GetGroupByID(ctx, id)
}

// DeleteGroup removes the group, its team links and every match scheduled
// in it, in one transaction.
func (s *groupService) DeleteGroup(ctx context.Context, id int) error {
	return runInTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.matchRepo.DeleteByGroup(ctx, tx, id); err != nil {
			return storeError(err)
		}
		if err := s.groupRepo.SetTeams(ctx, tx, id, nil); err != nil {
			return translateGroupError(err)
		}
		return translateGroupError(s.groupRepo.Delete(ctx, tx, id))
	})
}
