package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/padeltour/tournament-server/brackets"
	"github.com/padeltour/tournament-server/models"
	"github.com/padeltour/tournament-server/repositories"
)

// ScheduleService turns a group's team list into a round-robin calendar of
// giornate, skipping pairings that already exist as matches.
type ScheduleService interface {
	GenerateSchedule(ctx context.Context, groupID int) (*ScheduleResult, error)
}

type ScheduleResult struct {
	GroupID        int `json:"group_id"`
	Rounds         int `json:"rounds"`
	CreatedMatches int `json:"created_matches"`
	SkippedExisting int `json:"skipped_existing"`
}

type scheduleService struct {
	db        *sql.DB
	groupRepo repositories.GroupRepository
	matchRepo repositories.MatchRepository
	logger    *slog.Logger
}

func NewScheduleService(
	db *sql.DB,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	logger *slog.Logger,
) ScheduleService {
	return &scheduleService{
		db:        db,
		groupRepo: groupRepo,
		matchRepo: matchRepo,
		logger:    logger,
	}
}

func (s *scheduleService) GenerateSchedule(ctx context.Context, groupID int) (*ScheduleResult, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, translateGroupError(err)
	}

	rounds, err := brackets.GenerateSchedule(group.TeamIDs)
	if err != nil {
		if errors.Is(err, brackets.ErrInsufficientTeams) {
			return nil, ErrInsufficientTeams
		}
		return nil, err
	}

	existing, err := s.matchRepo.List(ctx, &groupID)
	if err != nil {
		return nil, translateMatchError(err)
	}

	result := &ScheduleResult{GroupID: groupID, Rounds: len(rounds)}
	err = runInTx(ctx, s.db, func(tx *sql.Tx) error {
		for roundIndex, round := range rounds {
			giornata := roundIndex + 1
			for _, pairing := range round {
				if matchExists(existing, pairing) {
					result.SkippedExisting++
					continue
				}
				match := &models.Match{
					GroupID:  groupID,
					Team1ID:  pairing.Team1ID,
					Team2ID:  pairing.Team2ID,
					Giornata: &giornata,
					Sets:     []models.MatchSet{},
				}
				if err := s.matchRepo.Create(ctx, tx, match); err != nil {
					return translateMatchError(err)
				}
				result.CreatedMatches++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("schedule generated",
		slog.Int("group_id", groupID),
		slog.Int("rounds", result.Rounds),
		slog.Int("created", result.CreatedMatches),
		slog.Int("skipped", result.SkippedExisting),
	)
	return result, nil
}

func matchExists(matches []*models.Match, pairing brackets.Pairing) bool {
	for _, match := range matches {
		if brackets.SamePairing(match.Team1ID, match.Team2ID, pairing.Team1ID, pairing.Team2ID) {
			return true
		}
	}
	return false
}
