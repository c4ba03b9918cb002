package services

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/padeltour/tournament-server/brackets"
	"github.com/padeltour/tournament-server/models"
	"github.com/padeltour/tournament-server/repositories"
)

type BracketService interface {
	GetBracket(ctx context.Context) ([]*models.BracketSlot, error)
	UpdateSlot(ctx context.Context, uid string, input UpdateSlotInput) ([]*models.BracketSlot, error)
	ResetBracket(ctx context.Context) ([]*models.BracketSlot, error)
}

// UpdateSlotInput carries the fields to overwrite on a slot. Nil leaves a
// field untouched; explicit clearing goes through ResetBracket.
type UpdateSlotInput struct {
	Team1ID  *int `json:"team1_id,omitempty"`
	Team2ID  *int `json:"team2_id,omitempty"`
	WinnerID *int `json:"winner_id,omitempty"`
}

type bracketService struct {
	db          *sql.DB
	bracketRepo repositories.BracketRepository
	hub         *brackets.Hub
	logger      *slog.Logger
}

func NewBracketService(
	db *sql.DB,
	bracketRepo repositories.BracketRepository,
	hub *brackets.Hub,
	logger *slog.Logger,
) BracketService {
	return &bracketService{
		db:          db,
		bracketRepo: bracketRepo,
		hub:         hub,
		logger:      logger,
	}
}

// GetBracket returns the 7 slots, seeding the empty structure on first
// access so the bracket always exists.
func (s *bracketService) GetBracket(ctx context.Context) ([]*models.BracketSlot, error) {
	slots, err := s.bracketRepo.ListSlots(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	if len(slots) == brackets.SlotCount {
		return slots, nil
	}

	slots = brackets.NewBracket()
	err = runInTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.bracketRepo.ReplaceAll(ctx, tx, slots)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("bracket initialized", slog.Int("slots", len(slots)))
	return slots, nil
}

// UpdateSlot applies the given team/winner changes to one slot and, when a
// winner is set, propagates it into the slot it feeds. The propagation works
// on the snapshot read here; it is forward-only and never clears state
// deeper than the directly fed slot, the admin resolves deeper
// inconsistencies by hand.
func (s *bracketService) UpdateSlot(ctx context.Context, uid string, input UpdateSlotInput) ([]*models.BracketSlot, error) {
	slots, err := s.GetBracket(ctx)
	if err != nil {
		return nil, err
	}

	slot := brackets.FindSlot(slots, uid)
	if slot == nil {
		return nil, ErrBracketSlotNotFound
	}

	if input.Team1ID != nil {
		slot.Team1ID = input.Team1ID
	}
	if input.Team2ID != nil {
		slot.Team2ID = input.Team2ID
	}
	if input.WinnerID != nil {
		winner := *input.WinnerID
		if !teamInSlot(slot, winner) {
			return nil, ErrWinnerNotInSlot
		}
		slot.WinnerID = &winner
	}

	changed := []*models.BracketSlot{slot}
	if input.WinnerID != nil {
		if next := brackets.Propagate(slots, slot); next != nil {
			changed = append(changed, next)
		}
	}

	err = runInTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, c := range changed {
			if err := s.bracketRepo.UpdateSlot(ctx, tx, c); err != nil {
				return storeError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastEvent(brackets.Event{Type: brackets.EventBracketUpdated, Payload: slots})
	}
	return slots, nil
}

func (s *bracketService) ResetBracket(ctx context.Context) ([]*models.BracketSlot, error) {
	slots := brackets.NewBracket()
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		return s.bracketRepo.ReplaceAll(ctx, tx, slots)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("bracket reset")
	if s.hub != nil {
		s.hub.BroadcastEvent(brackets.Event{Type: brackets.EventBracketUpdated, Payload: slots})
	}
	return slots, nil
}

func teamInSlot(slot *models.BracketSlot, teamID int) bool {
	if slot.Team1ID != nil && *slot.Team1ID == teamID {
		return true
	}
	return slot.Team2ID != nil && *slot.Team2ID == teamID
}
