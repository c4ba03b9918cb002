package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/padeltour/tournament-server/models"
)

var ErrBracketSlotNotFound = errors.New("bracket slot not found")

type BracketRepository interface {
	ListSlots(ctx context.Context) ([]*models.BracketSlot, error)
	UpdateSlot(ctx context.Context, exec SQLExecutor, slot *models.BracketSlot) error
	ReplaceAll(ctx context.Context, exec SQLExecutor, slots []*models.BracketSlot) error
}

type postgresBracketRepository struct {
	db *sql.DB
}

func NewPostgresBracketRepository(db *sql.DB) BracketRepository {
	return &postgresBracketRepository{db: db}
}

func (r *postgresBracketRepository) ListSlots(ctx context.Context) ([]*models.BracketSlot, error) {
	query := `
		SELECT uid, round, position, team1_id, team2_id, winner_id
		FROM bracket_slots
		ORDER BY CASE round
		    WHEN 'quarter' THEN 1
		    WHEN 'semi' THEN 2
		    ELSE 3
		END, position ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bracket slots: %w", err)
	}
	defer rows.Close()

	slots := make([]*models.BracketSlot, 0, 7)
	for rows.Next() {
		var slot models.BracketSlot
		if scanErr := rows.Scan(
			&slot.UID,
			&slot.Round,
			&slot.Position,
			&slot.Team1ID,
			&slot.Team2ID,
			&slot.WinnerID,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan bracket slot row: %w", scanErr)
		}
		slots = append(slots, &slot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during bracket slot rows iteration: %w", err)
	}
	return slots, nil
}

func (r *postgresBracketRepository) UpdateSlot(ctx context.Context, exec SQLExecutor, slot *models.BracketSlot) error {
	query := `
		UPDATE bracket_slots
		SET team1_id = $1, team2_id = $2, winner_id = $3
		WHERE uid = $4`

	result, err := exec.ExecContext(ctx, query, slot.Team1ID, slot.Team2ID, slot.WinnerID, slot.UID)
	if err != nil {
		return fmt.Errorf("failed to update bracket slot %s: %w", slot.UID, err)
	}
	return checkAffectedRows(result, ErrBracketSlotNotFound)
}

// ReplaceAll rewrites the whole 7-row bracket, used on first initialization
// and on reset.
func (r *postgresBracketRepository) ReplaceAll(ctx context.Context, exec SQLExecutor, slots []*models.BracketSlot) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM bracket_slots`); err != nil {
		return fmt.Errorf("failed to clear bracket slots: %w", err)
	}
	for _, slot := range slots {
		_, err := exec.ExecContext(ctx,
			`INSERT INTO bracket_slots (uid, round, position, team1_id, team2_id, winner_id)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			slot.UID, slot.Round, slot.Position, slot.Team1ID, slot.Team2ID, slot.WinnerID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert bracket slot %s: %w", slot.UID, err)
		}
	}
	return nil
}
