package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/padeltour/tournament-server/models"
)

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrMatchGroupInvalid = errors.New("match group conflict or invalid")
	ErrMatchTeamInvalid  = errors.New("match team conflict or invalid")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	List(ctx context.Context, groupID *int) ([]*models.Match, error)
	UpdateResult(ctx context.Context, id int, sets []models.MatchSet, completed bool, date *string, time *string) error
	Delete(ctx context.Context, id int) error
	DeleteByTeam(ctx context.Context, exec SQLExecutor, teamID int) error
	DeleteByGroup(ctx context.Context, exec SQLExecutor, groupID int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	setsJSON, err := json.Marshal(match.Sets)
	if err != nil {
		return fmt.Errorf("failed to marshal match sets: %w", err)
	}

	query := `
		INSERT INTO matches (group_id, team1_id, team2_id, date, time, giornata, sets, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err = exec.QueryRowContext(ctx, query,
		match.GroupID,
		match.Team1ID,
		match.Team2ID,
		match.Date,
		match.Time,
		match.Giornata,
		setsJSON,
		match.Completed,
	).Scan(&match.ID, &match.CreatedAt)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `
		SELECT id, group_id, team1_id, team2_id, date, time, giornata, sets, completed, created_at
		FROM matches
		WHERE id = $1`

	match, err := r.scanMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return match, nil
}

func (r *postgresMatchRepository) List(ctx context.Context, groupID *int) ([]*models.Match, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, group_id, team1_id, team2_id, date, time, giornata, sets, completed, created_at
		FROM matches`)

	args := []interface{}{}
	if groupID != nil {
		queryBuilder.WriteString(" WHERE group_id = $")
		queryBuilder.WriteString(strconv.Itoa(len(args) + 1))
		args = append(args, *groupID)
	}
	queryBuilder.WriteString(" ORDER BY giornata ASC NULLS LAST, date ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		match, scanErr := r.scanMatch(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, match)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) scanMatch(scanner interface{ Scan(...interface{}) error }) (*models.Match, error) {
	var match models.Match
	var setsJSON []byte
	err := scanner.Scan(
		&match.ID,
		&match.GroupID,
		&match.Team1ID,
		&match.Team2ID,
		&match.Date,
		&match.Time,
		&match.Giornata,
		&setsJSON,
		&match.Completed,
		&match.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	match.Sets = []models.MatchSet{}
	if len(setsJSON) > 0 {
		if err := json.Unmarshal(setsJSON, &match.Sets); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sets for match %d: %w", match.ID, err)
		}
	}
	return &match, nil
}

func (r *postgresMatchRepository) UpdateResult(ctx context.Context, id int, sets []models.MatchSet, completed bool, date *string, matchTime *string) error {
	setsJSON, err := json.Marshal(sets)
	if err != nil {
		return fmt.Errorf("failed to marshal match sets: %w", err)
	}

	query := `
		UPDATE matches
		SET sets = $1,
		    completed = $2,
		    date = COALESCE($3, date),
		    time = COALESCE($4, time)
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query, setsJSON, completed, date, matchTime, id)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM matches WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) DeleteByTeam(ctx context.Context, exec SQLExecutor, teamID int) error {
	query := `DELETE FROM matches WHERE team1_id = $1 OR team2_id = $1`
	_, err := exec.ExecContext(ctx, query, teamID)
	if err != nil {
		return fmt.Errorf("failed to delete matches for team %d: %w", teamID, err)
	}
	return nil
}

func (r *postgresMatchRepository) DeleteByGroup(ctx context.Context, exec SQLExecutor, groupID int) error {
	query := `DELETE FROM matches WHERE group_id = $1`
	_, err := exec.ExecContext(ctx, query, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete matches for group %d: %w", groupID, err)
	}
	return nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		// "23503": foreign_key_violation
		switch pqErr.Constraint {
		case "matches_group_id_fkey":
			return ErrMatchGroupInvalid
		case "matches_team1_id_fkey", "matches_team2_id_fkey":
			return ErrMatchTeamInvalid
		}
	}
	return err
}
