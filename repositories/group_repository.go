package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/padeltour/tournament-server/models"
)

var (
	ErrGroupNotFound    = errors.New("group not found")
	ErrGroupTeamInvalid = errors.New("group references an unknown team")
)

type GroupRepository interface {
	Create(ctx context.Context, exec SQLExecutor, group *models.Group) error
	GetByID(ctx context.Context, id int) (*models.Group, error)
	List(ctx context.Context) ([]*models.Group, error)
	Update(ctx context.Context, exec SQLExecutor, group *models.Group) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
	SetTeams(ctx context.Context, exec SQLExecutor, groupID int, teamIDs []int) error
	RemoveTeamFromAll(ctx context.Context, exec SQLExecutor, teamID int) error
}

type postgresGroupRepository struct {
	db *sql.DB
}

func NewPostgresGroupRepository(db *sql.DB) GroupRepository {
	return &postgresGroupRepository{db: db}
}

const groupSelect = `
	SELECT g.id, g.name, g.created_at,
	       COALESCE(ARRAY_AGG(gt.team_id) FILTER (WHERE gt.team_id IS NOT NULL), '{}') AS team_ids
	FROM groups g
	LEFT JOIN group_teams gt ON gt.group_id = g.id`

func (r *postgresGroupRepository) Create(ctx context.Context, exec SQLExecutor, group *models.Group) error {
	query := `
		INSERT INTO groups (name)
		VALUES ($1)
		RETURNING id, created_at`

	return exec.QueryRowContext(ctx, query, group.Name).Scan(&group.ID, &group.CreatedAt)
}

func (r *postgresGroupRepository) GetByID(ctx context.Context, id int) (*models.Group, error) {
	query := groupSelect + `
	WHERE g.id = $1
	GROUP BY g.id`

	group, err := r.scanGroup(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to scan group by id %d: %w", id, err)
	}
	return group, nil
}

func (r *postgresGroupRepository) List(ctx context.Context) ([]*models.Group, error) {
	query := groupSelect + `
	GROUP BY g.id
	ORDER BY g.name ASC, g.id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	groups := make([]*models.Group, 0)
	for rows.Next() {
		group, scanErr := r.scanGroup(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", scanErr)
		}
		groups = append(groups, group)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during group rows iteration: %w", err)
	}
	return groups, nil
}

func (r *postgresGroupRepository) scanGroup(scanner interface{ Scan(...interface{}) error }) (*models.Group, error) {
	var group models.Group
	var teamIDs pq.Int64Array
	if err := scanner.Scan(&group.ID, &group.Name, &group.CreatedAt, &teamIDs); err != nil {
		return nil, err
	}
	group.TeamIDs = make([]int, 0, len(teamIDs))
	for _, id := range teamIDs {
		group.TeamIDs = append(group.TeamIDs, int(id))
	}
	return &group, nil
}

func (r *postgresGroupRepository) Update(ctx context.Context, exec SQLExecutor, group *models.Group) error {
	query := `UPDATE groups SET name = $1 WHERE id = $2`
	result, err := exec.ExecContext(ctx, query, group.Name, group.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGroupNotFound)
}

func (r *postgresGroupRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	query := `DELETE FROM groups WHERE id = $1`
	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGroupNotFound)
}

func (r *postgresGroupRepository) SetTeams(ctx context.Context, exec SQLExecutor, groupID int, teamIDs []int) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM group_teams WHERE group_id = $1`, groupID); err != nil {
		return fmt.Errorf("failed to clear team links for group %d: %w", groupID, err)
	}
	for _, teamID := range teamIDs {
		_, err := exec.ExecContext(ctx,
			`INSERT INTO group_teams (group_id, team_id) VALUES ($1, $2)`,
			groupID, teamID,
		)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == "group_teams_team_id_fkey" {
				return ErrGroupTeamInvalid
			}
			return fmt.Errorf("failed to link team %d to group %d: %w", teamID, groupID, err)
		}
	}
	return nil
}

func (r *postgresGroupRepository) RemoveTeamFromAll(ctx context.Context, exec SQLExecutor, teamID int) error {
	_, err := exec.ExecContext(ctx, `DELETE FROM group_teams WHERE team_id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("failed to unlink team %d from groups: %w", teamID, err)
	}
	return nil
}
