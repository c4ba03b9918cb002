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
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name already exists")
)

type TeamRepository interface {
	Create(ctx context.Context, exec SQLExecutor, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
	Update(ctx context.Context, exec SQLExecutor, team *models.Team) error
	UpdateLogoKey(ctx context.Context, id int, logoKey *string) error
	Delete(ctx context.Context, exec SQLExecutor, id int) error
	ReplacePlayers(ctx context.Context, exec SQLExecutor, teamID int, players []models.Player) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, exec SQLExecutor, team *models.Team) error {
	query := `
		INSERT INTO teams (name)
		VALUES ($1)
		RETURNING id, created_at`

	err := exec.QueryRowContext(ctx, query, team.Name).Scan(&team.ID, &team.CreatedAt)
	return r.handleTeamError(err)
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `
		SELECT id, name, logo_key, created_at
		FROM teams
		WHERE id = $1`

	team := &models.Team{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&team.ID, &team.Name, &team.LogoKey, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to scan team by id %d: %w", id, err)
	}

	players, err := r.listPlayers(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	team.Players = players[id]
	if team.Players == nil {
		team.Players = []models.Player{}
	}
	return team, nil
}

func (r *postgresTeamRepository) List(ctx context.Context) ([]*models.Team, error) {
	query := `
		SELECT id, name, logo_key, created_at
		FROM teams
		ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	ids := make([]int, 0)
	for rows.Next() {
		var team models.Team
		if scanErr := rows.Scan(&team.ID, &team.Name, &team.LogoKey, &team.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", scanErr)
		}
		team.Players = []models.Player{}
		teams = append(teams, &team)
		ids = append(ids, team.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during team rows iteration: %w", err)
	}

	if len(ids) == 0 {
		return teams, nil
	}
	playersByTeam, err := r.listPlayers(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, team := range teams {
		if players, ok := playersByTeam[team.ID]; ok {
			team.Players = players
		}
	}
	return teams, nil
}

func (r *postgresTeamRepository) listPlayers(ctx context.Context, teamIDs []int) (map[int][]models.Player, error) {
	query := `
		SELECT id, team_id, name
		FROM players
		WHERE team_id = ANY($1)
		ORDER BY team_id ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(teamIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	playersByTeam := make(map[int][]models.Player)
	for rows.Next() {
		var player models.Player
		if scanErr := rows.Scan(&player.ID, &player.TeamID, &player.Name); scanErr != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", scanErr)
		}
		playersByTeam[player.TeamID] = append(playersByTeam[player.TeamID], player)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during player rows iteration: %w", err)
	}
	return playersByTeam, nil
}

func (r *postgresTeamRepository) Update(ctx context.Context, exec SQLExecutor, team *models.Team) error {
	query := `UPDATE teams SET name = $1 WHERE id = $2`
	result, err := exec.ExecContext(ctx, query, team.Name, team.ID)
	if err != nil {
		return r.handleTeamError(err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	query := `UPDATE teams SET logo_key = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, logoKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, exec SQLExecutor, id int) error {
	query := `DELETE FROM teams WHERE id = $1`
	result, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) ReplacePlayers(ctx context.Context, exec SQLExecutor, teamID int, players []models.Player) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM players WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("failed to clear players for team %d: %w", teamID, err)
	}
	for i := range players {
		err := exec.QueryRowContext(ctx,
			`INSERT INTO players (team_id, name) VALUES ($1, $2) RETURNING id`,
			teamID, players[i].Name,
		).Scan(&players[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert player for team %d: %w", teamID, err)
		}
		players[i].TeamID = teamID
	}
	return nil
}

func (r *postgresTeamRepository) handleTeamError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		// "23505": unique_violation
		if pqErr.Constraint == "teams_name_key" {
			return ErrTeamNameConflict
		}
	}
	return err
}
