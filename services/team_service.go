package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/padeltour/tournament-server/models"
	"github.com/padeltour/tournament-server/repositories"
	"github.com/padeltour/tournament-server/storage"
)

type TeamService interface {
	CreateTeam(ctx context.Context, input TeamInput) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	ListTeams(ctx context.Context, search string) ([]*models.Team, error)
	UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int) error
	UploadLogo(ctx context.Context, teamID int, contentType string, file io.Reader) (*models.Team, error)
}

type TeamInput struct {
	Name    string   `json:"name"`
	Players []string `json:"players"`
}

type teamService struct {
	db        *sql.DB
	teamRepo  repositories.TeamRepository
	groupRepo repositories.GroupRepository
	matchRepo repositories.MatchRepository
	uploader  storage.FileUploader // nil when logo storage is not configured
}

func NewTeamService(
	db *sql.DB,
	teamRepo repositories.TeamRepository,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
) TeamService {
	return &teamService{
		db:        db,
		teamRepo:  teamRepo,
		groupRepo: groupRepo,
		matchRepo: matchRepo,
		uploader:  uploader,
	}
}

func (s *teamService) CreateTeam(ctx context.Context, input TeamInput) (*models.Team, error) {
	players, err := normalizePlayers(input)
	if err != nil {
		return nil, err
	}

	team := &models.Team{Name: strings.TrimSpace(input.Name)}
	err = runInTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.teamRepo.Create(ctx, tx, team); err != nil {
			return translateTeamError(err)
		}
		return translateTeamError(s.teamRepo.ReplacePlayers(ctx, tx, team.ID, players))
	})
	if err != nil {
		return nil, err
	}
	team.Players = players
	s.resolveLogoURL(team)
	return team, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateTeamError(err)
	}
	s.resolveLogoURL(team)
	return team, nil
}

// ListTeams returns all teams, fuzzy-filtered and ranked by name when a
// search term is given.
func (s *teamService) ListTeams(ctx context.Context, search string) ([]*models.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, translateTeamError(err)
	}
	for _, team := range teams {
		s.resolveLogoURL(team)
	}

	search = strings.TrimSpace(search)
	if search == "" {
		return teams, nil
	}

	type rankedTeam struct {
		team *models.Team
		rank int
	}
	ranked := make([]rankedTeam, 0, len(teams))
	for _, team := range teams {
		rank := fuzzy.RankMatchNormalizedFold(search, team.Name)
		if rank < 0 {
			continue
		}
		ranked = append(ranked, rankedTeam{team: team, rank: rank})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].rank < ranked[j].rank })

	result := make([]*models.Team, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.team)
	}
	return result, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error) {
	players, err := normalizePlayers(input)
	if err != nil {
		return nil, err
	}

	err = runInTx(ctx, s.db, func(tx *sql.Tx) error {
		team := &models.Team{ID: id, Name: strings.TrimSpace(input.Name)}
		if err := s.teamRepo.Update(ctx, tx, team); err != nil {
			return translateTeamError(err)
		}
		return translateTeamError(s.teamRepo.ReplacePlayers(ctx, tx, id, players))
	})
	if err != nil {
		return nil, err
	}
	return s.GetTeamByID(ctx, id)
}

// DeleteTeam removes the team and everything hanging off it: group links,
// matches on either side, players (via FK cascade). One transaction, the
// store never sees a half-removed team.
func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return translateTeamError(err)
	}

	err = runInTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.matchRepo.DeleteByTeam(ctx, tx, id); err != nil {
			return storeError(err)
		}
		if err := s.groupRepo.RemoveTeamFromAll(ctx, tx, id); err != nil {
			return storeError(err)
		}
		return translateTeamError(s.teamRepo.Delete(ctx, tx, id))
	})
	if err != nil {
		return err
	}

	if s.uploader != nil && team.LogoKey != nil {
		if err := s.uploader.Delete(ctx, *team.LogoKey); err != nil {
			// The record is gone; an orphaned object is not worth failing over.
			fmt.Printf("failed to delete logo %s for team %d: %v\n", *team.LogoKey, id, err)
		}
	}
	return nil
}

var allowedLogoTypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

func (s *teamService) UploadLogo(ctx context.Context, teamID int, contentType string, file io.Reader) (*models.Team, error) {
	if s.uploader == nil {
		return nil, ErrLogoUploadDisabled
	}
	ext, ok := allowedLogoTypes[contentType]
	if !ok {
		return nil, ErrUnsupportedLogoType
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, translateTeamError(err)
	}

	key := fmt.Sprintf("teams/%d/logo.%s", teamID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, storeError(err)
	}
	if err := s.teamRepo.UpdateLogoKey(ctx, teamID, &result.Key); err != nil {
		return nil, translateTeamError(err)
	}

	team.LogoKey = &result.Key
	s.resolveLogoURL(team)
	return team, nil
}

func (s *teamService) resolveLogoURL(team *models.Team) {
	if s.uploader == nil || team.LogoKey == nil {
		return
	}
	url := s.uploader.GetPublicURL(*team.LogoKey)
	if url != "" {
		team.LogoURL = &url
	}
}

func normalizePlayers(input TeamInput) ([]models.Player, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTeamNameRequired
	}
	players := make([]models.Player, 0, len(input.Players))
	for _, name := range input.Players {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		players = append(players, models.Player{Name: name})
	}
	return players, nil
}
