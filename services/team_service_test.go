package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padeltour/tournament-server/models"
)

func newTeamServiceForTest(teamRepo *fakeTeamRepo) TeamService {
	return NewTeamService(nil, teamRepo, newFakeGroupRepo(), newFakeMatchRepo(), nil)
}

func TestTeamService_ListTeams(t *testing.T) {
	ctx := context.Background()
	teamRepo := newFakeTeamRepo(
		&models.Team{ID: 1, Name: "Padel Kings"},
		&models.Team{ID: 2, Name: "Net Force"},
		&models.Team{ID: 3, Name: "Padel Legends"},
	)
	svc := newTeamServiceForTest(teamRepo)

	t.Run("no search returns everything", func(t *testing.T) {
		teams, err := svc.ListTeams(ctx, "")
		require.NoError(t, err)
		assert.Len(t, teams, 3)
	})

	t.Run("blank search is ignored", func(t *testing.T) {
		teams, err := svc.ListTeams(ctx, "   ")
		require.NoError(t, err)
		assert.Len(t, teams, 3)
	})

	t.Run("fuzzy search filters by name", func(t *testing.T) {
		teams, err := svc.ListTeams(ctx, "padel")
		require.NoError(t, err)
		require.Len(t, teams, 2)
		for _, team := range teams {
			assert.True(t, strings.HasPrefix(team.Name, "Padel"), team.Name)
		}
	})

	t.Run("no matches yields empty list", func(t *testing.T) {
		teams, err := svc.ListTeams(ctx, "zzzzzz")
		require.NoError(t, err)
		assert.Empty(t, teams)
	})
}

func TestTeamService_GetTeamByID(t *testing.T) {
	ctx := context.Background()
	teamRepo := newFakeTeamRepo(&models.Team{ID: 7, Name: "Smash Bros"})
	svc := newTeamServiceForTest(teamRepo)

	team, err := svc.GetTeamByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Smash Bros", team.Name)

	_, err = svc.GetTeamByID(ctx, 8)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestTeamService_CreateTeam_NameRequired(t *testing.T) {
	svc := newTeamServiceForTest(newFakeTeamRepo())

	_, err := svc.CreateTeam(context.Background(), TeamInput{Name: "   "})
	assert.ErrorIs(t, err, ErrTeamNameRequired)
}

func TestTeamService_UploadLogo_Disabled(t *testing.T) {
	// No uploader configured: the endpoint reports the feature as off
	// before touching the store.
	svc := newTeamServiceForTest(newFakeTeamRepo())

	_, err := svc.UploadLogo(context.Background(), 1, "image/png", strings.NewReader("png-bytes"))
	assert.ErrorIs(t, err, ErrLogoUploadDisabled)
}

func TestNormalizePlayers(t *testing.T) {
	players, err := normalizePlayers(TeamInput{
		Name:    "Smash Bros",
		Players: []string{"  Anna Rossi ", "", "Luca Bianchi", "   "},
	})
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Anna Rossi", players[0].Name)
	assert.Equal(t, "Luca Bianchi", players[1].Name)
}
