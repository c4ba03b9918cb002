package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padeltour/tournament-server/models"
)

func newMatchServiceForTest(groupRepo *fakeGroupRepo, matchRepo *fakeMatchRepo) MatchService {
	return NewMatchService(nil, matchRepo, groupRepo, nil)
}

func TestMatchService_CreateMatch(t *testing.T) {
	ctx := context.Background()
	groupRepo := newFakeGroupRepo(&models.Group{ID: 1, Name: "Girone A", TeamIDs: []int{1, 2}})
	matchRepo := newFakeMatchRepo()
	svc := newMatchServiceForTest(groupRepo, matchRepo)

	t.Run("creates scheduled match", func(t *testing.T) {
		match, err := svc.CreateMatch(ctx, CreateMatchInput{
			GroupID: 1,
			Team1ID: 1,
			Team2ID: 2,
			Date:    "2026-09-12",
		})
		require.NoError(t, err)
		assert.NotZero(t, match.ID)
		assert.False(t, match.Completed)
		assert.Empty(t, match.Sets)
	})

	t.Run("same team on both sides", func(t *testing.T) {
		_, err := svc.CreateMatch(ctx, CreateMatchInput{GroupID: 1, Team1ID: 3, Team2ID: 3})
		assert.ErrorIs(t, err, ErrMatchSameTeam)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := svc.CreateMatch(ctx, CreateMatchInput{GroupID: 99, Team1ID: 1, Team2ID: 2})
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})
}

func TestMatchService_UpdateResult(t *testing.T) {
	ctx := context.Background()

	newSvc := func() (MatchService, *fakeMatchRepo) {
		groupRepo := newFakeGroupRepo(&models.Group{ID: 1, Name: "Girone A"})
		matchRepo := newFakeMatchRepo(&models.Match{ID: 5, GroupID: 1, Team1ID: 1, Team2ID: 2, Sets: []models.MatchSet{}})
		return newMatchServiceForTest(groupRepo, matchRepo), matchRepo
	}

	t.Run("straight sets completes the match", func(t *testing.T) {
		svc, _ := newSvc()
		match, err := svc.UpdateResult(ctx, 5, UpdateMatchInput{
			Sets: []models.MatchSet{
				{Team1Score: 6, Team2Score: 3},
				{Team1Score: 7, Team2Score: 5},
			},
		})
		require.NoError(t, err)
		assert.True(t, match.Completed)
		assert.Len(t, match.Sets, 2)
	})

	t.Run("partial result stays open", func(t *testing.T) {
		svc, _ := newSvc()
		match, err := svc.UpdateResult(ctx, 5, UpdateMatchInput{
			Sets: []models.MatchSet{{Team1Score: 6, Team2Score: 3}},
		})
		require.NoError(t, err)
		assert.False(t, match.Completed)
	})

	t.Run("clearing sets reopens the match", func(t *testing.T) {
		svc, repo := newSvc()
		_, err := svc.UpdateResult(ctx, 5, UpdateMatchInput{
			Sets: []models.MatchSet{
				{Team1Score: 6, Team2Score: 3},
				{Team1Score: 6, Team2Score: 2},
			},
		})
		require.NoError(t, err)

		match, err := svc.UpdateResult(ctx, 5, UpdateMatchInput{Sets: []models.MatchSet{}})
		require.NoError(t, err)
		assert.False(t, match.Completed)
		assert.False(t, repo.matches[5].Completed)
	})

	t.Run("illegal set score rejected", func(t *testing.T) {
		svc, repo := newSvc()
		_, err := svc.UpdateResult(ctx, 5, UpdateMatchInput{
			Sets: []models.MatchSet{{Team1Score: 6, Team2Score: 5}},
		})
		assert.ErrorIs(t, err, ErrInvalidSetScore)
		assert.Empty(t, repo.matches[5].Sets)
	})

	t.Run("regular score in tiebreak slot rejected", func(t *testing.T) {
		svc, _ := newSvc()
		_, err := svc.UpdateResult(ctx, 5, UpdateMatchInput{
			Sets: []models.MatchSet{
				{Team1Score: 6, Team2Score: 3},
				{Team1Score: 3, Team2Score: 6},
				{Team1Score: 6, Team2Score: 4},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidSetScore)
	})

	t.Run("unknown match", func(t *testing.T) {
		svc, _ := newSvc()
		_, err := svc.UpdateResult(ctx, 99, UpdateMatchInput{})
		assert.ErrorIs(t, err, ErrMatchNotFound)
	})
}

func TestMatchService_ListMatches(t *testing.T) {
	ctx := context.Background()
	groupRepo := newFakeGroupRepo()
	matchRepo := newFakeMatchRepo(
		&models.Match{ID: 1, GroupID: 1, Team1ID: 1, Team2ID: 2},
		&models.Match{ID: 2, GroupID: 2, Team1ID: 3, Team2ID: 4},
		&models.Match{ID: 3, GroupID: 1, Team1ID: 2, Team2ID: 5},
	)
	svc := newMatchServiceForTest(groupRepo, matchRepo)

	all, err := svc.ListMatches(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	groupID := 1
	filtered, err := svc.ListMatches(ctx, &groupID)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, match := range filtered {
		assert.Equal(t, 1, match.GroupID)
	}
}

func TestMatchService_DeleteMatch(t *testing.T) {
	ctx := context.Background()
	matchRepo := newFakeMatchRepo(&models.Match{ID: 1, GroupID: 1, Team1ID: 1, Team2ID: 2})
	svc := newMatchServiceForTest(newFakeGroupRepo(), matchRepo)

	require.NoError(t, svc.DeleteMatch(ctx, 1))
	assert.ErrorIs(t, svc.DeleteMatch(ctx, 1), ErrMatchNotFound)
}
