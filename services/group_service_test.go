package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padeltour/tournament-server/models"
)

func TestGroupService_NameRequired(t *testing.T) {
	svc := NewGroupService(nil, newFakeGroupRepo(), newFakeMatchRepo())

	_, err := svc.CreateGroup(context.Background(), GroupInput{Name: "  "})
	assert.ErrorIs(t, err, ErrGroupNameRequired)

	_, err = svc.UpdateGroup(context.Background(), 1, GroupInput{Name: ""})
	assert.ErrorIs(t, err, ErrGroupNameRequired)
}

func TestGroupService_GetGroupByID(t *testing.T) {
	groupRepo := newFakeGroupRepo(&models.Group{ID: 1, Name: "Girone A", TeamIDs: []int{1, 2, 3}})
	svc := NewGroupService(nil, groupRepo, newFakeMatchRepo())

	group, err := svc.GetGroupByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Girone A", group.Name)
	assert.Equal(t, []int{1, 2, 3}, group.TeamIDs)

	_, err = svc.GetGroupByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
