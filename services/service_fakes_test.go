package services

import (
	"context"

	"github.com/padeltour/tournament-server/models"
	"github.com/padeltour/tournament-server/repositories"
)

// In-memory repository fakes. Each embeds an err field that, when set, is
// returned from every call so store failure paths can be exercised.

type fakeTeamRepo struct {
	teams  map[int]*models.Team
	nextID int
	err    error
}

func newFakeTeamRepo(teams ...*models.Team) *fakeTeamRepo {
	repo := &fakeTeamRepo{teams: make(map[int]*models.Team), nextID: 1}
	for _, team := range teams {
		repo.teams[team.ID] = team
		if team.ID >= repo.nextID {
			repo.nextID = team.ID + 1
		}
	}
	return repo
}

func (r *fakeTeamRepo) Create(_ context.Context, _ repositories.SQLExecutor, team *models.Team) error {
	if r.err != nil {
		return r.err
	}
	team.ID = r.nextID
	r.nextID++
	r.teams[team.ID] = team
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	if r.err != nil {
		return nil, r.err
	}
	team, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	copied := *team
	return &copied, nil
}

func (r *fakeTeamRepo) List(_ context.Context) ([]*models.Team, error) {
	if r.err != nil {
		return nil, r.err
	}
	teams := make([]*models.Team, 0, len(r.teams))
	for id := 1; id < r.nextID; id++ {
		if team, ok := r.teams[id]; ok {
			copied := *team
			teams = append(teams, &copied)
		}
	}
	return teams, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, _ repositories.SQLExecutor, team *models.Team) error {
	if r.err != nil {
		return r.err
	}
	existing, ok := r.teams[team.ID]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	existing.Name = team.Name
	return nil
}

func (r *fakeTeamRepo) UpdateLogoKey(_ context.Context, id int, logoKey *string) error {
	if r.err != nil {
		return r.err
	}
	team, ok := r.teams[id]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	team.LogoKey = logoKey
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, _ repositories.SQLExecutor, id int) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.teams[id]; !ok {
		return repositories.ErrTeamNotFound
	}
	delete(r.teams, id)
	return nil
}

func (r *fakeTeamRepo) ReplacePlayers(_ context.Context, _ repositories.SQLExecutor, teamID int, players []models.Player) error {
	if r.err != nil {
		return r.err
	}
	team, ok := r.teams[teamID]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	team.Players = players
	return nil
}

type fakeGroupRepo struct {
	groups map[int]*models.Group
	err    error
}

func newFakeGroupRepo(groups ...*models.Group) *fakeGroupRepo {
	repo := &fakeGroupRepo{groups: make(map[int]*models.Group)}
	for _, group := range groups {
		repo.groups[group.ID] = group
	}
	return repo
}

func (r *fakeGroupRepo) Create(_ context.Context, _ repositories.SQLExecutor, group *models.Group) error {
	if r.err != nil {
		return r.err
	}
	r.groups[group.ID] = group
	return nil
}

func (r *fakeGroupRepo) GetByID(_ context.Context, id int) (*models.Group, error) {
	if r.err != nil {
		return nil, r.err
	}
	group, ok := r.groups[id]
	if !ok {
		return nil, repositories.ErrGroupNotFound
	}
	copied := *group
	return &copied, nil
}

func (r *fakeGroupRepo) List(_ context.Context) ([]*models.Group, error) {
	if r.err != nil {
		return nil, r.err
	}
	groups := make([]*models.Group, 0, len(r.groups))
	for _, group := range r.groups {
		copied := *group
		groups = append(groups, &copied)
	}
	return groups, nil
}

func (r *fakeGroupRepo) Update(_ context.Context, _ repositories.SQLExecutor, group *models.Group) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.groups[group.ID]; !ok {
		return repositories.ErrGroupNotFound
	}
	r.groups[group.ID] = group
	return nil
}

func (r *fakeGroupRepo) Delete(_ context.Context, _ repositories.SQLExecutor, id int) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.groups[id]; !ok {
		return repositories.ErrGroupNotFound
	}
	delete(r.groups, id)
	return nil
}

func (r *fakeGroupRepo) SetTeams(_ context.Context, _ repositories.SQLExecutor, groupID int, teamIDs []int) error {
	if r.err != nil {
		return r.err
	}
	group, ok := r.groups[groupID]
	if !ok {
		return repositories.ErrGroupNotFound
	}
	group.TeamIDs = teamIDs
	return nil
}

func (r *fakeGroupRepo) RemoveTeamFromAll(_ context.Context, _ repositories.SQLExecutor, teamID int) error {
	if r.err != nil {
		return r.err
	}
	for _, group := range r.groups {
		kept := group.TeamIDs[:0]
		for _, id := range group.TeamIDs {
			if id != teamID {
				kept = append(kept, id)
			}
		}
		group.TeamIDs = kept
	}
	return nil
}

type fakeMatchRepo struct {
	matches map[int]*models.Match
	nextID  int
	err     error
}

func newFakeMatchRepo(matches ...*models.Match) *fakeMatchRepo {
	repo := &fakeMatchRepo{matches: make(map[int]*models.Match), nextID: 1}
	for _, match := range matches {
		repo.matches[match.ID] = match
		if match.ID >= repo.nextID {
			repo.nextID = match.ID + 1
		}
	}
	return repo
}

func (r *fakeMatchRepo) Create(_ context.Context, _ repositories.SQLExecutor, match *models.Match) error {
	if r.err != nil {
		return r.err
	}
	match.ID = r.nextID
	r.nextID++
	copied := *match
	r.matches[match.ID] = &copied
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	if r.err != nil {
		return nil, r.err
	}
	match, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	copied := *match
	return &copied, nil
}

func (r *fakeMatchRepo) List(_ context.Context, groupID *int) ([]*models.Match, error) {
	if r.err != nil {
		return nil, r.err
	}
	matches := make([]*models.Match, 0, len(r.matches))
	for id := 1; id < r.nextID; id++ {
		match, ok := r.matches[id]
		if !ok {
			continue
		}
		if groupID != nil && match.GroupID != *groupID {
			continue
		}
		copied := *match
		matches = append(matches, &copied)
	}
	return matches, nil
}

func (r *fakeMatchRepo) UpdateResult(_ context.Context, id int, sets []models.MatchSet, completed bool, date *string, t *string) error {
	if r.err != nil {
		return r.err
	}
	match, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	match.Sets = sets
	match.Completed = completed
	if date != nil {
		match.Date = *date
	}
	if t != nil {
		match.Time = t
	}
	return nil
}

func (r *fakeMatchRepo) Delete(_ context.Context, id int) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.matches[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

func (r *fakeMatchRepo) DeleteByTeam(_ context.Context, _ repositories.SQLExecutor, teamID int) error {
	if r.err != nil {
		return r.err
	}
	for id, match := range r.matches {
		if match.Team1ID == teamID || match.Team2ID == teamID {
			delete(r.matches, id)
		}
	}
	return nil
}

func (r *fakeMatchRepo) DeleteByGroup(_ context.Context, _ repositories.SQLExecutor, groupID int) error {
	if r.err != nil {
		return r.err
	}
	for id, match := range r.matches {
		if match.GroupID == groupID {
			delete(r.matches, id)
		}
	}
	return nil
}

type fakeBracketRepo struct {
	slots []*models.BracketSlot
	err   error
}

func (r *fakeBracketRepo) ListSlots(_ context.Context) ([]*models.BracketSlot, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.slots, nil
}

func (r *fakeBracketRepo) UpdateSlot(_ context.Context, _ repositories.SQLExecutor, slot *models.BracketSlot) error {
	if r.err != nil {
		return r.err
	}
	for i, existing := range r.slots {
		if existing.UID == slot.UID {
			r.slots[i] = slot
			return nil
		}
	}
	return repositories.ErrBracketSlotNotFound
}

func (r *fakeBracketRepo) ReplaceAll(_ context.Context, _ repositories.SQLExecutor, slots []*models.BracketSlot) error {
	if r.err != nil {
		return r.err
	}
	r.slots = slots
	return nil
}
