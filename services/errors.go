package services

import "errors"

// Shared service errors, mapped to HTTP statuses in the handlers package.
var (
	// Not found
	ErrNotFound            = errors.New("requested resource not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrGroupNotFound       = errors.New("group not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrBracketSlotNotFound = errors.New("bracket slot not found")

	// Validation and business rules
	ErrValidationFailed     = errors.New("validation failed")
	ErrTeamNameRequired     = errors.New("team name is required")
	ErrGroupNameRequired    = errors.New("group name is required")
	ErrMatchSameTeam        = errors.New("a match requires two distinct teams")
	ErrInvalidSetScore      = errors.New("set score is not a legal padel score")
	ErrWinnerNotInSlot      = errors.New("winner must be one of the slot's two teams")
	ErrInsufficientTeams    = errors.New("group needs at least 2 teams to generate a schedule")
	ErrLogoUploadDisabled   = errors.New("logo storage is not configured")
	ErrUnsupportedLogoType  = errors.New("unsupported logo content type")

	// Conflicts
	ErrTeamNameConflict = errors.New("team name is already in use")

	// Authentication
	ErrAuthInvalidCredentials = errors.New("invalid username or password")

	// Store failures: the persistence call failed, nothing was applied
	// locally; callers should re-read current state.
	ErrStoreUnavailable = errors.New("tournament store unavailable")
)
