package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// AuthService checks the single admin credential. There are no user
// accounts: one username/password pair from configuration guards every
// mutating endpoint.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) error
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authService struct {
	adminUsername     string
	adminPasswordHash []byte
}

// NewAuthService hashes the configured admin password once at startup so
// login comparisons run through bcrypt instead of plain equality.
func NewAuthService(adminUsername, adminPassword string) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &authService{
		adminUsername:     adminUsername,
		adminPasswordHash: hash,
	}, nil
}

func (s *authService) Login(_ context.Context, input LoginInput) error {
	if input.Username != s.adminUsername {
		// keep timing uniform with the password path
		_ = bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(input.Password))
		return ErrAuthInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(input.Password)); err != nil {
		return ErrAuthInvalidCredentials
	}
	return nil
}
