package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	svc, err := NewAuthService("admin", "correct horse battery staple")
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		err := svc.Login(ctx, LoginInput{Username: "admin", Password: "correct horse battery staple"})
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		err := svc.Login(ctx, LoginInput{Username: "admin", Password: "guess"})
		assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
	})

	t.Run("wrong username", func(t *testing.T) {
		err := svc.Login(ctx, LoginInput{Username: "root", Password: "correct horse battery staple"})
		assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
	})

	t.Run("empty input", func(t *testing.T) {
		err := svc.Login(ctx, LoginInput{})
		assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
	})
}
