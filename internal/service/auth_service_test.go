package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/course-backend/internal/config"
)

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := NewAuthService(&config.Config{JWTSecret: "secret", JWTExpiry: time.Hour, BcryptCost: 4})

	token, err := svc.GenerateAdminToken(5, 1, []string{"courses:copy"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 5, claims.UserID)
	assert.Equal(t, TokenTypeAdmin, claims.TokenType)
	assert.Equal(t, []string{"courses:copy"}, claims.Permissions)

	other := NewAuthService(&config.Config{JWTSecret: "other", JWTExpiry: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthService_Passwords(t *testing.T) {
	svc := NewAuthService(&config.Config{BcryptCost: 4})

	hash, err := svc.HashPassword("password123")
	require.NoError(t, err)

	assert.NoError(t, svc.CheckPassword(hash, "password123"))
	assert.ErrorIs(t, svc.CheckPassword(hash, "wrong"), ErrInvalidCredentials)
}
