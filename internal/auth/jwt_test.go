package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/store-service/internal/auth"
	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123"

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := auth.NewTokenManager(secret, time.Hour)

	testCases := []struct {
		name string
		id   entities.Identity
	}{
		{"user", entities.Identity{UserID: 7}},
		{"admin", entities.Identity{UserID: 1, IsAdmin: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := tm.Issue(tc.id)
			require.NoError(t, err)

			got, err := tm.Parse(token)
			require.NoError(t, err)
			assert.Equal(t, tc.id, got)
		})
	}
}

func TestTokenManager_Issue_Anonymous(t *testing.T) {
	tm := auth.NewTokenManager(secret, time.Hour)

	_, err := tm.Issue(entities.Identity{})
	assert.Error(t, err)
}

func TestTokenManager_Parse_Invalid(t *testing.T) {
	tm := auth.NewTokenManager(secret, time.Hour)

	expired, err := auth.NewTokenManager(secret, -time.Minute).Issue(entities.Identity{UserID: 1})
	require.NoError(t, err)

	foreign, err := auth.NewTokenManager("another-secret-another-secret", time.Hour).Issue(entities.Identity{UserID: 1})
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":     "not-a-token",
		"expired":     expired,
		"wrong key":   foreign,
		"bad subject": badSubject,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tm.Parse(token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, entities.Identity{}, auth.FromContext(context.Background()))

	id := entities.Identity{UserID: 3, IsAdmin: true}
	ctx := auth.WithIdentity(context.Background(), id)
	assert.Equal(t, id, auth.FromContext(ctx))
}
