package utils

import (
	"testing"
	"time"

	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := CreateAccessToken("user-1", "asha@campus.edu", "Asha", "secret", time.Hour)
	require.NoError(t, err)

	userID, claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "asha@campus.edu", claims["email"])
	assert.Equal(t, "Asha", claims["name"])
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := CreateAccessToken("user-1", "asha@campus.edu", "Asha", "secret", time.Hour)
	require.NoError(t, err)

	_, _, err = ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}

func TestParseExpiredToken(t *testing.T) {
	token, err := CreateRefreshToken("user-1", "secret", -time.Minute)
	require.NoError(t, err)

	_, _, err = ParseToken(token, "secret")
	assert.ErrorIs(t, err, errs.ErrExpiredToken)
}

func TestParseGarbageToken(t *testing.T) {
	_, _, err := ParseToken("not-a-token", "secret")
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}
