//go:build unit

package sessiontoken_test

import (
	"testing"
	"time"

	"gymgain/internal/pkg/sessiontoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	svc := sessiontoken.NewService("secret", time.Hour)

	token, err := svc.Sign("abc-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sid, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", sid)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := sessiontoken.NewService("secret-a", time.Hour).Sign("abc-123")
	require.NoError(t, err)

	_, err = sessiontoken.NewService("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, sessiontoken.ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	token, err := sessiontoken.NewService("secret", -time.Minute).Sign("abc-123")
	require.NoError(t, err)

	_, err = sessiontoken.NewService("secret", -time.Minute).Verify(token)
	assert.ErrorIs(t, err, sessiontoken.ErrExpiredToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := sessiontoken.NewService("secret", time.Hour).Verify("not-a-token")
	assert.ErrorIs(t, err, sessiontoken.ErrInvalidToken)
}
