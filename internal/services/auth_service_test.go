package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	svc, err := NewAuthService(zerolog.Nop(), "admin", "password", "taskdeck", "test-signing-key")
	require.NoError(t, err)
	return svc
}

func TestAuthService_Login_ValidPair(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)

	token, err := svc.Login("admin", "password")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Login always hands out the same process-wide credential.
	again, err := svc.Login("admin", "password")
	require.NoError(t, err)
	assert.Equal(t, token, again)
}

func TestAuthService_Login_InvalidPair(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong username", "wronguser", "password"},
		{"wrong password", "admin", "wrongpassword"},
		{"both wrong", "wronguser", "wrongpassword"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Login(tc.username, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_VerifyToken(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	token, err := svc.Login("admin", "password")
	require.NoError(t, err)

	assert.NoError(t, svc.VerifyToken(token))
	assert.ErrorIs(t, svc.VerifyToken("forged-token"), ErrInvalidToken)
	assert.ErrorIs(t, svc.VerifyToken(""), ErrInvalidToken)
}
