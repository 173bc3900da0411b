package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvReader_Read_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SIGNING_KEY", "test-key")

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, "8000", cfg.HTTP.Port)
	assert.Equal(t, "admin", cfg.Auth.Username)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowOrigins)
}

func TestEnvReader_Read_MissingSigningKey(t *testing.T) {
	// t.Setenv registers the restore; the unset makes the
	// variable truly absent rather than empty.
	t.Setenv("AUTH_JWT_SIGNING_KEY", "")
	require.NoError(t, os.Unsetenv("AUTH_JWT_SIGNING_KEY"))

	_, err := NewEnvReader().Read()
	assert.Error(t, err)
}

func TestEnvReader_Read_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SIGNING_KEY", "test-key")
	t.Setenv("ENV", EnvProd)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "10s")

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "10s", cfg.HTTP.ShutdownTimeout.String())
}
