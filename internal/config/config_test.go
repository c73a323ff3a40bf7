package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Pins the set of required environment variables: the server runs as a
// single process, so no prefork toggle is part of the configuration.
func TestLoadServerConfig(t *testing.T) {
	t.Setenv("REVERSI_SERVER_HOST", "localhost")
	t.Setenv("REVERSI_SERVER_PORT", "4444")
	t.Setenv("REVERSI_REDIS_URL", "redis://localhost:6379")
	t.Setenv("REVERSI_POSTGRES_URL", "postgres://localhost:5432/reversi")
	t.Setenv("REVERSI_BASIC_AUTH_USER", "admin")
	t.Setenv("REVERSI_BASIC_AUTH_PASS", "secret")
	t.Setenv("REVERSI_SERVER_TOKEN", "token")

	cfg := LoadServerConfig()

	require.Equal(t, "localhost", cfg.ServerHost)
	require.Equal(t, "4444", cfg.ServerPort)
	require.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	require.Equal(t, "postgres://localhost:5432/reversi", cfg.PostgresURL)
	require.Equal(t, "admin", cfg.BasicAuthUsername)
	require.Equal(t, "secret", cfg.BasicAuthPassword)
	require.Equal(t, "token", cfg.Token)
}
