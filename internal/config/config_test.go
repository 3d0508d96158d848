package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	t.Run("pool sizing defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, int32(25), cfg.Database.MaxConns)
		assert.Equal(t, int32(5), cfg.Database.MinConns)
	})

	t.Run("pool sizing from environment", func(t *testing.T) {
		t.Setenv("DB_MAX_CONNS", "40")
		t.Setenv("DB_MIN_CONNS", "10")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, int32(40), cfg.Database.MaxConns)
		assert.Equal(t, int32(10), cfg.Database.MinConns)
	})

	t.Run("unparseable sizing falls back", func(t *testing.T) {
		t.Setenv("DB_MAX_CONNS", "many")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, int32(25), cfg.Database.MaxConns)
	})

	t.Run("secret key required", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "")

		_, err := Load()
		assert.Error(t, err)
	})
}
