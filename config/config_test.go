package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "trailbound.db", cfg.DBPath)
	assert.Equal(t, "meager", cfg.Diet)
	assert.Equal(t, int64(50000), cfg.StartingCents)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TRAILBOUND_ADDR", ":9999")
	t.Setenv("TRAILBOUND_SEED", "42")
	t.Setenv("TRAILBOUND_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
}
