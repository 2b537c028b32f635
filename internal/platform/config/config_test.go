package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.Mongo.URI)
	assert.Equal(t, "ciaan", cfg.Database.Mongo.Database)
	assert.Equal(t, int64(24), cfg.JWT.ExpireHours)
	assert.Equal(t, "ciaan:", cfg.Cache.Prefix)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("MONGO_DATABASE", "ciaan_test")
	t.Setenv("CACHE_TTL", "30m")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "ciaan_test", cfg.Database.Mongo.Database)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
}

func TestValidateRequiresJWTSecret(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Mongo.URI = "mongodb://localhost:27017"
	cfg.Database.Mongo.Database = "ciaan"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}
