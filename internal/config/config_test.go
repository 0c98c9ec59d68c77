package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("SESSION_DRIVER", "")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
		assert.Equal(t, 120*time.Second, cfg.API.Timeout)
		assert.Equal(t, SessionDriverMemory, cfg.Session.Driver)
		assert.False(t, cfg.NeedsDatabase())
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://api.example.com/v2/")
		t.Setenv("API_TIMEOUT", "45")
		t.Setenv("SESSION_DRIVER", "Postgres")
		t.Setenv("SESSION_TTL", "2h")
		t.Setenv("DB_PORT", "6543")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/v2", cfg.API.BaseURL)
		assert.Equal(t, DefaultAPITimeout, cfg.API.Timeout, "the API timeout is fixed")
		assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
		assert.True(t, cfg.NeedsDatabase())
		assert.Contains(t, cfg.Database.GetDSN(), "port=6543")
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		t.Setenv("SESSION_DRIVER", "etcd")
		_, err := FromEnv()
		assert.Error(t, err)
	})
}

func TestCORSOrigins(t *testing.T) {
	cors := CORSConfig{AllowedOrigins: " http://a.test, ,http://b.test"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cors.Origins())
}
