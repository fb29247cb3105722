package cmd_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"logistics/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// Given
		t.Setenv("JWT_SECRET", "secret")

		// When
		config, err := cmd.LoadConfig()

		// Then
		require.NoError(t, err)
		assert.Equal(t, "8000", config.HTTPPort)
		assert.Equal(t, 30*time.Minute, config.TokenTTL)
		assert.Equal(t, "@every 1m", config.FleetUtilizationSchedule)
		assert.Equal(t, []string{"*"}, config.CORSAllowOrigins)
		assert.Equal(t, "localhost", config.DBHost)
		assert.Equal(t, slog.LevelInfo, config.SlogLevel())
		assert.False(t, config.BootstrapAdminEnabled())
	})

	t.Run("overrides", func(t *testing.T) {
		// Given
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("DB_HOST", "db")
		t.Setenv("TOKEN_TTL", "5m")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("BOOTSTRAP_ADMIN_EMAIL", "admin@logisoft.io")
		t.Setenv("BOOTSTRAP_ADMIN_PASSWORD", "root-pass")

		// When
		config, err := cmd.LoadConfig()

		// Then
		require.NoError(t, err)
		assert.Equal(t, "9090", config.HTTPPort)
		assert.Equal(t, 5*time.Minute, config.TokenTTL)
		assert.Equal(t, slog.LevelDebug, config.SlogLevel())
		assert.True(t, config.BootstrapAdminEnabled())
		assert.Contains(t, config.DSN(), "host=db ")
	})

	t.Run("secret_is_required", func(t *testing.T) {
		// Given
		t.Setenv("JWT_SECRET", "")
		require.NoError(t, os.Unsetenv("JWT_SECRET"))

		// When
		_, err := cmd.LoadConfig()

		// Then
		require.Error(t, err)
	})
}

func TestLoadDBConfig(t *testing.T) {
	t.Run("does_not_need_the_secret", func(t *testing.T) {
		// Given
		t.Setenv("JWT_SECRET", "")
		require.NoError(t, os.Unsetenv("JWT_SECRET"))
		t.Setenv("DB_NAME", "fleet")

		// When
		config, err := cmd.LoadDBConfig()

		// Then
		require.NoError(t, err)
		assert.Contains(t, config.DSN(), "dbname=fleet ")
		assert.Equal(t, 20, config.DBOptions().MaxOpenConns)
	})
}
