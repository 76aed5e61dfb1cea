package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks variables the host may define. Viper treats empty values
// as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DB_HOST", "DB_PORT", "DB_NAME", "DB_MAX_CONNS", "DB_AUTO_MIGRATE", "JWT_SECRET", "JWT_EXPIRY_HOURS"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigFrom_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "3000", config.App.Port)
	assert.Equal(t, "5432", config.Database.Port)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.True(t, config.Database.AutoMigrate)
	assert.Equal(t, 7*24*time.Hour, config.JWT.Expiry())
}

func TestLoadConfigFrom_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"PORT=8080\nDB_HOST=db.internal\nDB_NAME=courses\nJWT_SECRET=from-file\nJWT_EXPIRY_HOURS=12\n",
	), 0o600))

	clearEnv(t)
	// the environment wins over the file
	t.Setenv("DB_HOST", "override.internal")

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "override.internal", config.Database.Host)
	assert.Equal(t, "courses", config.Database.Name)
	assert.Equal(t, "from-file", config.JWT.Secret)
	assert.Equal(t, 12*time.Hour, config.JWT.Expiry())
}

func TestLoadConfigFrom_RequiresSecret(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadConfigFrom_RejectsNonPositiveExpiry(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY_HOURS", "0")

	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "JWT_EXPIRY_HOURS")
}
