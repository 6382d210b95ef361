package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AVATAR_STORAGE", "local")
	t.Setenv("AVATAR_LOCK_TTL", "30s")
	t.Setenv("MAX_AVATAR_SIZE", "1024")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.AvatarStorage)
	assert.Equal(t, 30*time.Second, cfg.AvatarLockTTL)
	assert.Equal(t, int64(1024), cfg.MaxAvatarSize)
	assert.Contains(t, cfg.DSN(), "sslmode=disable")
}

func TestLoadDatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/school")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/school", cfg.DSN())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("storage", func(t *testing.T) {
		t.Setenv("AVATAR_STORAGE", "s3")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("lock ttl", func(t *testing.T) {
		t.Setenv("AVATAR_LOCK_TTL", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("max size", func(t *testing.T) {
		t.Setenv("MAX_AVATAR_SIZE", "-5")
		_, err := Load()
		assert.Error(t, err)
	})
}
