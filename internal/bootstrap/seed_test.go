package bootstrap

import (
	"testing"

	"anoa.com/schoolregistry/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrateAndSeed(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	require.NoError(t, SeedFaculties(db))
	require.NoError(t, SeedFaculties(db))

	var count int64
	require.NoError(t, db.Model(&entity.Faculty{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}
