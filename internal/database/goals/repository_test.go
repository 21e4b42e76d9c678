package goals

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"booktrail/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_goals_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.ReadingGoal{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Upsert_New(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	goal, err := repo.Upsert(2026, 24)
	require.NoError(t, err)
	assert.Equal(t, 2026, goal.Year)
	assert.Equal(t, 24, goal.TargetBooks)
}

func TestRepository_Upsert_OverwritesExistingYear(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.Upsert(2026, 10)
	require.NoError(t, err)

	second, err := repo.Upsert(2026, 30)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 30, second.TargetBooks)

	got, err := repo.GetByYear(2026)
	require.NoError(t, err)
	assert.Equal(t, 30, got.TargetBooks)
}

func TestRepository_GetByYear_Missing(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	goal, err := repo.GetByYear(1999)
	require.NoError(t, err)
	assert.Nil(t, goal)
}

func TestRepository_YearsAreIndependent(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Upsert(2025, 12)
	require.NoError(t, err)
	_, err = repo.Upsert(2026, 24)
	require.NoError(t, err)

	goal2025, err := repo.GetByYear(2025)
	require.NoError(t, err)
	assert.Equal(t, 12, goal2025.TargetBooks)

	goal2026, err := repo.GetByYear(2026)
	require.NoError(t, err)
	assert.Equal(t, 24, goal2026.TargetBooks)
}
