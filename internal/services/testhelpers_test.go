package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campuscare/backend/internal/models"
)

// newTestDB opens a throwaway SQLite database migrated with the
// application models.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Concern{},
		&models.AnonymousMessage{},
		&models.UrgentNotification{},
		&models.AdminAnswer{},
		&models.AdviceArticle{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, studentRef string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, StudentRef: studentRef, Role: "user"}
	require.NoError(t, db.Create(user).Error)
	return user
}
