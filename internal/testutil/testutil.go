// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/fadilmartias/job-tracker/internal/config"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database with foreign keys on. A
// single connection keeps every query on the same in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

// CreateUser inserts a user with its profile.
func CreateUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	require.NoError(t, db.Omit("Profile").Create(user).Error)
	require.NoError(t, db.Create(&model.Profile{UserID: user.ID}).Error)
	return user
}

func CreateApplication(t *testing.T, db *gorm.DB, owner *model.User, company string) *model.JobApplication {
	t.Helper()
	app := &model.JobApplication{
		UserID:         owner.ID,
		CompanyName:    company,
		JobTitle:       "Backend Engineer",
		JobDescription: "Go and PostgreSQL",
	}
	require.NoError(t, db.Omit("User").Create(app).Error)
	return app
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
