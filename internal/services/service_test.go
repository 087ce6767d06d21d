package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/talentops/applicant-dashboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.UserSettings{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
