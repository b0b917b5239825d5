package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"foodshorts-api/models"
)

var testDBSeq int

// newTestDB opens a uniquely named shared-cache in-memory database so
// every pooled connection sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Content{},
		&models.Menu{},
		&models.Review{},
		&models.UserInteraction{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
