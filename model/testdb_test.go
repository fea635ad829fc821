package model

import (
	"fmt"
	"testing"

	"github.com/Alphiii2005/alphabot-live/platform"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// setupTestDB points the package at a fresh in-memory sqlite database named
// after the test, so tests never see each other's rows.
func setupTestDB(tb testing.TB) {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", tb.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&User{}, &Profile{}, &Message{}, &RevokedToken{}); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	platform.DB = db
}

func seedUser(tb testing.TB, username string) *User {
	tb.Helper()
	u := &User{
		Username: username,
		Email:    username + "@example.com",
		Password: "pw",
	}
	if err := platform.DB.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}
