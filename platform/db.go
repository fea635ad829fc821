package platform

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	DB *gorm.DB
)

func InitDB(cfg *Config) {
	db, err := OpenDB(cfg)
	if err != nil {
		Logger.Fatalf("Failed to connect to database: %v", err)
		return
	}
	DB = db
}

// OpenDB connects to mysql when a SQL host is configured and otherwise falls
// back to a local sqlite file.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	if cfg.SQLHost == "" {
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.SQLUser, cfg.SQLPassword, cfg.SQLHost, cfg.SQLPort, cfg.SQLDBName)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
