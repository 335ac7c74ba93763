package database

import (
	"log"

	"github.com/CHANDANgig/Personalized-To-do-list-app/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens Postgres when DATABASE_URL is configured,
// otherwise falls back to a local SQLite file for development.
func NewConnection(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if cfg.DatabaseURL != "" {
		log.Println("[Database] Connecting to Postgres")
		return gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	}

	log.Printf("[Database] DATABASE_URL not set, using SQLite file %s", cfg.SQLitePath)
	return gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
}
