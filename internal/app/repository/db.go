package repository

import (
	"fmt"
	"time"

	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDatabase opens the configured store. SQLite is limited to a single
// connection so concurrent writers queue up instead of failing with SQLITE_BUSY.
func OpenDatabase(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if cfg.Driver == "sqlite" {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// InitDB migrates the queue, history and ui state tables.
func InitDB(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.QueueEntry{}, &models.HistoryRecord{}, &models.UIState{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_queue_status_id ON download_queue(status, id)").Error; err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	return nil
}
