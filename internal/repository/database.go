package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cpu-scheduling-simulator/internal/models"
)

// OpenDB opens the SQLite results database at dbPath and migrates its schema.
func OpenDB(dbPath string) (*gorm.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open results database: %w", err)
	}
	if err := db.AutoMigrate(&models.ExperimentResult{}); err != nil {
		return nil, fmt.Errorf("migrate results database: %w", err)
	}
	return db, nil
}
