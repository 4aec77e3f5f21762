package database

import (
	"fmt"
	"log"

	"github.com/pageza/ghibli-kitchen/backend/internal/store"
	"gorm.io/gorm"
)

// RunMigrations creates or updates the tables used by the SQL store.
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running migrations for %s", db.Dialector.Name())
	if err := db.AutoMigrate(&store.Record{}); err != nil {
		return fmt.Errorf("failed to migrate kitchen_records: %w", err)
	}
	return nil
}
