package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/pageza/ghibli-kitchen/backend/config"
	"github.com/pageza/ghibli-kitchen/backend/internal/database"
	"github.com/pageza/ghibli-kitchen/backend/internal/store"
)

func main() {
	drop := flag.Bool("drop", false, "Drop the kitchen_records table instead of migrating it")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.StoreDriver != config.DriverPostgres && cfg.StoreDriver != config.DriverSQLite {
		log.Fatalf("store driver %q has no tables to migrate", cfg.StoreDriver)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if *drop {
		if err := db.Migrator().DropTable(&store.Record{}); err != nil {
			log.Fatalf("failed to drop kitchen_records: %v", err)
		}
		fmt.Println("Dropped kitchen_records.")
		return
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println("All migrations applied successfully.")
}
