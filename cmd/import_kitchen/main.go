// Command import_kitchen copies a browser localStorage dump into a kitchen,
// or prints a kitchen's records in the same shape.
//
// The dump is a JSON object of localStorage keys to string values, e.g. the
// output of JSON.stringify(localStorage) in the browser console.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pageza/ghibli-kitchen/backend/config"
	"github.com/pageza/ghibli-kitchen/backend/internal/database"
	"github.com/pageza/ghibli-kitchen/backend/internal/store"
)

func main() {
	kitchen := flag.String("kitchen", "", "Kitchen id (defaults to the configured default kitchen)")
	file := flag.String("file", "", "localStorage dump to import; omit to export to stdout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.StoreDriver == config.DriverMemory {
		log.Fatalf("The memory store does not outlive this command; configure STORE_DRIVER")
	}
	if *kitchen == "" {
		*kitchen = cfg.DefaultKitchen
	}

	res, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer res.Close()

	ctx := context.Background()
	kv := store.WithQuota(store.Scoped(res.Backend, *kitchen), cfg.QuotaBytes)

	if *file == "" {
		records, err := store.Export(ctx, kv)
		if err != nil {
			log.Fatalf("Failed to export kitchen %s: %v", *kitchen, err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			log.Fatalf("Failed to write export: %v", err)
		}
		return
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}
	var snapshot map[string]string
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Fatalf("%s is not a localStorage dump: %v", *file, err)
	}

	n, err := store.Import(ctx, kv, snapshot)
	if err != nil {
		log.Fatalf("Imported %d records before failing: %v", n, err)
	}
	fmt.Printf("Imported %d records into kitchen %s\n", n, *kitchen)
}
