// Command db_init creates the database file and applies all migrations
// without starting the HTTP server. Useful for provisioning and CI.
package main

import (
	"context"
	"flag"
	"log"

	dbembed "github.com/shramsetu/shramsetu/db"
	"github.com/shramsetu/shramsetu/internal/db"
)

func main() {
	var path = flag.String("db", "database.sqlite", "Path to the sqlite database file")
	var seed = flag.Bool("seed", false, "Apply demo seed data to an empty database")
	flag.Parse()

	ctx := context.Background()

	d, err := db.New(ctx, db.DSN(*path))
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer d.Close()

	if err := db.Migrate(ctx, d, dbembed.Migrations, dbembed.SeedFiles, *seed); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	log.Printf("database ready at %s", *path)
}
