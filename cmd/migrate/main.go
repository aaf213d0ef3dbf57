package main

import (
	"log"
	"os"

	migrate "github.com/rubenv/sql-migrate"

	"github.com/quickmom/quickmom/internal/infrastructure/database"
	"github.com/quickmom/quickmom/pkg/config"
)

// Applies the SQL migrations in migrations/ against the configured
// database. Pass "down" to roll back the most recent migration.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	direction := migrate.Up
	limit := 0
	if len(os.Args) > 1 && os.Args[1] == "down" {
		direction = migrate.Down
		limit = 1
	}

	migrations := &migrate.FileMigrationSource{
		Dir: "migrations",
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database connection: %v", err)
	}

	n, err := migrate.ExecMax(sqlDB, "postgres", migrations, direction, limit)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("✅ Successfully applied %d migration(s)!\n", n)
}
