package main

import (
	"context"
	"log"

	"github.com/quickmom/quickmom/internal/adapter/repository"
	"github.com/quickmom/quickmom/internal/infrastructure/database"
	"github.com/quickmom/quickmom/internal/usecase/user"
	"github.com/quickmom/quickmom/pkg/config"
)

// Seeds the fixture accounts without going through the HTTP API. Useful
// for local setups where the server is not running yet.
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

	userService := user.NewService(repository.NewUserRepository(db))

	msg, err := userService.Seed(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Printf("✅ %s", msg)
}
