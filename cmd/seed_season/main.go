package main

import (
	"context"
	"log"

	"github.com/gridiron-sim/core/internal/broadcast"
	"github.com/gridiron-sim/core/internal/config"
	"github.com/gridiron-sim/core/internal/db"
	"github.com/joho/godotenv"
)

// seed_season generates one season's schedule over the current team
// catalog and persists it as the current season, the same logic the
// broadcast orchestrator runs automatically when it finds no current
// season and the offseason cooldown has elapsed. Running it directly is
// useful right after cmd/import_rosters seeds a fresh database, so the
// server has a season to broadcast from its first poll.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	dbConfig := db.Config{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
	}
	if err := db.Connect(ctx, dbConfig); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	controller := broadcast.NewDBController()
	season, err := controller.CreateSeason(ctx)
	if err != nil {
		log.Fatalf("Failed to create season: %v", err)
	}

	log.Printf("Season %d created: %d weeks scheduled", season.SeasonNumber, len(season.Schedule))
}
