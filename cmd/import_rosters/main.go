package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/uuid"
	"github.com/gridiron-sim/core/internal/config"
	"github.com/gridiron-sim/core/internal/db"
	"github.com/gridiron-sim/core/internal/models"
	"github.com/gridiron-sim/core/internal/nflverse"
	"github.com/joho/godotenv"
)

var (
	teamsPath   = flag.String("teams", "fixtures/teams.csv", "path to the team-catalog CSV fixture")
	rostersPath = flag.String("rosters", "fixtures/rosters.csv", "path to the roster CSV fixture")
	dryRun      = flag.Bool("dry-run", false, "parse and validate without writing to the database")
)

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	if !*dryRun {
		dbConfig := db.Config{
			DatabaseURL: cfg.DatabaseURL,
			MaxConns:    cfg.DBMaxConns,
			MinConns:    cfg.DBMinConns,
		}
		if err := db.Connect(ctx, dbConfig); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
	}

	parser := nflverse.NewCSVParser()

	teamRows, err := parser.ParseTeams(*teamsPath)
	if err != nil {
		log.Fatalf("Failed to parse team fixture: %v", err)
	}
	rosterRows, err := parser.ParseRosters(*rostersPath)
	if err != nil {
		log.Fatalf("Failed to parse roster fixture: %v", err)
	}

	teamsByAbbr := make(map[string]models.Team, len(teamRows))
	for _, row := range teamRows {
		teamsByAbbr[row.Abbreviation] = models.Team{
			ID:             uuid.New(),
			Name:           row.Name,
			Abbreviation:   row.Abbreviation,
			City:           row.City,
			Conference:     models.Conference(row.Conference),
			Division:       models.Division(row.Division),
			PrimaryColor:   row.PrimaryColor,
			SecondaryColor: row.SecondaryColor,
			Dome:           row.Dome,
		}
	}

	rostersByAbbr := make(map[string][]models.Player)
	for _, row := range rosterRows {
		rostersByAbbr[row.TeamAbbr] = append(rostersByAbbr[row.TeamAbbr], playerFromCSV(row))
	}

	log.Printf("Parsed %d teams, %d players across %d rosters", len(teamsByAbbr), len(rosterRows), len(rostersByAbbr))

	if *dryRun {
		log.Println("Dry run: skipping database writes")
		return
	}

	teamQueries := &db.TeamQueries{}
	imported := 0
	for abbr, team := range teamsByAbbr {
		if err := teamQueries.UpsertTeam(ctx, team); err != nil {
			log.Fatalf("Failed to upsert team %s: %v", abbr, err)
		}

		players := rostersByAbbr[abbr]
		for i := range players {
			players[i].ID = uuid.New()
		}
		roster := models.Roster{TeamID: team.ID, Players: players}
		if err := teamQueries.SaveRoster(ctx, roster); err != nil {
			log.Fatalf("Failed to save roster for %s: %v", abbr, err)
		}
		imported++
	}

	log.Printf("Import complete: %d teams seeded", imported)
}

func playerFromCSV(row *nflverse.RosterCSV) models.Player {
	status := models.PlayerStatusActive
	switch row.Status {
	case "injured", "inactive":
		status = row.Status
	}

	return models.Player{
		Name:         row.FullName,
		Position:     row.Position,
		JerseyNumber: row.JerseyNumber,
		Status:       status,
		Ratings: models.Ratings{
			Speed:        row.Speed,
			Strength:     row.Strength,
			Accuracy:     row.Accuracy,
			Agility:      row.Agility,
			Awareness:    row.Awareness,
			Catching:     row.Catching,
			BlockPower:   row.BlockPower,
			Coverage:     row.Coverage,
			Tackling:     row.Tackling,
			KickPower:    row.KickPower,
			KickAccuracy: row.KickAccuracy,
		},
	}
}
