package nflverse

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// CSVParser loads the static team/roster catalog fixtures used to seed
// Postgres before a season can be scheduled. Unlike the live stat-sync
// jobs this package used to drive, nothing here reaches the network: the
// simulation core treats rosters as a closed, versioned input.
type CSVParser struct{}

func NewCSVParser() *CSVParser {
	return &CSVParser{}
}

// ParseTeams reads a team-catalog CSV fixture from disk.
func (p *CSVParser) ParseTeams(path string) ([]*TeamCSV, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening team fixture: %w", err)
	}
	defer f.Close()

	var teams []*TeamCSV
	if err := gocsv.UnmarshalFile(f, &teams); err != nil {
		return nil, fmt.Errorf("parsing team fixture: %w", err)
	}
	return teams, nil
}

// ParseRosters reads a roster CSV fixture from disk.
func (p *CSVParser) ParseRosters(path string) ([]*RosterCSV, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster fixture: %w", err)
	}
	defer f.Close()

	var rosters []*RosterCSV
	if err := gocsv.UnmarshalFile(f, &rosters); err != nil {
		return nil, fmt.Errorf("parsing roster fixture: %w", err)
	}
	return rosters, nil
}
