package model

import (
	"fmt"
	"slices"
)

// PlayerRecord represents one player scraped from a FantasyPros profile page.
//
// Records are plain values: they are created once by the scrape pipeline and
// never modified afterwards. Two records are equal when every field is equal,
// which is what whole-category deduplication relies on.
//
// Example:
//
//	rec := PlayerRecord{
//	    Name:     "Patrick Mahomes",
//	    Team:     "Texas Tech",
//	    Position: "QB",
//	    Rank:     "1",
//	}
//	rec.PhotoFile = PhotoFileName(rec.Team, rec.Position, rec.Rank, rec.Name)
type PlayerRecord struct {
	// Name is the player's full name from the page heading. Never empty.
	Name string

	// Team holds the value of the "College:" bio field. The column is
	// exported as "Team" for compatibility with existing spreadsheets.
	Team string

	// Position is the position subheading (QB, RB, ...). Never empty.
	Position string

	// Rank is the expert consensus rank with any '#' removed.
	// Empty string when the page shows no rank.
	Rank string

	// PhotoFile is the filename of the downloaded photo inside the images
	// directory. Empty string means the photo could not be downloaded.
	PhotoFile string
}

// HasPhoto returns true if the player's photo was saved to disk.
func (p PlayerRecord) HasPhoto() bool {
	return p.PhotoFile != ""
}

// Row returns the export projection of the record.
func (p PlayerRecord) Row() ExportRow {
	return ExportRow{
		Position:  p.Position,
		Rank:      p.Rank,
		Name:      p.Name,
		Team:      p.Team,
		PhotoFile: p.PhotoFile,
	}
}

// ExportRow is the flattened tuple written for each player.
type ExportRow struct {
	Position  string
	Rank      string
	Name      string
	Team      string
	PhotoFile string
}

// ExportHeader is the fixed column header of the player table.
var ExportHeader = []string{"Position", "ECR", "Name", "Team", "Photo"}

// Strings returns the row cells in header order.
func (r ExportRow) Strings() []string {
	return []string{r.Position, r.Rank, r.Name, r.Team, r.PhotoFile}
}

// CategoryResult is the ordered list of players scraped from one position
// listing page. It may be empty.
type CategoryResult []PlayerRecord

// Equal reports whether both results hold the same records in the same order.
func (c CategoryResult) Equal(other CategoryResult) bool {
	return slices.Equal(c, other)
}

// PhotoFileName computes the destination filename for a player's photo.
//
// The name is built from the already trimmed record fields in the order
// team, position, rank, name:
//
//	PhotoFileName("Texas Tech", "QB", "1", "Patrick Mahomes")
//	// Returns "Texas Tech_QB_1_Patrick Mahomes.png"
//
// No sanitization is applied, so identical inputs always give identical
// names and two players with the same fields share one file.
func PhotoFileName(team, position, rank, name string) string {
	return fmt.Sprintf("%s_%s_%s_%s.png", team, position, rank, name)
}
