// Package model defines the data structures shared by the scraper, the
// exporter and the user interfaces.
//
// # PlayerRecord
//
// PlayerRecord holds the metadata scraped from one player profile page:
//
//	rec := model.PlayerRecord{Name: "Travis Kelce", Position: "TE", Team: "Cincinnati", Rank: "2"}
//	fmt.Println(rec.Row().Strings()) // [TE 2 Travis Kelce Cincinnati ]
//
// # CategoryResult
//
// CategoryResult is the ordered list of records produced from one position
// listing. The pipeline compares whole results with Equal to drop duplicates.
//
// # Photo file names
//
// PhotoFileName builds the "{team}_{position}_{rank}_{name}.png" name used for
// downloaded photos.
package model
