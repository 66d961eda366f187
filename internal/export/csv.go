// Package export writes scraped players to tabular files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/handiism/fpscrape/internal/model"
)

// WriteCSV writes the player table to path, truncating any existing file.
//
// The file starts with the model.ExportHeader row followed by one row per
// player, category by category, in the order given.
func WriteCSV(path string, results []model.CategoryResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(file, results); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return file.Close()
}

// Write encodes the player table as CSV with CRLF line endings.
func Write(w io.Writer, results []model.CategoryResult) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(model.ExportHeader); err != nil {
		return err
	}

	for _, result := range results {
		for _, record := range result {
			if err := cw.Write(record.Row().Strings()); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
