// Package config provides configuration management for fpscrape.
//
// This package handles:
//   - Loading and saving settings from YAML or JSON files
//   - Default configuration values, including the five position listings
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Scrapes the QB, RB, WR, TE and K matchup pages
//	// Writes players.csv and photos under images/
//	// Runs up to 6 category workers at once
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // The file exists but could not be parsed
//	}
//
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
// A missing file is not an error: the defaults are returned.
package config
