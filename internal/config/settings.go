package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// Source settings
	BaseURL      string   `json:"base_url" yaml:"base_url"`
	CategoryURLs []string `json:"category_urls" yaml:"category_urls"`
	UserAgent    string   `json:"user_agent" yaml:"user_agent"`

	// Output settings
	OutputPath string `json:"output_path" yaml:"output_path"`
	ImagesPath string `json:"images_path" yaml:"images_path"`

	// Worker pool size, one worker per category
	MaxConcurrentCategories int `json:"max_concurrent_categories" yaml:"max_concurrent_categories"`

	// Photo settings
	PhotoResize  bool `json:"photo_resize" yaml:"photo_resize"`
	PhotoMaxSize int  `json:"photo_max_size" yaml:"photo_max_size"`
}

// DefaultBaseURL is the site every detail link is resolved against.
const DefaultBaseURL = "https://www.fantasypros.com"

// DefaultCategoryURLs returns the matchup listing pages, one per position group.
func DefaultCategoryURLs() []string {
	return []string{
		DefaultBaseURL + "/nfl/matchups/qb.php",
		DefaultBaseURL + "/nfl/matchups/rb.php",
		DefaultBaseURL + "/nfl/matchups/wr.php",
		DefaultBaseURL + "/nfl/matchups/te.php",
		DefaultBaseURL + "/nfl/matchups/k.php",
	}
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:      DefaultBaseURL,
		CategoryURLs: DefaultCategoryURLs(),
		UserAgent:    "fpscrape",

		OutputPath: "players.csv",
		ImagesPath: "images",

		MaxConcurrentCategories: 6,

		PhotoResize:  false,
		PhotoMaxSize: 256,
	}
}

// DefaultPath returns the settings file looked up by the command line tools.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "fpscrape", "settings.yaml")
}

// Load reads settings from a YAML or JSON file, chosen by extension.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, err
	}

	if settings.MaxConcurrentCategories < 1 {
		settings.MaxConcurrentCategories = 1
	}
	if settings.PhotoMaxSize < 1 {
		settings.PhotoMaxSize = DefaultSettings().PhotoMaxSize
	}

	return settings, nil
}

// Save writes settings to a YAML or JSON file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
