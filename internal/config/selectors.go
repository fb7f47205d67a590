package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"moviestats/internal/scraper"
)

// LoadSelectors loads the CSS selector set from a YAML file.
func LoadSelectors(filePath string) (*scraper.Selectors, error) {
	if filePath == "" {
		return nil, fmt.Errorf("selectors file path is empty")
	}

	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("selectors file not found: %s: %w", filePath, err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open selectors file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close selectors file: %v\n", closeErr)
		}
	}()

	var selectors scraper.Selectors
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&selectors); err != nil {
		return nil, fmt.Errorf("failed to parse selectors YAML: %w", err)
	}

	if err := validateSelectors(&selectors); err != nil {
		return nil, err
	}

	return &selectors, nil
}

// LoadListingSelectors resolves the selectors file relative to the configs
// directory when the configured path is not absolute.
func (c *Config) LoadListingSelectors() (*scraper.Selectors, error) {
	filePath := c.SelectorsFile
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join("configs", filePath)
	}
	return LoadSelectors(filePath)
}

// validateSelectors checks the minimal selector set needed to build
// an aligned listing table.
func validateSelectors(s *scraper.Selectors) error {
	if s.CardSelectors == "" {
		return fmt.Errorf("card_selectors is required")
	}
	if len(s.TitleSelectors) == 0 {
		return fmt.Errorf("title_selectors is required")
	}
	if len(s.YearSelectors) == 0 {
		return fmt.Errorf("year_selectors is required")
	}
	if len(s.RuntimeSelectors) == 0 {
		return fmt.Errorf("runtime_selectors is required")
	}
	if len(s.GenreSelectors) == 0 {
		return fmt.Errorf("genre_selectors is required")
	}
	if len(s.RatingsBarSelectors) == 0 {
		return fmt.Errorf("ratings_bar_selectors is required")
	}
	if len(s.VotesSelectors) == 0 {
		return fmt.Errorf("votes_selectors is required")
	}
	if len(s.DescriptionSelectors) == 0 {
		return fmt.Errorf("description_selectors is required")
	}

	return nil
}
