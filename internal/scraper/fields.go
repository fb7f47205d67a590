package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	yearRe    = regexp.MustCompile(`\d{4}`)
	runtimeRe = regexp.MustCompile(`(\d+)\s*min`)
)

// ParseYear extracts the release year from tokens like "(2017)" or
// "(I) (2017)". The last 4-digit group wins, numeral disambiguators
// come first on the page.
func ParseYear(raw string) (int, error) {
	matches := yearRe.FindAllString(raw, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("no year in %q", raw)
	}
	year, err := strconv.Atoi(matches[len(matches)-1])
	if err != nil {
		return 0, fmt.Errorf("invalid year in %q: %w", raw, err)
	}
	return year, nil
}

// ParseRuntime extracts minutes from "136 min" style strings.
func ParseRuntime(raw string) (int, error) {
	m := runtimeRe.FindStringSubmatch(raw)
	if m == nil {
		return 0, fmt.Errorf("no runtime in %q", raw)
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("invalid runtime in %q: %w", raw, err)
	}
	return minutes, nil
}

// ParseVotes parses comma-grouped vote counts like "1,234,567".
func ParseVotes(raw string) (int, error) {
	cleaned := strings.NewReplacer(",", "", "\u00A0", "", " ", "").Replace(raw)
	if cleaned == "" {
		return 0, fmt.Errorf("empty votes field")
	}
	votes, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid votes %q: %w", raw, err)
	}
	return votes, nil
}

// SplitGenres splits a comma-separated genre string, trimming entries
// and capping the result at max.
func SplitGenres(raw string, max int) []string {
	var genres []string
	for _, part := range strings.Split(raw, ",") {
		genre := strings.TrimSpace(part)
		if genre == "" {
			continue
		}
		genres = append(genres, genre)
		if len(genres) == max {
			break
		}
	}
	return genres
}
