package table

import (
	"fmt"
	"sort"

	"moviestats/internal/movie"
	"moviestats/internal/scraper"
)

// Assemble zips the raw listing columns into movie records, applying the
// per-field coercions. The column alignment invariant is checked up front;
// a length mismatch means the extractor broke and no partial table is
// returned. Numeric coercion failures on non-optional fields leave the
// zero value in place, missing rating or metascore become nil.
func Assemble(raw *scraper.RawListing) ([]*movie.Record, error) {
	if raw == nil {
		return nil, fmt.Errorf("nil listing")
	}
	if !raw.Aligned() {
		return nil, fmt.Errorf("listing columns are misaligned: %d titles", raw.Len())
	}

	records := make([]*movie.Record, 0, raw.Len())
	for i := 0; i < raw.Len(); i++ {
		rec := &movie.Record{
			Title:       raw.Titles[i],
			Genres:      scraper.SplitGenres(raw.Genres[i], movie.MaxGenres),
			Description: raw.Descriptions[i],
		}

		if year, err := scraper.ParseYear(raw.Years[i]); err == nil {
			rec.Year = year
		}
		if runtime, err := scraper.ParseRuntime(raw.Runtimes[i]); err == nil {
			rec.RuntimeMin = runtime
		}
		if votes, err := scraper.ParseVotes(raw.Votes[i]); err == nil {
			rec.Votes = votes
		}

		rec.Rating, rec.Metascore = scraper.SplitRatingsBar(raw.RatingsBars[i])

		records = append(records, rec)
	}

	return records, nil
}

// TopByRating returns up to n records sorted by rating descending,
// keeping only rows with at least minVotes votes and a present rating.
// The sort is stable so page order breaks ties.
func TopByRating(records []*movie.Record, n, minVotes int) []*movie.Record {
	filtered := make([]*movie.Record, 0, len(records))
	for _, rec := range records {
		if rec.HasRating() && rec.Votes >= minVotes {
			filtered = append(filtered, rec)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return *filtered[i].Rating > *filtered[j].Rating
	})

	if n < len(filtered) {
		filtered = filtered[:n]
	}
	return filtered
}

// GenreColumns widens the per-record genre lists into fixed-width columns
// for plotting: column k holds the k-th genre of every record, "" where
// a record has fewer genres. Row order and count are preserved.
func GenreColumns(records []*movie.Record) [movie.MaxGenres][]string {
	var columns [movie.MaxGenres][]string
	for k := 0; k < movie.MaxGenres; k++ {
		columns[k] = make([]string, len(records))
	}

	for i, rec := range records {
		for k, genre := range rec.Genres {
			if k >= movie.MaxGenres {
				break
			}
			columns[k][i] = genre
		}
	}

	return columns
}
