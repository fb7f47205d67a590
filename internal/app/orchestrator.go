package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"moviestats/internal/checksum"
	"moviestats/internal/config"
	"moviestats/internal/fetcher"
	"moviestats/internal/normalize"
	"moviestats/internal/observability"
	"moviestats/internal/report"
	"moviestats/internal/scraper"
	"moviestats/internal/table"
)

// PageFetcher is either the plain HTTP fetcher or the headless-browser
// one, picked by config.
type PageFetcher interface {
	Fetch(ctx context.Context, urlStr string) (*fetcher.FetchResponse, error)
}

type Orchestrator struct {
	cfg        *config.Config
	logger     *observability.Logger
	fetcher    PageFetcher
	scraper    *scraper.Scraper
	normalizer *normalize.Normalizer
	checksum   *checksum.Generator
	out        io.Writer
}

func NewOrchestrator(
	cfg *config.Config,
	logger *observability.Logger,
	f PageFetcher,
	s *scraper.Scraper,
	n *normalize.Normalizer,
	out io.Writer,
) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		logger:     logger,
		fetcher:    f,
		scraper:    s,
		normalizer: n,
		checksum:   checksum.NewGenerator(),
		out:        out,
	}
}

type RunStats struct {
	URL           string
	DocumentHash  string
	Cards         int
	WithRating    int
	WithMetascore int
	Charts        []string
	Correlation   *report.CorrelationResult
}

// Run executes the pipeline once: fetch the listing, extract the raw
// columns, assemble the record table, render the report and charts,
// print the correlation test.
func (o *Orchestrator) Run(ctx context.Context) (*RunStats, error) {
	listingURL, err := o.cfg.ListingURL()
	if err != nil {
		return nil, err
	}

	stats := &RunStats{URL: listingURL}

	o.logger.Info("Fetching listing", "url", listingURL, "render_js", o.cfg.Source.RenderJS)

	resp, err := o.fetcher.Fetch(ctx, listingURL)
	if err != nil {
		return stats, fmt.Errorf("fetch failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return stats, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, listingURL)
	}

	stats.DocumentHash = o.checksum.DocumentHash(listingURL, resp.Body)
	o.logger.Info("Fetched listing",
		"bytes", len(resp.Body),
		"document_hash", stats.DocumentHash,
	)

	raw, err := o.scraper.ParseListing(string(resp.Body))
	if err != nil {
		return stats, fmt.Errorf("parse failed: %w", err)
	}
	stats.Cards = raw.Len()

	if raw.Len() == 0 {
		return stats, fmt.Errorf("no listing cards found; selectors may be stale (document_hash=%s)", stats.DocumentHash)
	}

	records, err := table.Assemble(raw)
	if err != nil {
		return stats, fmt.Errorf("assemble failed: %w", err)
	}

	for _, rec := range records {
		if rec.HasRating() {
			stats.WithRating++
		}
		if rec.HasMetascore() {
			stats.WithMetascore++
		}
	}

	genreCols := table.GenreColumns(records)
	o.logger.Info("Assembled table",
		"records", len(records),
		"with_rating", stats.WithRating,
		"with_metascore", stats.WithMetascore,
		"distinct_primary_genres", distinct(genreCols[0]),
	)

	top := table.TopByRating(records, o.cfg.Report.TopN, o.cfg.Report.MinVotes)
	report.RenderTopTable(o.out, top, o.normalizer)

	if err := os.MkdirAll(o.cfg.Report.OutputDir, 0o755); err != nil {
		return stats, fmt.Errorf("failed to create output dir: %w", err)
	}

	histPath := filepath.Join(o.cfg.Report.OutputDir, "ratings_hist.png")
	if err := report.RatingsHistogram(records, histPath, o.cfg.Report.ChartWidthPX, o.cfg.Report.ChartHeightPX); err != nil {
		return stats, fmt.Errorf("histogram failed: %w", err)
	}
	stats.Charts = append(stats.Charts, histPath)

	scatterPath := filepath.Join(o.cfg.Report.OutputDir, "rating_metascore.png")
	if err := report.RatingMetascoreScatter(records, scatterPath, o.cfg.Report.ChartWidthPX, o.cfg.Report.ChartHeightPX); err != nil {
		return stats, fmt.Errorf("scatter failed: %w", err)
	}
	stats.Charts = append(stats.Charts, scatterPath)

	corr, err := report.RatingMetascoreCorrelation(records)
	if err != nil {
		o.logger.Warn("Correlation test skipped", "error", err.Error())
	} else {
		stats.Correlation = corr
		fmt.Fprintln(o.out, corr.String())
	}

	o.logger.Info("Run completed",
		"records", len(records),
		"charts", len(stats.Charts),
	)

	return stats, nil
}

func distinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}
