package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"moviestats/internal/config"
	"moviestats/internal/fetcher"
	"moviestats/internal/normalize"
	"moviestats/internal/observability"
	"moviestats/internal/scraper"
)

func card(title, year, runtime, genre, ratingsBar, votes, desc string) string {
	return fmt.Sprintf(`
  <div class="lister-item mode-advanced">
    <div class="lister-item-content">
      <h3 class="lister-item-header"><a href="#">%s</a>
        <span class="lister-item-year">%s</span></h3>
      <p class="text-muted"><span class="runtime">%s</span>
        <span class="genre">%s</span></p>
      <div class="ratings-bar">%s</div>
      <p class="text-muted">%s</p>
      <p class="sort-num_votes-visible"><span name="nv" data-value="%s">%s</span></p>
    </div>
  </div>`, title, year, runtime, genre, ratingsBar, desc, votes, votes)
}

func listingPage() string {
	return `<html><body><div class="lister-list">` +
		card("Logan", "(2017)", "137 min", "Action, Drama, Sci-Fi", "8.1 77 Metascore", "622775", "Mutants.") +
		card("Get Out", "(2017)", "104 min", "Horror, Mystery, Thriller", "7.7 85 Metascore", "507950", "A visit.") +
		card("Wonder Woman", "(2017)", "141 min", "Action, Adventure, Fantasy", "7.4 76 Metascore", "566394", "Diana.") +
		card("Dunkirk", "(2017)", "106 min", "Action, Drama, History", "7.8 94 Metascore", "555000", "Evacuation.") +
		card("Obscure Indie", "(2017)", "96 min", "Drama", "6.2", "1523", "Quiet.") +
		`</div></body></html>`
}

func orchestratorConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	return &config.Config{
		Source: config.SourceConfig{
			BaseURL: baseURL,
			Count:   50,
		},
		HTTP: config.HttpConfig{
			UserAgent:        "moviestats-test/1.0",
			ConnectTimeoutMS: 2000,
			TotalTimeoutMS:   5000,
			MaxRetries:       1,
			BackoffMinMS:     10,
			BackoffMaxMS:     20,
			JitterPct:        0,
		},
		RateLimit: config.RateLimitConfig{
			MaxConcurrentPerHost: 1,
			RPM:                  100,
		},
		RobotsCacheTTLHours: 12,
		Normalize: config.NormalizeConfig{
			TrimNBSP:        true,
			CollapseSpaces:  true,
			MaxPreviewChars: 120,
		},
		Report: config.ReportConfig{
			TopN:          3,
			MinVotes:      10000,
			OutputDir:     t.TempDir(),
			ChartWidthPX:  640,
			ChartHeightPX: 400,
		},
	}
}

func listingSelectors() *scraper.Selectors {
	return &scraper.Selectors{
		ListContainer:        "div.lister-list",
		CardSelectors:        "div.lister-item.mode-advanced",
		TitleSelectors:       []string{"h3.lister-item-header a"},
		YearSelectors:        []string{"span.lister-item-year"},
		RuntimeSelectors:     []string{"span.runtime"},
		GenreSelectors:       []string{"span.genre"},
		RatingsBarSelectors:  []string{"div.ratings-bar"},
		VotesSelectors:       []string{"p.sort-num_votes-visible span[name='nv']"},
		DescriptionSelectors: []string{".lister-item-content p:nth-of-type(2)"},
	}
}

func TestOrchestratorRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listingPage()))
	}))
	defer srv.Close()

	cfg := orchestratorConfig(t, srv.URL)
	logger := observability.NewLogger("", "error")
	normalizer := normalize.NewNormalizer(cfg)
	scr := scraper.NewScraper(listingSelectors(), normalizer)
	f := fetcher.NewFetcher(cfg, logger)

	var out bytes.Buffer
	o := NewOrchestrator(cfg, logger, f, scr, normalizer, &out)

	stats, err := o.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 5, stats.Cards)
	require.Equal(t, 5, stats.WithRating)
	require.Equal(t, 4, stats.WithMetascore)
	require.NotEmpty(t, stats.DocumentHash)
	require.Len(t, stats.Charts, 2)

	for _, chart := range stats.Charts {
		info, err := os.Stat(chart)
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	}
	require.Equal(t, "ratings_hist.png", filepath.Base(stats.Charts[0]))
	require.Equal(t, "rating_metascore.png", filepath.Base(stats.Charts[1]))

	// Top table: ranked by rating, min_votes filters the indie out
	rendered := out.String()
	require.Contains(t, rendered, "Logan")
	require.Contains(t, rendered, "Dunkirk")
	require.NotContains(t, rendered, "Obscure Indie")

	require.NotNil(t, stats.Correlation)
	require.Equal(t, 4, stats.Correlation.N)
	require.Contains(t, rendered, "Pearson r")
}

func TestOrchestratorRunNoCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>maintenance</p></body></html>"))
	}))
	defer srv.Close()

	cfg := orchestratorConfig(t, srv.URL)
	logger := observability.NewLogger("", "error")
	normalizer := normalize.NewNormalizer(cfg)
	scr := scraper.NewScraper(listingSelectors(), normalizer)
	f := fetcher.NewFetcher(cfg, logger)

	o := NewOrchestrator(cfg, logger, f, scr, normalizer, &bytes.Buffer{})

	_, err := o.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no listing cards")
}

func TestOrchestratorRunServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := orchestratorConfig(t, srv.URL)
	logger := observability.NewLogger("", "error")
	normalizer := normalize.NewNormalizer(cfg)
	scr := scraper.NewScraper(listingSelectors(), normalizer)
	f := fetcher.NewFetcher(cfg, logger)

	o := NewOrchestrator(cfg, logger, f, scr, normalizer, &bytes.Buffer{})

	_, err := o.Run(context.Background())
	require.Error(t, err)
}
