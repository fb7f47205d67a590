package main

import (
	"log"
	"os"

	"moviestats/internal/app"
	"moviestats/internal/config"
	"moviestats/internal/fetcher"
	"moviestats/internal/normalize"
	"moviestats/internal/observability"
	"moviestats/internal/scraper"
)

func main() {
	configPath := "configs/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := observability.NewLogger(cfg.Observability.LogPath, cfg.Observability.LogLevel)

	selectors, err := cfg.LoadListingSelectors()
	if err != nil {
		log.Fatalf("Failed to load selectors: %v", err)
	}

	normalizer := normalize.NewNormalizer(cfg)
	scr := scraper.NewScraper(selectors, normalizer)

	var pageFetcher app.PageFetcher
	if cfg.Source.RenderJS {
		pageFetcher = fetcher.NewRodFetcher(cfg, logger)
	} else {
		pageFetcher = fetcher.NewFetcher(cfg, logger)
	}

	orchestrator := app.NewOrchestrator(cfg, logger, pageFetcher, scr, normalizer, os.Stdout)

	ctx, cancel := app.GracefulShutdown(logger)
	defer cancel()

	stats, err := orchestrator.Run(ctx)
	if err != nil {
		logger.Error("Run failed", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("Done",
		"url", stats.URL,
		"cards", stats.Cards,
		"charts", len(stats.Charts),
	)
}
