package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"moviestats/internal/config"
	"moviestats/internal/observability"
)

// RodFetcher renders the listing in a headless browser. Used when the
// source serves an empty shell and fills listing cards in with scripts.
type RodFetcher struct {
	cfg    *config.Config
	logger *observability.Logger
}

func NewRodFetcher(cfg *config.Config, logger *observability.Logger) *RodFetcher {
	return &RodFetcher{
		cfg:    cfg,
		logger: logger,
	}
}

func (r *RodFetcher) Fetch(ctx context.Context, urlStr string) (*FetchResponse, error) {
	l := launcher.New().
		Bin(r.cfg.Rod.ChromePath).
		Headless(true)

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			r.logger.Warn("Failed to close browser", "error", err.Error())
		}
	}()

	page, err := browser.Page(proto.TargetCreateTarget{URL: urlStr})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	page = page.Timeout(r.cfg.GetRodPageTimeout())

	if err := page.Timeout(r.cfg.GetRodWaitLoadTimeout()).WaitLoad(); err != nil {
		return nil, fmt.Errorf("page load timed out: %w", err)
	}

	// Give lazy-loaded card blocks time to settle
	if delay := r.cfg.GetRodLazyLoadDelay(); delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered HTML: %w", err)
	}

	r.logger.Debug("Rendered page", "url", urlStr, "body_bytes", len(html))

	return &FetchResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(html),
		URL:        urlStr,
	}, nil
}
