package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RobotsCache fetches and caches robots.txt per host. Fetch or parse
// problems degrade to "allowed": the source decides with status codes,
// robots.txt is honored on a best-effort basis.
type RobotsCache struct {
	cache     map[string]*robotsEntry
	ttl       time.Duration
	userAgent string
	mu        sync.RWMutex
}

type robotsEntry struct {
	disallow  []string
	expiresAt time.Time
}

func NewRobotsCache(ttl time.Duration, userAgent string) *RobotsCache {
	return &RobotsCache{
		cache:     make(map[string]*robotsEntry),
		ttl:       ttl,
		userAgent: userAgent,
	}
}

func (rc *RobotsCache) IsAllowed(ctx context.Context, host, path string, client *http.Client) (bool, error) {
	rc.mu.RLock()
	cached, exists := rc.cache[host]
	rc.mu.RUnlock()

	if exists && time.Now().Before(cached.expiresAt) {
		return !isDisallowed(cached.disallow, path), nil
	}

	robotsURL := fmt.Sprintf("https://%s/robots.txt", host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return true, nil
	}

	resp, err := client.Do(req)
	if err != nil {
		// Network error: assume allowed
		return true, nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// No robots.txt: assume allowed
		return true, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, nil
	}

	disallow := parseRobots(string(body), rc.userAgent)

	rc.mu.Lock()
	rc.cache[host] = &robotsEntry{
		disallow:  disallow,
		expiresAt: time.Now().Add(rc.ttl),
	}
	rc.mu.Unlock()

	return !isDisallowed(disallow, path), nil
}

// parseRobots collects the Disallow prefixes of the groups that apply to
// the wildcard agent or to our user agent. Allow directives and wildcard
// patterns are not interpreted.
func parseRobots(content, userAgent string) []string {
	var disallow []string
	applies := false
	agentLower := strings.ToLower(userAgent)

	for _, line := range strings.Split(content, "\n") {
		if idx := strings.Index(line, "#"); idx > -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "user-agent":
			agent := strings.ToLower(value)
			applies = agent == "*" || strings.Contains(agentLower, agent)
		case "disallow":
			if applies && value != "" {
				disallow = append(disallow, value)
			}
		}
	}

	return disallow
}

func isDisallowed(disallow []string, path string) bool {
	if path == "" {
		path = "/"
	}
	for _, prefix := range disallow {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
