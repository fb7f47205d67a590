package config

import (
	"fmt"
	"net/url"
	"time"
)

type Config struct {
	Source              SourceConfig        `yaml:"source"`
	HTTP                HttpConfig          `yaml:"http"`
	RateLimit           RateLimitConfig     `yaml:"rate_limit"`
	RobotsCacheTTLHours int                 `yaml:"robots_cache_ttl_hours"`
	Rod                 RodConfig           `yaml:"rod"`
	SelectorsFile       string              `yaml:"selectors_file"`
	Normalize           NormalizeConfig     `yaml:"normalize"`
	Report              ReportConfig        `yaml:"report"`
	Observability       ObservabilityConfig `yaml:"observability"`
}

// SourceConfig describes the single listing page to fetch. The query
// parameters mirror the advanced-search form of the movie database.
type SourceConfig struct {
	BaseURL         string `yaml:"base_url"`
	ReleaseDateFrom string `yaml:"release_date_from"`
	ReleaseDateTo   string `yaml:"release_date_to"`
	Sort            string `yaml:"sort"`
	Count           int    `yaml:"count"`
	RenderJS        bool   `yaml:"render_js"`
}

type HttpConfig struct {
	UserAgent                 string `yaml:"user_agent"`
	AcceptLanguage            string `yaml:"accept_language"`
	ConnectTimeoutMS          int    `yaml:"connect_timeout_ms"`
	TotalTimeoutMS            int    `yaml:"total_timeout_ms"`
	MaxRetries                int    `yaml:"max_retries"`
	MaxIdleConnections        int    `yaml:"max_idle_connections"`
	MaxIdleConnectionsPerHost int    `yaml:"max_idle_connections_per_host"`
	IdleConnectionTimeoutS    int    `yaml:"idle_connection_timeout_s"`
	BackoffMinMS              int    `yaml:"backoff_min_ms"`
	BackoffMaxMS              int    `yaml:"backoff_max_ms"`
	JitterPct                 int    `yaml:"jitter_pct"`
}

type RateLimitConfig struct {
	MaxConcurrentPerHost int `yaml:"max_concurrent_per_host"`
	RPM                  int `yaml:"rpm"`
}

type RodConfig struct {
	Enabled          bool   `yaml:"enabled"`
	ChromePath       string `yaml:"chrome_path"`
	PageTimeoutS     int    `yaml:"page_timeout_s"`
	WaitLoadTimeoutS int    `yaml:"wait_load_timeout_s"`
	LazyLoadDelayS   int    `yaml:"lazy_load_delay_s"`
}

type NormalizeConfig struct {
	TrimNBSP        bool `yaml:"trim_nbsp"`
	CollapseSpaces  bool `yaml:"collapse_spaces"`
	MaxPreviewChars int  `yaml:"max_preview_chars"`
}

type ReportConfig struct {
	TopN          int    `yaml:"top_n"`
	MinVotes      int    `yaml:"min_votes"`
	OutputDir     string `yaml:"output_dir"`
	ChartWidthPX  int    `yaml:"chart_width_px"`
	ChartHeightPX int    `yaml:"chart_height_px"`
}

type ObservabilityConfig struct {
	LogPath  string `yaml:"log_path"`
	LogLevel string `yaml:"log_level"`
}

// ListingURL assembles the final search URL from the source section.
// Empty parameters are omitted so the config can stay minimal.
func (c *Config) ListingURL() (string, error) {
	u, err := url.Parse(c.Source.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid source.base_url: %w", err)
	}

	q := u.Query()
	if c.Source.ReleaseDateFrom != "" || c.Source.ReleaseDateTo != "" {
		q.Set("release_date", fmt.Sprintf("%s,%s", c.Source.ReleaseDateFrom, c.Source.ReleaseDateTo))
	}
	if c.Source.Sort != "" {
		q.Set("sort", c.Source.Sort)
	}
	if c.Source.Count > 0 {
		q.Set("count", fmt.Sprintf("%d", c.Source.Count))
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Validation
func (c *Config) Validate() error {
	if c.Source.BaseURL == "" {
		return fmt.Errorf("source.base_url is required")
	}
	if c.Source.Count < 0 {
		return fmt.Errorf("source.count must be >= 0")
	}
	if c.HTTP.UserAgent == "" {
		return fmt.Errorf("http.user_agent is required")
	}
	if c.HTTP.ConnectTimeoutMS <= 0 {
		return fmt.Errorf("http.connect_timeout_ms must be > 0")
	}
	if c.HTTP.TotalTimeoutMS <= 0 {
		return fmt.Errorf("http.total_timeout_ms must be > 0")
	}
	if c.HTTP.MaxRetries < 0 {
		return fmt.Errorf("http.max_retries must be >= 0")
	}
	if c.HTTP.BackoffMinMS <= 0 {
		return fmt.Errorf("http.backoff_min_ms must be > 0")
	}
	if c.HTTP.BackoffMaxMS <= 0 {
		return fmt.Errorf("http.backoff_max_ms must be > 0")
	}
	if c.HTTP.BackoffMinMS > c.HTTP.BackoffMaxMS {
		return fmt.Errorf("http.backoff_min_ms must be <= http.backoff_max_ms")
	}
	if c.HTTP.JitterPct < 0 || c.HTTP.JitterPct > 100 {
		return fmt.Errorf("http.jitter_pct must be between 0 and 100")
	}
	if c.RateLimit.MaxConcurrentPerHost <= 0 {
		return fmt.Errorf("rate_limit.max_concurrent_per_host must be > 0")
	}
	if c.RateLimit.RPM <= 0 {
		return fmt.Errorf("rate_limit.rpm must be > 0")
	}
	if c.RobotsCacheTTLHours <= 0 {
		return fmt.Errorf("robots_cache_ttl_hours must be > 0")
	}
	if c.SelectorsFile == "" {
		return fmt.Errorf("selectors_file is required")
	}
	if c.Report.TopN <= 0 {
		return fmt.Errorf("report.top_n must be > 0")
	}
	if c.Report.MinVotes < 0 {
		return fmt.Errorf("report.min_votes must be >= 0")
	}
	if c.Report.OutputDir == "" {
		return fmt.Errorf("report.output_dir is required")
	}
	if c.Report.ChartWidthPX <= 0 || c.Report.ChartHeightPX <= 0 {
		return fmt.Errorf("report.chart_width_px and report.chart_height_px must be > 0")
	}
	if c.Normalize.MaxPreviewChars <= 0 {
		return fmt.Errorf("normalize.max_preview_chars must be > 0")
	}
	if c.Observability.LogPath == "" {
		return fmt.Errorf("observability.log_path is required")
	}
	if c.Observability.LogLevel == "" {
		return fmt.Errorf("observability.log_level is required")
	}
	if c.Source.RenderJS && !c.Rod.Enabled {
		return fmt.Errorf("source.render_js requires rod.enabled")
	}
	if c.Rod.Enabled {
		if c.Rod.ChromePath == "" {
			return fmt.Errorf("rod.chrome_path is required when rod.enabled is true")
		}
		if c.Rod.PageTimeoutS <= 0 {
			return fmt.Errorf("rod.page_timeout_s must be > 0")
		}
		if c.Rod.WaitLoadTimeoutS <= 0 {
			return fmt.Errorf("rod.wait_load_timeout_s must be > 0")
		}
		if c.Rod.LazyLoadDelayS < 0 {
			return fmt.Errorf("rod.lazy_load_delay_s must be >= 0")
		}
	}
	return nil
}

// Getters
func (c *Config) GetConnectTimeout() time.Duration {
	return time.Duration(c.HTTP.ConnectTimeoutMS) * time.Millisecond
}

func (c *Config) GetTotalTimeout() time.Duration {
	return time.Duration(c.HTTP.TotalTimeoutMS) * time.Millisecond
}

func (c *Config) GetIdleConnectionTimeout() time.Duration {
	return time.Duration(c.HTTP.IdleConnectionTimeoutS) * time.Second
}

func (c *Config) GetBackoffMin() time.Duration {
	return time.Duration(c.HTTP.BackoffMinMS) * time.Millisecond
}

func (c *Config) GetBackoffMax() time.Duration {
	return time.Duration(c.HTTP.BackoffMaxMS) * time.Millisecond
}

func (c *Config) GetRobotsCacheTTL() time.Duration {
	return time.Duration(c.RobotsCacheTTLHours) * time.Hour
}

func (c *Config) GetRodPageTimeout() time.Duration {
	return time.Duration(c.Rod.PageTimeoutS) * time.Second
}

func (c *Config) GetRodWaitLoadTimeout() time.Duration {
	return time.Duration(c.Rod.WaitLoadTimeoutS) * time.Second
}

func (c *Config) GetRodLazyLoadDelay() time.Duration {
	return time.Duration(c.Rod.LazyLoadDelayS) * time.Second
}
