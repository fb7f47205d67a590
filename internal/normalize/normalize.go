package normalize

import (
	"regexp"
	"strings"

	"moviestats/internal/config"
)

var spacesRe = regexp.MustCompile(`\s+`)

type Normalizer struct {
	cfg *config.Config
}

func NewNormalizer(cfg *config.Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// CleanText normalizes scraped text: NBSP to plain space, whitespace
// collapsed, surrounding space trimmed.
func (n *Normalizer) CleanText(text string) string {
	if n.cfg.Normalize.TrimNBSP {
		text = strings.ReplaceAll(text, "\u00A0", " ")
	}

	if n.cfg.Normalize.CollapseSpaces {
		text = spacesRe.ReplaceAllString(text, " ")
	}

	return strings.TrimSpace(text)
}

// TruncatePreview shortens a description to max_preview_chars, breaking
// on the last word boundary before the limit.
func (n *Normalizer) TruncatePreview(text string) string {
	if len(text) <= n.cfg.Normalize.MaxPreviewChars {
		return text
	}

	truncated := text[:n.cfg.Normalize.MaxPreviewChars]
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > 0 {
		return text[:lastSpace] + "…"
	}

	return truncated + "…"
}
