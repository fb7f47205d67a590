package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TextCleaner normalizes extracted text. Satisfied by normalize.Normalizer.
type TextCleaner interface {
	CleanText(text string) string
}

type Scraper struct {
	selectors *Selectors
	cleaner   TextCleaner
}

func NewScraper(selectors *Selectors, cleaner TextCleaner) *Scraper {
	return &Scraper{
		selectors: selectors,
		cleaner:   cleaner,
	}
}

// ParseListing extracts the raw text columns from a listing page.
// Every matched card contributes exactly one entry to every column, so
// the columns stay index-aligned even when individual fields are absent.
// Cards without a title (ad slots, promo blocks) are skipped whole.
func (s *Scraper) ParseListing(html string) (*RawListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	root := doc.Selection
	if s.selectors.ListContainer != "" {
		container := doc.Find(s.selectors.ListContainer)
		if container.Length() > 0 {
			root = container
		}
	}

	listing := &RawListing{}

	root.Find(s.selectors.CardSelectors).Each(func(i int, sel *goquery.Selection) {
		title := s.extract(sel, s.selectors.TitleSelectors)
		if title == "" {
			return
		}

		listing.Titles = append(listing.Titles, title)
		listing.Years = append(listing.Years, s.extract(sel, s.selectors.YearSelectors))
		listing.Runtimes = append(listing.Runtimes, s.extract(sel, s.selectors.RuntimeSelectors))
		listing.Genres = append(listing.Genres, s.extract(sel, s.selectors.GenreSelectors))
		listing.RatingsBars = append(listing.RatingsBars, s.extract(sel, s.selectors.RatingsBarSelectors))
		listing.Votes = append(listing.Votes, s.extract(sel, s.selectors.VotesSelectors))
		listing.Descriptions = append(listing.Descriptions, s.extract(sel, s.selectors.DescriptionSelectors))
	})

	if !listing.Aligned() {
		return nil, fmt.Errorf("extracted columns are misaligned")
	}

	return listing, nil
}

// extract tries selectors in order; first one producing text wins.
// Falls back to the data-value attribute, which the listing uses for
// machine-readable vote counts.
func (s *Scraper) extract(sel *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		node := sel.Find(selector).First()
		if node.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(node.Text())
		if text != "" {
			return s.cleaner.CleanText(text)
		}
		if attr, exists := node.Attr("data-value"); exists && attr != "" {
			return strings.TrimSpace(attr)
		}
	}
	return ""
}
