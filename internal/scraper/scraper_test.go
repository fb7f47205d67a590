package scraper

import (
	"regexp"
	"strings"
	"testing"
)

const listingFixture = `
<html><body>
<div class="lister-list">
  <div class="lister-item mode-advanced">
    <div class="lister-item-content">
      <h3 class="lister-item-header">
        <a href="/title/tt1/">Logan</a>
        <span class="lister-item-year">(2017)</span>
      </h3>
      <p class="text-muted">
        <span class="runtime">137 min</span>
        <span class="genre">Action, Drama, Sci-Fi</span>
      </p>
      <div class="ratings-bar">
        8.1
        77        Metascore
      </div>
      <p class="text-muted">In a future where mutants are nearly extinct.</p>
      <p class="sort-num_votes-visible">
        Votes: <span name="nv" data-value="622775">622,775</span>
      </p>
    </div>
  </div>
  <div class="lister-item mode-advanced">
    <div class="lister-item-content">
      <h3 class="lister-item-header">
        <a href="/title/tt2/">Obscure Indie</a>
        <span class="lister-item-year">(2017)</span>
      </h3>
      <p class="text-muted">
        <span class="runtime">96 min</span>
        <span class="genre">Drama</span>
      </p>
      <div class="ratings-bar">6.2</div>
      <p class="text-muted">A quiet film nobody reviewed.</p>
      <p class="sort-num_votes-visible">
        Votes: <span name="nv" data-value="1523">1,523</span>
      </p>
    </div>
  </div>
  <div class="lister-item mode-advanced">
    <div class="lister-item-content">
      <h3 class="lister-item-header">
        <a href="/title/tt3/">Unrated Release</a>
        <span class="lister-item-year">(I) (2017)</span>
      </h3>
      <p class="text-muted">
        <span class="genre">Comedy</span>
      </p>
      <p class="text-muted">No ratings bar on this one.</p>
      <p class="sort-num_votes-visible">
        Votes: <span name="nv" data-value="87">87</span>
      </p>
    </div>
  </div>
</div>
</body></html>
`

var testSpacesRe = regexp.MustCompile(`\s+`)

// minimal stand-in for normalize.Normalizer
type testCleaner struct{}

func (testCleaner) CleanText(text string) string {
	text = strings.ReplaceAll(text, "\u00A0", " ")
	return strings.TrimSpace(testSpacesRe.ReplaceAllString(text, " "))
}

func testScraper(t *testing.T) *Scraper {
	t.Helper()
	selectors := &Selectors{
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
	return NewScraper(selectors, testCleaner{})
}

func TestParseListing(t *testing.T) {
	s := testScraper(t)

	listing, err := s.ParseListing(listingFixture)
	if err != nil {
		t.Fatalf("ParseListing failed: %v", err)
	}

	if listing.Len() != 3 {
		t.Fatalf("expected 3 cards, got %d", listing.Len())
	}
	if !listing.Aligned() {
		t.Fatalf("columns misaligned")
	}

	if listing.Titles[0] != "Logan" {
		t.Errorf("title[0] = %q", listing.Titles[0])
	}
	if listing.Years[2] != "(I) (2017)" {
		t.Errorf("year[2] = %q", listing.Years[2])
	}

	// Missing fields still occupy their slot
	if listing.Runtimes[2] != "" {
		t.Errorf("runtime[2] = %q, want empty", listing.Runtimes[2])
	}
	if listing.RatingsBars[2] != "" {
		t.Errorf("ratings_bar[2] = %q, want empty", listing.RatingsBars[2])
	}

	if listing.Votes[0] != "622,775" {
		t.Errorf("votes[0] = %q", listing.Votes[0])
	}
	if listing.Descriptions[1] != "A quiet film nobody reviewed." {
		t.Errorf("description[1] = %q", listing.Descriptions[1])
	}

	// Whitespace inside the ratings bar collapses but keeps both tokens
	if listing.RatingsBars[0] != "8.1 77 Metascore" {
		t.Errorf("ratings_bar[0] = %q", listing.RatingsBars[0])
	}
}

func TestParseListingEmptyDocument(t *testing.T) {
	s := testScraper(t)

	listing, err := s.ParseListing("<html><body><p>nothing here</p></body></html>")
	if err != nil {
		t.Fatalf("ParseListing failed: %v", err)
	}
	if listing.Len() != 0 {
		t.Errorf("expected 0 cards, got %d", listing.Len())
	}
}
