package scraper

// Selectors is the CSS selector set for one listing layout. Per-field
// selectors are ordered fallback lists, tried in turn until one matches.
type Selectors struct {
	ListContainer        string   `yaml:"list_container"`
	CardSelectors        string   `yaml:"card_selectors"`
	TitleSelectors       []string `yaml:"title_selectors"`
	YearSelectors        []string `yaml:"year_selectors"`
	RuntimeSelectors     []string `yaml:"runtime_selectors"`
	GenreSelectors       []string `yaml:"genre_selectors"`
	RatingsBarSelectors  []string `yaml:"ratings_bar_selectors"`
	VotesSelectors       []string `yaml:"votes_selectors"`
	DescriptionSelectors []string `yaml:"description_selectors"`
}

// RawListing holds the extracted text per field as parallel columns.
// All slices have identical length and index i across every column
// refers to the same listing card. A missing node yields "".
type RawListing struct {
	Titles       []string
	Years        []string
	Runtimes     []string
	Genres       []string
	RatingsBars  []string
	Votes        []string
	Descriptions []string
}

// Len returns the number of cards in the listing.
func (l *RawListing) Len() int {
	return len(l.Titles)
}

// Aligned reports whether every column has the same length.
func (l *RawListing) Aligned() bool {
	n := len(l.Titles)
	return len(l.Years) == n &&
		len(l.Runtimes) == n &&
		len(l.Genres) == n &&
		len(l.RatingsBars) == n &&
		len(l.Votes) == n &&
		len(l.Descriptions) == n
}
