package movie

// MaxGenres is the number of genre columns a record carries; the listing
// never shows more than four categories per title.
const MaxGenres = 4

// Record is one row of the assembled listing table. Rating and Metascore
// are pointers because either can be absent on the page; a nil value is
// the missing marker, never a zero sentinel.
type Record struct {
	Title       string
	Year        int
	Genres      []string
	RuntimeMin  int
	Rating      *float64
	Metascore   *int
	Votes       int
	Description string
}

func (r *Record) HasRating() bool {
	return r.Rating != nil
}

func (r *Record) HasMetascore() bool {
	return r.Metascore != nil
}
