package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"moviestats/internal/movie"
	"moviestats/internal/normalize"
)

// RenderTopTable writes the ranked records as a text table. Missing
// rating or metascore render as "-"; descriptions are truncated to the
// configured preview length.
func RenderTopTable(w io.Writer, records []*movie.Record, normalizer *normalize.Normalizer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Title", "Year", "Runtime", "Genres", "Rating", "Metascore", "Votes", "Description"})

	for i, rec := range records {
		t.AppendRow(table.Row{
			i + 1,
			rec.Title,
			rec.Year,
			fmt.Sprintf("%d min", rec.RuntimeMin),
			strings.Join(rec.Genres, ", "),
			formatRating(rec.Rating),
			formatMetascore(rec.Metascore),
			rec.Votes,
			normalizer.TruncatePreview(rec.Description),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func formatRating(rating *float64) string {
	if rating == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *rating)
}

func formatMetascore(metascore *int) string {
	if metascore == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *metascore)
}
