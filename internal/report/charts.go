package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"moviestats/internal/movie"
)

const histogramBins = 10

// RatingsHistogram writes a histogram of the present user ratings as a
// PNG. Rows without a rating are skipped.
func RatingsHistogram(records []*movie.Record, path string, widthPX, heightPX int) error {
	var values plotter.Values
	for _, rec := range records {
		if rec.HasRating() {
			values = append(values, *rec.Rating)
		}
	}
	if len(values) == 0 {
		return fmt.Errorf("no ratings to plot")
	}

	p := plot.New()
	p.Title.Text = "User rating distribution"
	p.X.Label.Text = "Rating"
	p.Y.Label.Text = "Movies"

	hist, err := plotter.NewHist(values, histogramBins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	p.Add(hist)

	if err := p.Save(pxLength(widthPX), pxLength(heightPX), path); err != nil {
		return fmt.Errorf("failed to save histogram: %w", err)
	}
	return nil
}

// RatingMetascoreScatter writes a scatter of rating (scaled to the 0-100
// metascore range) against metascore, with the identity line for
// reference. Rows missing either value are skipped.
func RatingMetascoreScatter(records []*movie.Record, path string, widthPX, heightPX int) error {
	var pts plotter.XYs
	for _, rec := range records {
		if !rec.HasRating() || !rec.HasMetascore() {
			continue
		}
		pts = append(pts, plotter.XY{
			X: *rec.Rating * 10,
			Y: float64(*rec.Metascore),
		})
	}
	if len(pts) == 0 {
		return fmt.Errorf("no rating/metascore pairs to plot")
	}

	p := plot.New()
	p.Title.Text = "User rating vs metascore"
	p.X.Label.Text = "User rating x10"
	p.Y.Label.Text = "Metascore"
	p.X.Min, p.X.Max = 0, 100
	p.Y.Min, p.Y.Max = 0, 100

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}
	p.Add(scatter)

	identity := plotter.XYs{{X: 0, Y: 0}, {X: 100, Y: 100}}
	line, err := plotter.NewLine(identity)
	if err != nil {
		return fmt.Errorf("failed to build identity line: %w", err)
	}
	p.Add(line)

	if err := p.Save(pxLength(widthPX), pxLength(heightPX), path); err != nil {
		return fmt.Errorf("failed to save scatter: %w", err)
	}
	return nil
}

func pxLength(px int) vg.Length {
	return vg.Points(float64(px) * 0.75)
}
