package util

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"weathereats/models/venue"
)

// PlotRankingScores renders a stacked bar chart of each venue's sub-scores,
// in ranking order, as a standalone HTML page.
func PlotRankingScores(venues []venue.Venue, subtitle string, w io.Writer) error {
	names := make([]string, 0, len(venues))
	var distance, amenity, cuisine []opts.BarData
	for _, v := range venues {
		label := v.DisplayName()
		if label == "" {
			label = v.VenueID
		}
		names = append(names, label)

		var b venue.ScoreBreakdown
		if v.Breakdown != nil {
			b = *v.Breakdown
		}
		distance = append(distance, opts.BarData{Name: label, Value: b.Distance})
		amenity = append(amenity, opts.BarData{Name: label, Value: b.Amenity})
		cuisine = append(cuisine, opts.BarData{Name: label, Value: b.Cuisine})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Venue Suitability",
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Venue suitability by factor",
			Subtitle: subtitle,
		}),
	)

	bar.SetXAxis(names).
		AddSeries("Distance", distance).
		AddSeries("Amenity", amenity).
		AddSeries("Cuisine", cuisine).
		SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "score"}))

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// WriteRankingChart renders PlotRankingScores into an HTML file.
func WriteRankingChart(venues []venue.Venue, subtitle, filePath string) error {
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	return PlotRankingScores(venues, subtitle, f)
}
