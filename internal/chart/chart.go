// Package chart renders PNG charts for trend results.
package chart

import (
	"fmt"
	"image/color"

	"github.com/huangsam/wikitrend/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	lineColor      = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	peakColor      = color.RGBA{R: 220, G: 50, B: 47, A: 255}
	predictedColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	truthColor     = color.RGBA{R: 133, G: 153, B: 0, A: 255}
)

// WriteSeriesChart renders the daily aggregate series as a line chart with
// detected peaks marked as scatter points.
func WriteSeriesChart(result schema.SeriesResult, path string) error {
	p := plot.New()
	p.Title.Text = "Daily Pageviews"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Pageviews"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}

	points := make(plotter.XYs, len(result.Series.Points))
	for i, pt := range result.Series.Points {
		points[i].X = float64(pt.Date.Unix())
		points[i].Y = float64(pt.Views)
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("error building series line: %w", err)
	}
	line.Color = lineColor
	line.Width = vg.Points(2)
	p.Add(line)

	if len(result.Peaks) > 0 {
		peakPoints := make(plotter.XYs, len(result.Peaks))
		for i, pk := range result.Peaks {
			peakPoints[i].X = float64(pk.Date.Unix())
			peakPoints[i].Y = float64(pk.Views)
		}

		scatter, err := plotter.NewScatter(peakPoints)
		if err != nil {
			return fmt.Errorf("error building peak markers: %w", err)
		}
		scatter.GlyphStyle.Color = peakColor
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add("peak", scatter)
	}

	p.Add(plotter.NewGrid())

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// WriteYearChart renders yearly total pageviews as a bar chart.
func WriteYearChart(result schema.YearComparisonResult, path string) error {
	p := plot.New()
	p.Title.Text = "Pageviews by Year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Pageviews"

	values := make(plotter.Values, len(result.Years))
	labels := make([]string, len(result.Years))
	for i, y := range result.Years {
		values[i] = float64(y.Views)
		labels[i] = fmt.Sprintf("%d", y.Year)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("error building year bars: %w", err)
	}
	bars.Color = lineColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// WriteTopArticlesChart renders the ranked article totals as a bar chart.
func WriteTopArticlesChart(result schema.TopArticlesResult, path string) error {
	p := plot.New()
	p.Title.Text = "Top Articles by Pageviews"
	p.X.Label.Text = "Article"
	p.Y.Label.Text = "Pageviews"

	values := make(plotter.Values, len(result.Articles))
	labels := make([]string, len(result.Articles))
	for i, a := range result.Articles {
		values[i] = float64(a.Views)
		labels[i] = a.Article
	}

	bars, err := plotter.NewBarChart(values, vg.Points(25))
	if err != nil {
		return fmt.Errorf("error building article bars: %w", err)
	}
	bars.Color = lineColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.6
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// WriteCategoryChart renders predicted versus ground-truth category counts
// as grouped bars.
func WriteCategoryChart(result schema.CategoryReport, path string) error {
	p := plot.New()
	p.Title.Text = "Predicted vs Ground Truth Categories"
	p.X.Label.Text = "Category"
	p.Y.Label.Text = "Articles"

	predicted := make(plotter.Values, len(result.Counts))
	truth := make(plotter.Values, len(result.Counts))
	labels := make([]string, len(result.Counts))
	for i, c := range result.Counts {
		predicted[i] = float64(c.Predicted)
		truth[i] = float64(c.GroundTruth)
		labels[i] = c.Category
	}

	barWidth := vg.Points(12)

	predictedBars, err := plotter.NewBarChart(predicted, barWidth)
	if err != nil {
		return fmt.Errorf("error building predicted bars: %w", err)
	}
	predictedBars.Color = predictedColor
	predictedBars.LineStyle.Width = vg.Length(0)
	predictedBars.Offset = -barWidth / 2

	truthBars, err := plotter.NewBarChart(truth, barWidth)
	if err != nil {
		return fmt.Errorf("error building ground-truth bars: %w", err)
	}
	truthBars.Color = truthColor
	truthBars.LineStyle.Width = vg.Length(0)
	truthBars.Offset = barWidth / 2

	p.Add(predictedBars, truthBars)
	p.Legend.Add("predicted", predictedBars)
	p.Legend.Add("ground truth", truthBars)
	p.Legend.Top = true

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.6
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}
