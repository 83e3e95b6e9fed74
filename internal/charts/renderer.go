package charts

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/crashlens/crashlens/internal/analysis"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Renderer writes static PNG charts into an output directory. Each chart of
// the run is a separate artifact.
type Renderer struct {
	dir    string
	width  int
	height int
}

func NewRenderer(dir string) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chart output dir: %w", err)
	}
	return &Renderer{dir: dir, width: 1280, height: 720}, nil
}

// SaveBarChart renders buckets as a categorical bar chart artifact.
func (r *Renderer) SaveBarChart(filename, title, yAxisName string, buckets []analysis.Bucket) error {
	return r.save(filename, func(w io.Writer) error {
		return RenderBarChart(w, title, yAxisName, r.width, r.height, buckets)
	})
}

// SaveTimeSeries renders a date-indexed line chart artifact.
func (r *Renderer) SaveTimeSeries(filename, title, yAxisName string, xs []time.Time, ys []float64) error {
	return r.save(filename, func(w io.Writer) error {
		return RenderTimeSeries(w, title, yAxisName, r.width, r.height, xs, ys)
	})
}

// SaveDecomposition renders the trend, seasonal and residual components as
// three separate line chart artifacts.
func (r *Renderer) SaveDecomposition(d *analysis.Decomposition) error {
	components := []struct {
		filename string
		title    string
		values   []float64
	}{
		{"decomposition_trend.png", "Trend", d.Trend},
		{"decomposition_seasonal.png", "Seasonality", d.Seasonal},
		{"decomposition_residual.png", "Residuals", d.Residual},
	}

	for _, c := range components {
		xs, ys := dropNaN(d.Dates, c.values)
		if err := r.SaveTimeSeries(c.filename, c.title, "Crashes per Day", xs, ys); err != nil {
			return fmt.Errorf("render %s: %w", c.filename, err)
		}
	}
	return nil
}

func (r *Renderer) save(filename string, render func(io.Writer) error) error {
	path := filepath.Join(r.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("render %s: %w", filename, err)
	}
	return nil
}

// RenderBarChart draws a categorical bar chart as PNG.
func RenderBarChart(w io.Writer, title, yAxisName string, width, height int, buckets []analysis.Bucket) error {
	if len(buckets) == 0 {
		return fmt.Errorf("bar chart %q has no buckets", title)
	}

	bars := make([]chart.Value, 0, len(buckets))
	for _, b := range buckets {
		bars = append(bars, chart.Value{Label: b.Key, Value: float64(b.Value)})
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth(width, len(bars)),
		BarSpacing: 20,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 60}},
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis:      chart.YAxis{Name: yAxisName},
		Bars:       bars,
	}
	return graph.Render(chart.PNG, w)
}

// RenderTimeSeries draws a date-indexed line chart as PNG.
func RenderTimeSeries(w io.Writer, title, yAxisName string, width, height int, xs []time.Time, ys []float64) error {
	if len(xs) < 2 || len(xs) != len(ys) {
		return fmt.Errorf("time series %q needs at least two aligned points, got %d/%d", title, len(xs), len(ys))
	}

	graph := chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		YAxis:      chart.YAxis{Name: yAxisName},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    title,
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

func barWidth(chartWidth, bars int) int {
	if bars == 0 {
		return 1
	}
	w := chartWidth/bars - 30
	if w < 10 {
		w = 10
	}
	if w > 80 {
		w = 80
	}
	return w
}

// dropNaN removes positions where the component is NaN, keeping dates and
// values aligned. The decomposition trend is NaN at both edges.
func dropNaN(dates []time.Time, values []float64) ([]time.Time, []float64) {
	xs := make([]time.Time, 0, len(values))
	ys := make([]float64, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		xs = append(xs, dates[i])
		ys = append(ys, v)
	}
	return xs, ys
}
