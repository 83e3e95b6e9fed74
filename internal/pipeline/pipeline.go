package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crashlens/crashlens/internal/analysis"
	"github.com/crashlens/crashlens/internal/charts"
	"github.com/crashlens/crashlens/internal/dataset"
	"github.com/crashlens/crashlens/internal/geomap"
	"github.com/crashlens/crashlens/internal/models"
)

// Map artifacts keep the filenames of the original analysis and land in the
// working directory; charts go under the configured output dir.
const (
	heatmapFile  = "nyc_heatmap.html"
	severityFile = "severity_map.html"
	clusterFile  = "nyc_crash_map.html"
)

// Run executes the full analysis: load, profile, aggregate, chart, decompose,
// map. Steps run strictly in sequence and the first failure aborts the run.
func Run(cfg *models.Config) error {
	ds, err := dataset.Load(cfg.DataFile)
	if err != nil {
		return err
	}

	fmt.Println("Dataset loaded successfully.")
	fmt.Println("Number of records:", len(ds.Records))
	fmt.Println("Columns:", strings.Join(ds.Columns, ", "))

	fmt.Println("\nDataset Summary:")
	dataset.WriteDescribeReport(os.Stdout, dataset.DescribeNumeric(ds.Frame))

	fmt.Println("\nMissing Value Summary:")
	dataset.WriteMissingReport(os.Stdout, dataset.MissingValues(ds.Frame), cfg.TopN)

	if err := renderCharts(cfg, ds.Records); err != nil {
		return err
	}
	if err := renderDecomposition(cfg, ds.Records); err != nil {
		return err
	}
	if err := renderMaps(cfg, ds.Records); err != nil {
		return err
	}

	fmt.Println("\nAnalysis complete. Generated maps:")
	fmt.Println("-", heatmapFile)
	fmt.Println("-", severityFile)
	fmt.Println("-", clusterFile)
	return nil
}

func renderCharts(cfg *models.Config, records []models.Collision) error {
	renderer, err := charts.NewRenderer(cfg.OutputDir)
	if err != nil {
		return err
	}

	bar := []struct {
		filename string
		title    string
		yAxis    string
		buckets  []analysis.Bucket
	}{
		{
			"top_contributing_factors.png",
			fmt.Sprintf("Top %d Contributing Factors to Crashes", cfg.TopN),
			"Number of Crashes",
			analysis.TopN(analysis.CountBy(records, analysis.ByFactor), cfg.TopN),
		},
		{
			"top_vehicle_types.png",
			fmt.Sprintf("Top %d Vehicle Types Involved in Crashes", cfg.TopN),
			"Number of Crashes",
			analysis.TopN(analysis.CountBy(records, analysis.ByVehicleType), cfg.TopN),
		},
		{
			"crash_types.png",
			"Types of Crashes and Their Frequencies",
			"Count",
			analysis.VictimTotals(records),
		},
		{
			"crashes_per_hour.png",
			"Number of Crashes per Hour of Day",
			"Number of Crashes",
			analysis.SortByKey(analysis.CountBy(records, analysis.ByHour)),
		},
		{
			"crashes_by_borough.png",
			"Distribution of Crashes by Borough",
			"Number of Crashes",
			analysis.TopN(analysis.CountBy(records, analysis.ByBorough), len(models.Boroughs)),
		},
		{
			"top_zip_codes.png",
			fmt.Sprintf("Top %d ZIP Codes by Number of Casualties", cfg.TopN),
			"Injured + Killed",
			analysis.TopN(analysis.ZipCasualtyTotals(records), cfg.TopN),
		},
	}

	for _, c := range bar {
		if err := renderer.SaveBarChart(c.filename, c.title, c.yAxis, c.buckets); err != nil {
			return err
		}
	}

	dates, values := analysis.MonthlySeries(analysis.CountBy(records, analysis.ByMonth))
	if err := renderer.SaveTimeSeries("monthly_crashes.png", "Number of Crashes per Month", "Number of Crashes", dates, values); err != nil {
		return err
	}

	fmt.Printf("\nCharts saved under %s.\n", cfg.OutputDir)
	return nil
}

func renderDecomposition(cfg *models.Config, records []models.Collision) error {
	daily := analysis.DailyCounts(records)
	decomp, err := analysis.Decompose(daily, cfg.DecompositionPeriod)
	if err != nil {
		return fmt.Errorf("decompose daily crash series: %w", err)
	}

	renderer, err := charts.NewRenderer(cfg.OutputDir)
	if err != nil {
		return err
	}
	return renderer.SaveDecomposition(decomp)
}

func renderMaps(cfg *models.Config, records []models.Collision) error {
	geo := geomap.CoordinateValid(records)
	builder := geomap.NewBuilder(cfg)

	if err := writeArtifact(heatmapFile, func(w io.Writer) error {
		return builder.WriteHeatmap(w, geo)
	}); err != nil {
		return err
	}
	fmt.Printf("Geospatial heatmap saved as %q.\n", heatmapFile)

	severitySample := geomap.Sample(geo, cfg.SeveritySampleSize, cfg.Seed)
	if err := writeArtifact(severityFile, func(w io.Writer) error {
		return builder.WriteSeverityMap(w, severitySample)
	}); err != nil {
		return err
	}
	fmt.Printf("Severity map saved as %q.\n", severityFile)

	clusterSample := geomap.Sample(geo, cfg.ClusterSampleSize, cfg.Seed)
	if err := writeArtifact(clusterFile, func(w io.Writer) error {
		return builder.WriteClusterMap(w, clusterSample)
	}); err != nil {
		return err
	}
	fmt.Printf("Cluster map saved as %q.\n", clusterFile)

	return nil
}

func writeArtifact(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
