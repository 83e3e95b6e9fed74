package dataset

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ColumnMissing reports the null count and percentage for one column.
type ColumnMissing struct {
	Column     string
	Missing    int
	Percentage float64
}

// ColumnStats holds descriptive statistics for one numeric column.
type ColumnStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// MissingValues computes the per-column missing count and percentage of total
// rows, sorted non-increasing by percentage. Blank strings count as missing
// alongside NaN so string and numeric columns are treated alike.
func MissingValues(df dataframe.DataFrame) []ColumnMissing {
	total := df.Nrow()
	out := make([]ColumnMissing, 0, len(df.Names()))

	for _, name := range df.Names() {
		col := df.Col(name)
		missing := 0
		for i := 0; i < col.Len(); i++ {
			e := col.Elem(i)
			if e.IsNA() || strings.TrimSpace(e.String()) == "" {
				missing++
			}
		}
		pct := 0.0
		if total > 0 {
			pct = float64(missing) / float64(total) * 100
		}
		out = append(out, ColumnMissing{Column: name, Missing: missing, Percentage: pct})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Percentage > out[j].Percentage
	})
	return out
}

// DescribeNumeric computes count, mean, std, min, quartiles and max over every
// numeric column. Missing values are skipped, not counted.
func DescribeNumeric(df dataframe.DataFrame) []ColumnStats {
	out := make([]ColumnStats, 0)

	for _, name := range df.Names() {
		col := df.Col(name)
		if t := col.Type(); t != series.Float && t != series.Int {
			continue
		}

		clean := make([]float64, 0, col.Len())
		for _, v := range col.Float() {
			if !math.IsNaN(v) {
				clean = append(clean, v)
			}
		}

		stats := ColumnStats{Column: name, Count: len(clean)}
		if len(clean) > 0 {
			sort.Float64s(clean)
			stats.Mean = mean(clean)
			stats.Std = sampleStd(clean, stats.Mean)
			stats.Min = clean[0]
			stats.Q25 = quantile(clean, 0.25)
			stats.Median = quantile(clean, 0.5)
			stats.Q75 = quantile(clean, 0.75)
			stats.Max = clean[len(clean)-1]
		}
		out = append(out, stats)
	}
	return out
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// sampleStd is the sample (n-1 denominator) standard deviation.
func sampleStd(vals []float64, m float64) float64 {
	if len(vals) < 2 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}

// quantile interpolates linearly between order statistics.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// WriteMissingReport renders the top-n rows of the missing value summary.
func WriteMissingReport(w io.Writer, missing []ColumnMissing, n int) {
	if n > len(missing) {
		n = len(missing)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tMISSING\tPERCENTAGE")
	for _, m := range missing[:n] {
		fmt.Fprintf(tw, "%s\t%d\t%.2f%%\n", m.Column, m.Missing, m.Percentage)
	}
	tw.Flush()
}

// WriteDescribeReport renders the descriptive statistics table.
func WriteDescribeReport(w io.Writer, stats []ColumnStats) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tCOUNT\tMEAN\tSTD\tMIN\t25%\t50%\t75%\tMAX")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			s.Column, s.Count, s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max)
	}
	tw.Flush()
}
