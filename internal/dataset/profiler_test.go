package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileCSV = `CRASH DATE,BOROUGH,NUMBER OF PERSONS INJURED,LATITUDE
01/15/2023,BROOKLYN,1,40.695000
01/16/2023,,2,40.720000
01/17/2023,,3,
01/18/2023,MANHATTAN,4,40.750000
`

func TestMissingValues(t *testing.T) {
	ds, err := Read(strings.NewReader(profileCSV))
	require.NoError(t, err)

	missing := MissingValues(ds.Frame)
	require.Len(t, missing, 4)

	byColumn := make(map[string]ColumnMissing)
	for _, m := range missing {
		byColumn[m.Column] = m
	}

	t.Run("percentage is 100*M/R", func(t *testing.T) {
		assert.Equal(t, 2, byColumn["BOROUGH"].Missing)
		assert.InDelta(t, 50.0, byColumn["BOROUGH"].Percentage, 1e-9)
		assert.Equal(t, 1, byColumn["LATITUDE"].Missing)
		assert.InDelta(t, 25.0, byColumn["LATITUDE"].Percentage, 1e-9)
		assert.Equal(t, 0, byColumn["CRASH DATE"].Missing)
	})

	t.Run("sorted non-increasing", func(t *testing.T) {
		for i := 1; i < len(missing); i++ {
			assert.GreaterOrEqual(t, missing[i-1].Percentage, missing[i].Percentage)
		}
		assert.Equal(t, "BOROUGH", missing[0].Column)
	})
}

func TestDescribeNumeric(t *testing.T) {
	ds, err := Read(strings.NewReader(profileCSV))
	require.NoError(t, err)

	stats := DescribeNumeric(ds.Frame)
	require.NotEmpty(t, stats)

	var injured *ColumnStats
	for i := range stats {
		if stats[i].Column == "NUMBER OF PERSONS INJURED" {
			injured = &stats[i]
		}
	}
	require.NotNil(t, injured, "injured column should be numeric")

	assert.Equal(t, 4, injured.Count)
	assert.InDelta(t, 2.5, injured.Mean, 1e-9)
	assert.InDelta(t, 1.2909944487, injured.Std, 1e-9)
	assert.InDelta(t, 1.0, injured.Min, 1e-9)
	assert.InDelta(t, 1.75, injured.Q25, 1e-9)
	assert.InDelta(t, 2.5, injured.Median, 1e-9)
	assert.InDelta(t, 3.25, injured.Q75, 1e-9)
	assert.InDelta(t, 4.0, injured.Max, 1e-9)
}

func TestQuantile(t *testing.T) {
	tests := []struct {
		name     string
		sorted   []float64
		q        float64
		expected float64
	}{
		{"median of even count", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"median of odd count", []float64{1, 2, 3}, 0.5, 2},
		{"lower quartile", []float64{1, 2, 3, 4}, 0.25, 1.75},
		{"single value", []float64{7}, 0.75, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, quantile(tt.sorted, tt.q), 1e-9)
		})
	}
}

func TestWriteMissingReport(t *testing.T) {
	missing := []ColumnMissing{
		{Column: "A", Missing: 3, Percentage: 75},
		{Column: "B", Missing: 1, Percentage: 25},
		{Column: "C", Missing: 0, Percentage: 0},
	}

	var buf bytes.Buffer
	WriteMissingReport(&buf, missing, 2)

	out := buf.String()
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "75.00%")
	assert.Contains(t, out, "B")
	assert.NotContains(t, out, "C")
}
