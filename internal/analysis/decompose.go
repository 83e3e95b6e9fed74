package analysis

import (
	"fmt"
	"math"
	"time"
)

// Decomposition splits an observed series into additive trend, seasonal and
// residual components. Edge positions where the centered trend window does
// not fit hold NaN.
type Decomposition struct {
	Dates    []time.Time
	Observed []float64
	Trend    []float64
	Seasonal []float64
	Residual []float64
}

// Decompose performs an additive seasonal decomposition with a fixed period:
// a centered moving average for the trend, per-phase means of the detrended
// series for the seasonal component, and the remainder as residual. The
// series must be gap free and cover at least two full periods; shorter input
// is rejected rather than silently mis-decomposed.
func Decompose(s DailySeries, period int) (*Decomposition, error) {
	if period < 2 {
		return nil, fmt.Errorf("decomposition period must be at least 2, got %d", period)
	}
	if len(s.Values) < 2*period {
		return nil, fmt.Errorf("series has %d observations, need at least two full periods (%d)", len(s.Values), 2*period)
	}

	trend := centeredMovingAverage(s.Values, period)
	seasonal := seasonalComponent(s.Values, trend, period)

	residual := make([]float64, len(s.Values))
	for i := range s.Values {
		residual[i] = s.Values[i] - trend[i] - seasonal[i]
	}

	return &Decomposition{
		Dates:    s.Dates,
		Observed: s.Values,
		Trend:    trend,
		Seasonal: seasonal,
		Residual: residual,
	}, nil
}

// centeredMovingAverage computes the trend estimate. Odd periods use a plain
// centered window; even periods use a 2xMA convolution with half weights on
// the two outermost observations, so the window stays centered.
func centeredMovingAverage(values []float64, period int) []float64 {
	n := len(values)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}

	if period%2 == 1 {
		half := period / 2
		for i := half; i < n-half; i++ {
			sum := 0.0
			for j := i - half; j <= i+half; j++ {
				sum += values[j]
			}
			out[i] = sum / float64(period)
		}
		return out
	}

	half := period / 2
	for i := half; i < n-half; i++ {
		sum := 0.5*values[i-half] + 0.5*values[i+half]
		for j := i - half + 1; j <= i+half-1; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(period)
	}
	return out
}

// seasonalComponent averages the detrended series per phase index, centers
// the averages around zero, and tiles them across the full length.
func seasonalComponent(values, trend []float64, period int) []float64 {
	phaseSums := make([]float64, period)
	phaseCounts := make([]int, period)

	for i := range values {
		if math.IsNaN(trend[i]) {
			continue
		}
		phase := i % period
		phaseSums[phase] += values[i] - trend[i]
		phaseCounts[phase]++
	}

	phaseMeans := make([]float64, period)
	total := 0.0
	for p := 0; p < period; p++ {
		if phaseCounts[p] > 0 {
			phaseMeans[p] = phaseSums[p] / float64(phaseCounts[p])
		}
		total += phaseMeans[p]
	}
	grand := total / float64(period)
	for p := 0; p < period; p++ {
		phaseMeans[p] -= grand
	}

	out := make([]float64, len(values))
	for i := range out {
		out[i] = phaseMeans[i%period]
	}
	return out
}
