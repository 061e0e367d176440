package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

const histogramBins = 10

// Distribution summarises the observed values of one feature.
type Distribution struct {
	Mean        float64   `json:"mean"`
	StandardDev float64   `json:"standard_dev"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	Count       int       `json:"count"`
	Histogram   []float64 `json:"histogram"` // share of samples per bin over [Min, Max]
}

// DriftReport compares a current sample against a training baseline.
type DriftReport struct {
	Feature      string  `json:"feature"`
	BaselineMean float64 `json:"baseline_mean"`
	CurrentMean  float64 `json:"current_mean"`
	MomentsScore float64 `json:"moments_score"`
	PSI          float64 `json:"psi"`
	Score        float64 `json:"score"`
	Threshold    float64 `json:"threshold"`
	Severity     string  `json:"severity"`
	Drifted      bool    `json:"drifted"`
}

// NewDistribution builds a Distribution from samples, ignoring NaN.
func NewDistribution(samples []float64) Distribution {
	clean := finite(samples)
	if len(clean) == 0 {
		return Distribution{}
	}

	d := Distribution{
		Mean:  stat.Mean(clean, nil),
		Min:   clean[0],
		Max:   clean[0],
		Count: len(clean),
	}
	if len(clean) > 1 {
		d.StandardDev = stat.StdDev(clean, nil)
	}
	for _, v := range clean {
		d.Min = math.Min(d.Min, v)
		d.Max = math.Max(d.Max, v)
	}
	d.Histogram = histogram(clean, d.Min, d.Max)
	return d
}

// CompareDistribution scores how far current has moved from baseline. The
// score is the larger of a normalised mean/std shift and the population
// stability index over the baseline's bins.
func CompareDistribution(feature string, baseline Distribution, current []float64, threshold float64) DriftReport {
	report := DriftReport{
		Feature:      feature,
		BaselineMean: baseline.Mean,
		Threshold:    threshold,
		Severity:     "none",
	}

	cur := NewDistribution(current)
	report.CurrentMean = cur.Mean
	if baseline.Count == 0 || cur.Count == 0 {
		return report
	}

	report.MomentsScore = momentsScore(baseline, cur)
	report.PSI = populationStabilityIndex(baseline, finite(current))
	report.Score = math.Max(report.MomentsScore, report.PSI)

	if report.Score > threshold {
		report.Drifted = true
		report.Severity = "medium"
		if report.Score > threshold*2 {
			report.Severity = "high"
		}
		if report.Score > threshold*3 {
			report.Severity = "critical"
		}
	}
	return report
}

// Describe renders the report for a log line or diagnostic.
func (r DriftReport) Describe() string {
	return fmt.Sprintf("%s distribution shifted (%s): baseline mean %.2f, current mean %.2f, score %.3f > %.3f",
		r.Feature, r.Severity, r.BaselineMean, r.CurrentMean, r.Score, r.Threshold)
}

func momentsScore(baseline, current Distribution) float64 {
	meanNormalized := math.Abs(baseline.Mean-current.Mean) / (1 + math.Abs(baseline.Mean))
	stdNormalized := math.Abs(baseline.StandardDev-current.StandardDev) / (1 + baseline.StandardDev)
	return (meanNormalized + stdNormalized) / 2
}

func populationStabilityIndex(baseline Distribution, current []float64) float64 {
	if len(baseline.Histogram) != histogramBins {
		return 0
	}
	cur := histogram(current, baseline.Min, baseline.Max)

	psi := 0.0
	for i := 0; i < histogramBins; i++ {
		b, c := baseline.Histogram[i], cur[i]
		if b > 0 && c > 0 {
			psi += (c - b) * math.Log(c/b)
		}
	}
	return math.Abs(psi)
}

// histogram bins samples over [lo, hi]; values outside land in the edge bins.
func histogram(samples []float64, lo, hi float64) []float64 {
	bins := make([]float64, histogramBins)
	if len(samples) == 0 {
		return bins
	}
	width := (hi - lo) / histogramBins
	for _, v := range samples {
		bin := 0
		if width > 0 {
			bin = int((v - lo) / width)
		}
		if bin >= histogramBins {
			bin = histogramBins - 1
		}
		if bin < 0 {
			bin = 0
		}
		bins[bin]++
	}
	total := float64(len(samples))
	for i := range bins {
		bins[i] /= total
	}
	return bins
}

func finite(samples []float64) []float64 {
	out := make([]float64, 0, len(samples))
	for _, v := range samples {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
