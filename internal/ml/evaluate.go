package ml

import (
	"math"
	"sort"
)

// ModelMetrics summarises classifier performance on a labelled set.
type ModelMetrics struct {
	Accuracy     float64 `json:"accuracy"`
	Precision    float64 `json:"precision"`
	Recall       float64 `json:"recall"`
	F1Score      float64 `json:"f1_score"`
	PositiveRate float64 `json:"positive_rate"`
	Samples      int     `json:"samples"`
}

// Evaluate compares predictions against 0/1 ground truth.
func Evaluate(yTrue []float64, yPred []int) ModelMetrics {
	n := len(yTrue)
	if len(yPred) < n {
		n = len(yPred)
	}
	if n == 0 {
		return ModelMetrics{}
	}

	var tp, fp, fn, correct, positives int
	for i := 0; i < n; i++ {
		actual := int(yTrue[i])
		if actual == yPred[i] {
			correct++
		}
		if yPred[i] == 1 {
			positives++
		}
		switch {
		case yPred[i] == 1 && actual == 1:
			tp++
		case yPred[i] == 1 && actual == 0:
			fp++
		case yPred[i] == 0 && actual == 1:
			fn++
		}
	}

	m := ModelMetrics{
		Accuracy:     float64(correct) / float64(n),
		PositiveRate: float64(positives) / float64(n),
		Samples:      n,
	}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1Score = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// Coefficient pairs a feature name with its model weight.
type Coefficient struct {
	Feature string  `json:"feature"`
	Weight  float64 `json:"weight"`
}

// TopCoefficients returns the k features with the largest absolute weight.
// Ties keep feature order.
func TopCoefficients(names []string, weights []float64, k int) []Coefficient {
	n := len(names)
	if len(weights) < n {
		n = len(weights)
	}
	coefs := make([]Coefficient, n)
	for i := 0; i < n; i++ {
		coefs[i] = Coefficient{Feature: names[i], Weight: weights[i]}
	}
	sort.SliceStable(coefs, func(i, j int) bool {
		return math.Abs(coefs[i].Weight) > math.Abs(coefs[j].Weight)
	})
	if k >= 0 && k < len(coefs) {
		coefs = coefs[:k]
	}
	return coefs
}
