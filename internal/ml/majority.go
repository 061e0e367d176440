package ml

import (
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Majority predicts the most frequent training label for every row. Ties go
// to 0. It is the baseline the logistic model should beat.
type Majority struct {
	label     int
	positives int
	total     int
	fitted    bool
}

type majorityState struct {
	Label     int `json:"label"`
	Positives int `json:"positives"`
	Total     int `json:"total"`
}

func NewMajority() *Majority { return &Majority{} }

func (m *Majority) Kind() string { return KindMajority }

func (m *Majority) Fit(X mat.Matrix, y []float64) error {
	r, _ := X.Dims()
	if r == 0 {
		return ErrEmptyTrainingSet
	}
	if len(y) != r {
		return fmt.Errorf("got %d labels for %d rows", len(y), r)
	}
	if err := validateLabels(y); err != nil {
		return err
	}

	m.positives = 0
	for _, v := range y {
		if v == 1 {
			m.positives++
		}
	}
	m.total = len(y)
	m.label = 0
	if 2*m.positives > m.total {
		m.label = 1
	}
	m.fitted = true
	return nil
}

func (m *Majority) Predict(X mat.Matrix) ([]int, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	r, _ := X.Dims()
	out := make([]int, r)
	for i := range out {
		out[i] = m.label
	}
	return out, nil
}

// PositiveRate is the share of positive labels seen during Fit.
func (m *Majority) PositiveRate() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.positives) / float64(m.total)
}

func (m *Majority) MarshalBinary() ([]byte, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return json.Marshal(majorityState{Label: m.label, Positives: m.positives, Total: m.total})
}

func (m *Majority) UnmarshalBinary(data []byte) error {
	var st majorityState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode majority model: %w", err)
	}
	if st.Label != 0 && st.Label != 1 {
		return fmt.Errorf("decode majority model: %w", ErrInvalidLabel)
	}
	m.label, m.positives, m.total = st.Label, st.Positives, st.Total
	m.fitted = true
	return nil
}
