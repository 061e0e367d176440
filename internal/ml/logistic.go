package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"prefer-predictor/internal/common"
)

// LogisticConfig holds the training hyperparameters.
type LogisticConfig struct {
	LearningRate float64 `json:"learning_rate"`
	Epochs       int     `json:"epochs"`
	BatchSize    int     `json:"batch_size"` // 0 means full batch
	L2           float64 `json:"l2"`
	Seed         int64   `json:"seed"`
	Threshold    float64 `json:"threshold"`
}

// DefaultLogisticConfig returns the hyperparameters used when none are configured.
func DefaultLogisticConfig() LogisticConfig {
	return LogisticConfig{
		LearningRate: common.DefaultLearningRate,
		Epochs:       common.DefaultEpochs,
		BatchSize:    common.DefaultBatchSize,
		L2:           common.DefaultL2,
		Seed:         common.DefaultSeed,
		Threshold:    common.DefaultProbThreshold,
	}
}

// LogisticRegression is a binary logistic regression trained with mini-batch
// gradient descent on standardised inputs. Missing inputs (NaN) are replaced
// by the training mean of their column.
type LogisticRegression struct {
	cfg     LogisticConfig
	weights []float64
	bias    float64
	means   []float64
	scales  []float64
	fitted  bool
}

type logisticState struct {
	Config  LogisticConfig `json:"config"`
	Weights []float64      `json:"weights"`
	Bias    float64        `json:"bias"`
	Means   []float64      `json:"means"`
	Scales  []float64      `json:"scales"`
}

// NewLogisticRegression fills zero-valued fields of cfg with defaults.
func NewLogisticRegression(cfg LogisticConfig) *LogisticRegression {
	def := DefaultLogisticConfig()
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = def.LearningRate
	}
	if cfg.Epochs <= 0 {
		cfg.Epochs = def.Epochs
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = def.Threshold
	}
	return &LogisticRegression{cfg: cfg}
}

func (m *LogisticRegression) Kind() string { return KindLogistic }

// Fit trains the model. Weights start at zero and batches are drawn from a
// seeded source, so identical inputs always produce identical weights.
func (m *LogisticRegression) Fit(X mat.Matrix, y []float64) error {
	r, c := X.Dims()
	if r == 0 {
		return ErrEmptyTrainingSet
	}
	if c == 0 {
		return fmt.Errorf("%w: no feature columns", ErrFeatureMismatch)
	}
	if len(y) != r {
		return fmt.Errorf("got %d labels for %d rows", len(y), r)
	}
	if err := validateLabels(y); err != nil {
		return err
	}

	m.means, m.scales = columnStats(X)
	z := m.standardize(X)

	w := make([]float64, c)
	b := 0.0

	batch := m.cfg.BatchSize
	if batch <= 0 || batch > r {
		batch = r
	}
	order := make([]int, r)
	for i := range order {
		order[i] = i
	}
	rng := rand.New(rand.NewSource(m.cfg.Seed))
	grad := make([]float64, c)

	for ep := 0; ep < m.cfg.Epochs; ep++ {
		if batch < r {
			rng.Shuffle(r, func(i, j int) { order[i], order[j] = order[j], order[i] })
		}
		for start := 0; start < r; start += batch {
			end := start + batch
			if end > r {
				end = r
			}
			n := float64(end - start)

			for j := range grad {
				grad[j] = 0
			}
			gb := 0.0
			for _, i := range order[start:end] {
				row := z.RawRowView(i)
				d := sigmoid(floats.Dot(row, w)+b) - y[i]
				floats.AddScaled(grad, d, row)
				gb += d
			}

			for j := range grad {
				grad[j] = grad[j]/n + m.cfg.L2*w[j]
			}
			floats.AddScaled(w, -m.cfg.LearningRate, grad)
			b -= m.cfg.LearningRate * gb / n
		}
	}

	m.weights = w
	m.bias = b
	m.fitted = true
	return nil
}

// PredictProba returns P(y=1) for every row of X.
func (m *LogisticRegression) PredictProba(X mat.Matrix) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	r, c := X.Dims()
	if c != len(m.weights) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFeatureMismatch, c, len(m.weights))
	}
	if r == 0 {
		return []float64{}, nil
	}

	z := m.standardize(X)
	var logits mat.VecDense
	logits.MulVec(z, mat.NewVecDense(c, m.weights))

	out := make([]float64, r)
	for i := range out {
		out[i] = sigmoid(logits.AtVec(i) + m.bias)
	}
	return out, nil
}

// Predict thresholds PredictProba at the configured threshold.
func (m *LogisticRegression) Predict(X mat.Matrix) ([]int, error) {
	proba, err := m.PredictProba(X)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(proba))
	for i, p := range proba {
		if p >= m.cfg.Threshold {
			out[i] = 1
		}
	}
	return out, nil
}

// Coefficients returns the weights in standardised feature space.
func (m *LogisticRegression) Coefficients() []float64 {
	return append([]float64(nil), m.weights...)
}

func (m *LogisticRegression) Bias() float64 { return m.bias }

func (m *LogisticRegression) MarshalBinary() ([]byte, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return json.Marshal(logisticState{
		Config:  m.cfg,
		Weights: m.weights,
		Bias:    m.bias,
		Means:   m.means,
		Scales:  m.scales,
	})
}

func (m *LogisticRegression) UnmarshalBinary(data []byte) error {
	var st logisticState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode logistic model: %w", err)
	}
	if len(st.Means) != len(st.Weights) || len(st.Scales) != len(st.Weights) {
		return fmt.Errorf("decode logistic model: %d weights, %d means, %d scales",
			len(st.Weights), len(st.Means), len(st.Scales))
	}
	m.cfg = st.Config
	m.weights = st.Weights
	m.bias = st.Bias
	m.means = st.Means
	m.scales = st.Scales
	m.fitted = true
	return nil
}

// standardize returns (x - mean) / scale with NaN mapped to 0.
func (m *LogisticRegression) standardize(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	z := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := X.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			z.Set(i, j, (v-m.means[j])/m.scales[j])
		}
	}
	return z
}

// columnStats computes per-column mean and population standard deviation over
// the non-NaN cells. Columns with no spread get scale 1.
func columnStats(X mat.Matrix) (means, scales []float64) {
	r, c := X.Dims()
	means = make([]float64, c)
	scales = make([]float64, c)
	for j := 0; j < c; j++ {
		var sum, sumSq float64
		n := 0
		for i := 0; i < r; i++ {
			v := X.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			sum += v
			sumSq += v * v
			n++
		}
		scales[j] = 1
		if n == 0 {
			continue
		}
		mean := sum / float64(n)
		means[j] = mean
		variance := sumSq/float64(n) - mean*mean
		if variance > 1e-12 {
			scales[j] = math.Sqrt(variance)
		}
	}
	return means, scales
}

func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}
