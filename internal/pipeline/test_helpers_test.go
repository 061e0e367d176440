package pipeline

import "sync"

// MockMetrics implements MetricsInterface for testing
type MockMetrics struct {
	mu             sync.Mutex
	trainingRuns   int
	predictionRuns int
	failures       int
	trainDuration  float64
	predictDur     float64
	rowsPrepared   float64
	labelFiltered  float64
	imputedAges    float64
	warnings       float64
	predictions    float64
	accuracy       float64
	driftScore     float64
}

func (m *MockMetrics) TrainingRunsInc() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trainingRuns++
}

func (m *MockMetrics) PredictionRunsInc() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictionRuns++
}

func (m *MockMetrics) PipelineFailuresInc() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures++
}

func (m *MockMetrics) TrainDurationObserve(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trainDuration += v
}

func (m *MockMetrics) PredictDurationObserve(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictDur += v
}

func (m *MockMetrics) RowsPreparedAdd(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rowsPrepared += v
}

func (m *MockMetrics) LabelFilteredAdd(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.labelFiltered += v
}

func (m *MockMetrics) ImputedAgesAdd(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.imputedAges += v
}

func (m *MockMetrics) DataQualityWarningsAdd(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings += v
}

func (m *MockMetrics) PredictionsAdd(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictions += v
}

func (m *MockMetrics) TrainingAccuracySet(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accuracy = v
}

func (m *MockMetrics) AgeDriftScoreSet(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.driftScore = v
}
