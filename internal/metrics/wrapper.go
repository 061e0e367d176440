package metrics

// MetricsWrapper adapts Metrics to the method set the pipeline expects, so
// the pipeline does not import prometheus.
type MetricsWrapper struct {
	m *Metrics
}

func NewWrapper(m *Metrics) *MetricsWrapper {
	return &MetricsWrapper{m: m}
}

func (w *MetricsWrapper) TrainingRunsInc()     { w.m.TrainingRuns.Inc() }
func (w *MetricsWrapper) PredictionRunsInc()   { w.m.PredictionRuns.Inc() }
func (w *MetricsWrapper) PipelineFailuresInc() { w.m.PipelineFailures.Inc() }

func (w *MetricsWrapper) TrainDurationObserve(v float64)   { w.m.TrainDuration.Observe(v) }
func (w *MetricsWrapper) PredictDurationObserve(v float64) { w.m.PredictDuration.Observe(v) }

func (w *MetricsWrapper) RowsPreparedAdd(v float64)        { w.m.RowsPrepared.Add(v) }
func (w *MetricsWrapper) LabelFilteredAdd(v float64)       { w.m.LabelFiltered.Add(v) }
func (w *MetricsWrapper) ImputedAgesAdd(v float64)         { w.m.ImputedAges.Add(v) }
func (w *MetricsWrapper) DataQualityWarningsAdd(v float64) { w.m.DataQualityWarnings.Add(v) }
func (w *MetricsWrapper) PredictionsAdd(v float64)         { w.m.Predictions.Add(v) }

func (w *MetricsWrapper) TrainingAccuracySet(v float64) { w.m.TrainingAccuracy.Set(v) }
func (w *MetricsWrapper) AgeDriftScoreSet(v float64)    { w.m.AgeDriftScore.Set(v) }
