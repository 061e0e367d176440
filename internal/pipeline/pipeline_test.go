package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prefer-predictor/internal/features"
	"prefer-predictor/internal/ml"
	"prefer-predictor/internal/storage"
)

var nan = math.NaN()

func testColumns(raw ...string) features.ColumnSet {
	if len(raw) == 0 {
		raw = []string{"cf01", "cw02"}
	}
	return features.NewColumnSet("test", "nomem_encr", []string{"age"}, raw)
}

func newTestPipeline(m MetricsInterface, raw ...string) *Pipeline {
	return New(Options{
		Columns:       testColumns(raw...),
		ReferenceYear: 2024,
		Classifier:    ml.Config{Kind: ml.KindLogistic},
		Metrics:       m,
	})
}

// panel builds n respondents where odd rows have the outcome. cf01 separates
// the classes; cw02 and cw03 are noise. Birth years run from firstBirthYear.
func panel(n int, firstBirthYear float64) (dataframe.DataFrame, []float64) {
	ids := make([]string, n)
	birthYears := make([]float64, n)
	cf01 := make([]float64, n)
	cw02 := make([]float64, n)
	cw03 := make([]float64, n)
	labels := make([]float64, n)
	for i := 0; i < n; i++ {
		label := float64(i % 2)
		ids[i] = fmt.Sprintf("R%03d", i)
		birthYears[i] = firstBirthYear + float64(i)
		cf01[i] = label*10 + float64(i%5)
		cw02[i] = float64(i % 3)
		cw03[i] = 1
		labels[i] = label
	}
	df := dataframe.New(
		series.New(ids, series.String, "nomem_encr"),
		series.New(birthYears, series.Float, "birthyear_bg"),
		series.New(cw02, series.Float, "cw02"),
		series.New(cf01, series.Float, "cf01"),
		series.New(cw03, series.Float, "cw03"),
	)
	return df, labels
}

func outcomeTable(ids []string, labels []float64) dataframe.DataFrame {
	return dataframe.New(
		series.New(ids, series.String, "nomem_encr"),
		series.New(labels, series.Float, "new_child"),
	)
}

func idsOf(df dataframe.DataFrame) []string {
	return df.Col("nomem_encr").Records()
}

func toInts(labels []float64) []int {
	out := make([]int, len(labels))
	for i, l := range labels {
		out[i] = int(l)
	}
	return out
}

func artifactPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "model.db")
}

// captureLog points the global logger at a buffer for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestTrainPredict_RoundTrip(t *testing.T) {
	mock := &MockMetrics{}
	p := newTestPipeline(mock)
	raw, labels := panel(20, 1970)
	path := artifactPath(t)

	trained, err := p.Train(raw, outcomeTable(idsOf(raw), labels), nil, path)
	require.NoError(t, err)

	assert.Equal(t, 20, trained.RowsIn)
	assert.Equal(t, 20, trained.RowsUsed)
	assert.Zero(t, trained.LabelFiltered)
	assert.Zero(t, trained.Unmatched)
	assert.Equal(t, 1.0, trained.Metrics.Accuracy)
	assert.Equal(t, 20, trained.AgeBaseline.Count)
	assert.Equal(t, path, trained.ArtifactPath)
	require.NotEmpty(t, trained.TopFeatures)
	assert.Equal(t, "cf01", trained.TopFeatures[0].Feature)
	assert.Equal(t, trained.Classifier.(ml.Weighted).Bias(), trained.Intercept)
	assert.FileExists(t, path)

	predicted, err := p.Predict(raw, nil, path)
	require.NoError(t, err)

	assert.Equal(t, []string{"nomem_encr", "prediction"}, predicted.Table.Names())
	assert.Equal(t, 20, predicted.Table.Nrow())
	assert.Equal(t, series.Int, predicted.Table.Col("prediction").Type())
	assert.Equal(t, idsOf(raw), predicted.IDs)
	assert.Equal(t, toInts(labels), predicted.Predictions)
	assert.False(t, predicted.Drift.Drifted)
	assert.Zero(t, predicted.Drift.Score)
	assert.Empty(t, predicted.Diagnostics)
	assert.Equal(t, testColumns().Features(), predicted.Artifact.Features)

	assert.Equal(t, 1, mock.trainingRuns)
	assert.Equal(t, 1, mock.predictionRuns)
	assert.Zero(t, mock.failures)
	assert.Equal(t, 40.0, mock.rowsPrepared)
	assert.Equal(t, 20.0, mock.predictions)
	assert.Equal(t, 1.0, mock.accuracy)
	assert.Zero(t, mock.imputedAges)
}

func TestTrain_Deterministic(t *testing.T) {
	raw, labels := panel(20, 1970)
	outcomes := outcomeTable(idsOf(raw), labels)

	first, err := newTestPipeline(nil).Train(raw, outcomes, nil, artifactPath(t))
	require.NoError(t, err)
	second, err := newTestPipeline(nil).Train(raw, outcomes, nil, artifactPath(t))
	require.NoError(t, err)

	w1, ok := first.Classifier.(ml.Weighted)
	require.True(t, ok)
	w2, ok := second.Classifier.(ml.Weighted)
	require.True(t, ok)
	assert.Equal(t, w1.Coefficients(), w2.Coefficients())
}

func TestPredict_PreservesInputOrder(t *testing.T) {
	p := newTestPipeline(nil)
	raw, labels := panel(20, 1970)
	path := artifactPath(t)
	_, err := p.Train(raw, outcomeTable(idsOf(raw), labels), nil, path)
	require.NoError(t, err)

	order := make([]int, raw.Nrow())
	for i := range order {
		order[i] = raw.Nrow() - 1 - i
	}
	reversed := raw.Subset(order)
	require.NoError(t, reversed.Err)

	res, err := p.Predict(reversed, nil, path)
	require.NoError(t, err)

	want := toInts(labels)
	for i, row := range order {
		assert.Equal(t, idsOf(raw)[row], res.IDs[i])
		assert.Equal(t, want[row], res.Predictions[i])
	}
}

func TestTrain_ExampleScenario(t *testing.T) {
	mock := &MockMetrics{}
	p := newTestPipeline(mock)
	raw := dataframe.New(
		series.New([]string{"A", "B", "C"}, series.String, "nomem_encr"),
		series.New([]float64{1990, nan, 1985}, series.Float, "birthyear_bg"),
		series.New([]float64{0, 1, 2}, series.Float, "cf01"),
		series.New([]float64{0, 10, 20}, series.Float, "cw02"),
	)
	outcomes := outcomeTable([]string{"A", "B", "C"}, []float64{1, nan, 0})

	res, err := p.Train(raw, outcomes, nil, artifactPath(t))
	require.NoError(t, err)

	assert.Equal(t, 3, res.RowsIn)
	assert.Equal(t, 2, res.RowsUsed)
	assert.Equal(t, 1, res.LabelFiltered)
	assert.Equal(t, 2, res.Metrics.Samples)
	assert.Equal(t, 1.0, mock.labelFiltered)
	assert.Equal(t, 1.0, mock.imputedAges)
	// Baseline covers the training rows with an observed birth year.
	assert.Equal(t, 2, res.AgeBaseline.Count)
	assert.Equal(t, 36.5, res.AgeBaseline.Mean)
}

// Rows with a missing outcome must not influence the fit.
func TestTrain_MissingLabelsMatchExplicitFilter(t *testing.T) {
	raw, labels := panel(20, 1970)
	ids := idsOf(raw)

	withMissing := append([]float64(nil), labels...)
	var kept []int
	for i := range withMissing {
		if i%4 == 3 {
			withMissing[i] = nan
			continue
		}
		kept = append(kept, i)
	}

	a, err := newTestPipeline(nil).Train(raw, outcomeTable(ids, withMissing), nil, artifactPath(t))
	require.NoError(t, err)

	filtered := raw.Subset(kept)
	require.NoError(t, filtered.Err)
	keptLabels := make([]float64, len(kept))
	for i, row := range kept {
		keptLabels[i] = labels[row]
	}
	b, err := newTestPipeline(nil).Train(filtered, outcomeTable(idsOf(filtered), keptLabels), nil, artifactPath(t))
	require.NoError(t, err)

	assert.Equal(t, 5, a.LabelFiltered)
	assert.Equal(t, b.RowsUsed, a.RowsUsed)
	assert.Equal(t, b.Classifier.(ml.Weighted).Coefficients(), a.Classifier.(ml.Weighted).Coefficients())
}

func TestTrain_OutcomeTableErrors(t *testing.T) {
	raw, labels := panel(4, 1970)

	tests := []struct {
		name     string
		outcomes dataframe.DataFrame
		target   error
	}{
		{
			"missing outcome column",
			dataframe.New(series.New(idsOf(raw), series.String, "nomem_encr")),
			features.ErrColumnNotFound,
		},
		{
			"missing identifier",
			dataframe.New(series.New(labels, series.Float, "new_child")),
			features.ErrMissingIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockMetrics{}
			path := artifactPath(t)
			_, err := newTestPipeline(mock).Train(raw, tt.outcomes, nil, path)
			require.Error(t, err)

			var cfgErr *features.ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
			assert.True(t, errors.Is(err, tt.target))
			assert.Equal(t, 1, mock.failures)
			assert.NoFileExists(t, path)
		})
	}
}

func TestTrain_NoLabelledRows(t *testing.T) {
	raw, _ := panel(4, 1970)

	tests := []struct {
		name     string
		outcomes dataframe.DataFrame
	}{
		{"all missing", outcomeTable(idsOf(raw), []float64{nan, nan, nan, nan})},
		{"no matching ids", outcomeTable([]string{"X1", "X2"}, []float64{1, 0})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestPipeline(nil).Train(raw, tt.outcomes, nil, artifactPath(t))
			assert.ErrorIs(t, err, ErrNoTrainingRows)
		})
	}
}

func TestTrain_UnmatchedRespondents(t *testing.T) {
	raw, labels := panel(10, 1970)
	ids := idsOf(raw)

	res, err := newTestPipeline(nil).Train(raw, outcomeTable(ids[:6], labels[:6]), nil, artifactPath(t))
	require.NoError(t, err)

	assert.Equal(t, 10, res.RowsIn)
	assert.Equal(t, 6, res.RowsUsed)
	assert.Equal(t, 4, res.Unmatched)
	assert.Zero(t, res.LabelFiltered)
}

func TestPredict_ContractMismatch(t *testing.T) {
	raw, labels := panel(20, 1970)
	path := artifactPath(t)
	_, err := newTestPipeline(nil).Train(raw, outcomeTable(idsOf(raw), labels), nil, path)
	require.NoError(t, err)

	tests := []struct {
		name          string
		columns       []string
		wantMissing   []string
		wantExtra     []string
		wantReordered bool
	}{
		{"extra column", []string{"cf01", "cw02", "cw03"}, nil, []string{"cw03"}, false},
		{"missing column", []string{"cf01"}, []string{"cw02"}, nil, false},
		{"reordered", []string{"cw02", "cf01"}, nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockMetrics{}
			_, err := newTestPipeline(mock, tt.columns...).Predict(raw, nil, path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrContractMismatch)

			var mismatch *ContractMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, tt.wantMissing, mismatch.Missing)
			assert.Equal(t, tt.wantExtra, mismatch.Extra)
			assert.Equal(t, tt.wantReordered, mismatch.Reordered)
			assert.Equal(t, 1, mock.failures)
			assert.Zero(t, mock.predictions)
		})
	}
}

func TestPredict_MissingIdentifier(t *testing.T) {
	raw, labels := panel(20, 1970)
	path := artifactPath(t)
	_, err := newTestPipeline(nil).Train(raw, outcomeTable(idsOf(raw), labels), nil, path)
	require.NoError(t, err)

	mock := &MockMetrics{}
	_, err = newTestPipeline(mock).Predict(raw.Drop([]string{"nomem_encr"}), nil, path)
	require.Error(t, err)

	assert.ErrorIs(t, err, features.ErrMissingIdentifier)
	assert.Equal(t, 1.0, mock.warnings, "missing identifier is reported as a warning first")
	assert.Equal(t, 1, mock.failures)
}

func TestPredict_LogsDiagnosticsOfFailedPreparation(t *testing.T) {
	raw, labels := panel(20, 1970)
	path := artifactPath(t)
	_, err := newTestPipeline(nil).Train(raw, outcomeTable(idsOf(raw), labels), nil, path)
	require.NoError(t, err)

	buf := captureLog(t)
	_, err = newTestPipeline(nil).Predict(raw.Drop([]string{"cw02"}), nil, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, features.ErrColumnNotFound)

	assert.Contains(t, buf.String(), `"code":"missing_column"`)
	assert.Contains(t, buf.String(), `"column":"cw02"`)
}

func TestPredict_EmptyInput(t *testing.T) {
	raw, labels := panel(20, 1970)
	path := artifactPath(t)
	_, err := newTestPipeline(nil).Train(raw, outcomeTable(idsOf(raw), labels), nil, path)
	require.NoError(t, err)

	mock := &MockMetrics{}
	empty, _ := panel(0, 1970)
	res, err := newTestPipeline(mock).Predict(empty, nil, path)
	require.NoError(t, err)

	assert.Equal(t, []string{"nomem_encr", "prediction"}, res.Table.Names())
	assert.Zero(t, res.Table.Nrow())
	assert.Empty(t, res.Predictions)
	assert.Empty(t, res.IDs)
	assert.False(t, res.Drift.Drifted)
	assert.Equal(t, 1, mock.predictionRuns)
	assert.Zero(t, mock.predictions)
}

func TestPredict_MissingArtifact(t *testing.T) {
	raw, _ := panel(4, 1970)

	_, err := newTestPipeline(nil).Predict(raw, nil, filepath.Join(t.TempDir(), "absent.db"))
	require.Error(t, err)

	var artErr *ml.ArtifactError
	assert.True(t, errors.As(err, &artErr))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPredict_AgeDrift(t *testing.T) {
	mock := &MockMetrics{}
	p := newTestPipeline(mock)
	raw, labels := panel(20, 1970)
	path := artifactPath(t)
	_, err := p.Train(raw, outcomeTable(idsOf(raw), labels), nil, path)
	require.NoError(t, err)

	older, _ := panel(20, 1930)
	res, err := p.Predict(older, nil, path)
	require.NoError(t, err)

	assert.True(t, res.Drift.Drifted)
	assert.Greater(t, res.Drift.Score, 0.1)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, features.CodeAgeDrift, res.Diagnostics[0].Code)
	assert.Equal(t, features.SeverityWarning, res.Diagnostics[0].Severity)
	assert.Equal(t, res.Drift.Score, mock.driftScore)
	assert.Len(t, res.Predictions, 20)
}

// Age is imputed from the prediction population, not from training.
func TestPredict_ImputesFromPredictionPopulation(t *testing.T) {
	p := newTestPipeline(nil)
	raw, labels := panel(20, 1970)
	path := artifactPath(t)
	_, err := p.Train(raw, outcomeTable(idsOf(raw), labels), nil, path)
	require.NoError(t, err)

	fresh := dataframe.New(
		series.New([]string{"N1", "N2", "N3"}, series.String, "nomem_encr"),
		series.New([]float64{2000, nan, 1990}, series.Float, "birthyear_bg"),
		series.New([]float64{11, 1, 12}, series.Float, "cf01"),
		series.New([]float64{0, 1, 2}, series.Float, "cw02"),
	)
	prep, err := p.Preparer().Prepare(fresh, nil)
	require.NoError(t, err)
	assert.Equal(t, 29.0, prep.Table.Col("age").Float()[1])

	res, err := p.Predict(fresh, nil, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"N1", "N2", "N3"}, res.IDs)
	assert.Equal(t, []int{1, 0, 1}, res.Predictions)
}

func TestPipeline_RecordsRuns(t *testing.T) {
	ledger, err := storage.New(t.TempDir())
	require.NoError(t, err)
	defer ledger.Close()

	p := New(Options{
		Columns:       testColumns(),
		ReferenceYear: 2024,
		Recorder:      ledger,
	})
	raw, labels := panel(20, 1970)
	path := artifactPath(t)

	_, err = p.Train(raw, outcomeTable(idsOf(raw), labels), nil, path)
	require.NoError(t, err)
	_, err = p.Predict(raw, nil, path)
	require.NoError(t, err)

	training, err := ledger.LastRun(storage.KindTraining)
	require.NoError(t, err)
	require.NotNil(t, training)
	assert.Equal(t, 20, training.RowsUsed)
	assert.Equal(t, ml.KindLogistic, training.ClassifierKind)
	assert.Equal(t, testColumns().Fingerprint(), training.Fingerprint)
	assert.Equal(t, 1.0, training.Metrics["accuracy"])

	prediction, err := ledger.LastRun(storage.KindPrediction)
	require.NoError(t, err)
	require.NotNil(t, prediction)
	assert.Equal(t, 20, prediction.RowsIn)
	assert.Equal(t, 0.5, prediction.Metrics["positive_rate"])
	assert.Equal(t, path, prediction.ArtifactPath)
}

func TestPipeline_MajorityClassifier(t *testing.T) {
	ledger, err := storage.New(t.TempDir())
	require.NoError(t, err)
	defer ledger.Close()

	p := New(Options{
		Columns:    testColumns(),
		Classifier: ml.Config{Kind: ml.KindMajority},
		Recorder:   ledger,
	})
	raw, _ := panel(6, 1970)
	path := artifactPath(t)

	res, err := p.Train(raw, outcomeTable(idsOf(raw), []float64{1, 1, 1, 0, 1, nan}), nil, path)
	require.NoError(t, err)
	assert.Empty(t, res.TopFeatures)
	assert.Zero(t, res.Intercept)

	training, err := ledger.LastRun(storage.KindTraining)
	require.NoError(t, err)
	require.NotNil(t, training)
	assert.Equal(t, 0.8, training.Metrics["label_positive_rate"])
	assert.NotContains(t, training.Metrics, "intercept")

	predicted, err := p.Predict(raw, nil, path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, predicted.Predictions)
	assert.Equal(t, ml.KindMajority, predicted.Artifact.Classifier.Kind())
}

func TestNew_Defaults(t *testing.T) {
	p := New(Options{})
	assert.Equal(t, features.KeptColumns.Names(), p.Preparer().Columns().Names())
	assert.Equal(t, 2024, p.Preparer().ReferenceYear())

	clf, err := p.opts.NewClassifier()
	require.NoError(t, err)
	assert.Equal(t, ml.KindLogistic, clf.Kind())
}

func TestContractMismatchError_Message(t *testing.T) {
	err := &ContractMismatchError{Missing: []string{"a", "b", "c", "d", "e", "f"}, Extra: []string{"z"}}
	msg := err.Error()
	assert.Contains(t, msg, "6 missing (a, b, c, d, e, ...)")
	assert.Contains(t, msg, "1 unexpected (z)")
	assert.NotContains(t, msg, "f,")
}
