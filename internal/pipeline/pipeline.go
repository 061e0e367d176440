// Package pipeline runs the two batch jobs of the predictor: training a
// classifier on prepared respondent data joined with outcomes, and predicting
// outcomes for new respondents from a saved artifact.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"prefer-predictor/internal/common"
	"prefer-predictor/internal/features"
	"prefer-predictor/internal/ml"
	"prefer-predictor/internal/storage"
)

var (
	// ErrNoTrainingRows is returned when no prepared row has an observed outcome.
	ErrNoTrainingRows = errors.New("no labelled training rows")
	// ErrContractMismatch is matched by ContractMismatchError.
	ErrContractMismatch = errors.New("feature contract mismatch")
	// ErrEmptyTable is returned when a prepared table has no rows.
	ErrEmptyTable = errors.New("prepared table has no rows")
)

// MetricsInterface defines the metrics methods needed by the pipeline
type MetricsInterface interface {
	TrainingRunsInc()
	PredictionRunsInc()
	PipelineFailuresInc()
	TrainDurationObserve(float64)
	PredictDurationObserve(float64)
	RowsPreparedAdd(float64)
	LabelFilteredAdd(float64)
	ImputedAgesAdd(float64)
	DataQualityWarningsAdd(float64)
	PredictionsAdd(float64)
	TrainingAccuracySet(float64)
	AgeDriftScoreSet(float64)
}

// RunRecorder persists a summary of each completed run.
type RunRecorder interface {
	RecordRun(rec storage.RunRecord) (storage.RunRecord, error)
}

// ContractMismatchError reports that a saved model was trained on a different
// feature list than the one the current table is prepared with.
type ContractMismatchError struct {
	Missing   []string // expected by the model, absent from the table
	Extra     []string // present in the table, unknown to the model
	Reordered bool     // same names, different order
}

func (e *ContractMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("%d missing (%s)", len(e.Missing), preview(e.Missing)))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("%d unexpected (%s)", len(e.Extra), preview(e.Extra)))
	}
	if e.Reordered {
		parts = append(parts, "columns reordered")
	}
	return fmt.Sprintf("%s: %s", ErrContractMismatch, strings.Join(parts, "; "))
}

func (e *ContractMismatchError) Is(target error) bool { return target == ErrContractMismatch }

func preview(names []string) string {
	if len(names) <= 5 {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:5], ", ") + ", ..."
}

// Options configures a Pipeline.
type Options struct {
	Columns       features.ColumnSet
	ReferenceYear int

	// Classifier selects the model built by Train when NewClassifier is nil.
	Classifier    ml.Config
	NewClassifier func() (ml.Classifier, error)

	DriftThreshold float64
	TopFeatures    int

	Metrics  MetricsInterface
	Recorder RunRecorder
}

// Pipeline trains and applies a classifier over one feature contract.
type Pipeline struct {
	opts     Options
	preparer *features.Preparer
}

// New fills unset options with defaults.
func New(opts Options) *Pipeline {
	if opts.Columns.Len() <= 1 {
		opts.Columns = features.KeptColumns
	}
	if opts.ReferenceYear == 0 {
		opts.ReferenceYear = common.DefaultReferenceYear
	}
	if opts.NewClassifier == nil {
		cfg := opts.Classifier
		opts.NewClassifier = func() (ml.Classifier, error) { return ml.NewClassifier(cfg) }
	}
	if opts.DriftThreshold <= 0 {
		opts.DriftThreshold = common.DefaultDriftThreshold
	}
	if opts.TopFeatures <= 0 {
		opts.TopFeatures = 10
	}
	return &Pipeline{
		opts:     opts,
		preparer: features.NewPreparer(opts.Columns, opts.ReferenceYear),
	}
}

// Preparer exposes the feature preparer the pipeline uses.
func (p *Pipeline) Preparer() *features.Preparer { return p.preparer }

// TrainResult summarises a completed training run.
type TrainResult struct {
	Classifier    ml.Classifier
	Metrics       ml.ModelMetrics
	AgeBaseline   ml.Distribution
	TopFeatures   []ml.Coefficient
	Intercept     float64 // zero for classifiers without weights
	RowsIn        int
	RowsUsed      int
	LabelFiltered int // joined rows dropped for a missing outcome
	Unmatched     int // prepared rows with no outcome row at all
	ArtifactPath  string
	Diagnostics   features.Diagnostics
}

// PredictResult holds one prediction per input row, in input order.
type PredictResult struct {
	Table       dataframe.DataFrame // identifier and prediction columns
	IDs         []string
	Predictions []int
	Diagnostics features.Diagnostics
	Drift       ml.DriftReport
	Artifact    *ml.Artifact
}

// Train prepares raw, joins it with outcomes, fits a classifier on the rows
// with an observed outcome and saves the artifact to artifactPath.
func (p *Pipeline) Train(raw, outcomes dataframe.DataFrame, background *dataframe.DataFrame, artifactPath string) (*TrainResult, error) {
	start := time.Now()
	res, err := p.train(raw, outcomes, background, artifactPath)
	if err != nil {
		if p.opts.Metrics != nil {
			p.opts.Metrics.PipelineFailuresInc()
		}
		return nil, err
	}
	if p.opts.Metrics != nil {
		p.opts.Metrics.TrainingRunsInc()
		p.opts.Metrics.TrainDurationObserve(time.Since(start).Seconds())
	}
	return res, nil
}

func (p *Pipeline) train(raw, outcomes dataframe.DataFrame, background *dataframe.DataFrame, artifactPath string) (*TrainResult, error) {
	cols := p.opts.Columns

	prep, err := p.preparer.Prepare(raw, background)
	prep.Diagnostics.Log()
	if err != nil {
		return nil, fmt.Errorf("prepare training data: %w", err)
	}
	p.observePrepared(prep)

	if err := checkOutcomes(outcomes, cols.Identifier()); err != nil {
		return nil, err
	}

	rows, labels, filtered, unmatched := joinLabels(prep.Table, outcomes, cols.Identifier())
	log.Info().
		Int("prepared", prep.Table.Nrow()).
		Int("used", len(rows)).
		Int("missing_outcome", filtered).
		Int("unmatched", unmatched).
		Msg("Joined outcomes")
	if p.opts.Metrics != nil && filtered > 0 {
		p.opts.Metrics.LabelFilteredAdd(float64(filtered))
	}
	if len(rows) == 0 {
		return nil, ErrNoTrainingRows
	}

	train := prep.Table.Subset(rows)
	if train.Err != nil {
		return nil, fmt.Errorf("select training rows: %w", train.Err)
	}
	X, err := featureMatrix(train, cols.Features())
	if err != nil {
		return nil, err
	}

	clf, err := p.opts.NewClassifier()
	if err != nil {
		return nil, fmt.Errorf("build classifier: %w", err)
	}
	if err := clf.Fit(X, labels); err != nil {
		return nil, fmt.Errorf("fit %s classifier: %w", clf.Kind(), err)
	}

	fitted, err := clf.Predict(X)
	if err != nil {
		return nil, fmt.Errorf("score training rows: %w", err)
	}
	modelMetrics := ml.Evaluate(labels, fitted)

	baseline := ml.NewDistribution(observedAges(raw, rows, p.opts.ReferenceYear))

	artifact := &ml.Artifact{
		Classifier:      clf,
		Features:        cols.Features(),
		ContractVersion: cols.Version(),
		Fingerprint:     cols.Fingerprint(),
		CreatedAt:       time.Now(),
		TrainingSamples: len(rows),
		Metrics:         modelMetrics,
		AgeBaseline:     baseline,
	}
	if err := ml.SaveArtifact(artifactPath, artifact); err != nil {
		return nil, err
	}

	res := &TrainResult{
		Classifier:    clf,
		Metrics:       modelMetrics,
		AgeBaseline:   baseline,
		RowsIn:        prep.Table.Nrow(),
		RowsUsed:      len(rows),
		LabelFiltered: filtered,
		Unmatched:     unmatched,
		ArtifactPath:  artifactPath,
		Diagnostics:   prep.Diagnostics,
	}
	runMetrics := map[string]float64{
		"accuracy":      modelMetrics.Accuracy,
		"precision":     modelMetrics.Precision,
		"recall":        modelMetrics.Recall,
		"f1_score":      modelMetrics.F1Score,
		"positive_rate": modelMetrics.PositiveRate,
	}
	if w, ok := clf.(ml.Weighted); ok {
		res.Intercept = w.Bias()
		res.TopFeatures = ml.TopCoefficients(cols.Features(), w.Coefficients(), p.opts.TopFeatures)
		for _, c := range res.TopFeatures {
			log.Debug().Str("feature", c.Feature).Float64("weight", c.Weight).Msg("Top coefficient")
		}
		log.Debug().Float64("intercept", res.Intercept).Msg("Fitted intercept")
		runMetrics["intercept"] = res.Intercept
	}
	if b, ok := clf.(ml.BaseRate); ok {
		runMetrics["label_positive_rate"] = b.PositiveRate()
		log.Info().Float64("label_positive_rate", b.PositiveRate()).Msg("Baseline fitted on training labels")
	}

	log.Info().
		Str("classifier", clf.Kind()).
		Int("samples", len(rows)).
		Float64("accuracy", modelMetrics.Accuracy).
		Float64("f1", modelMetrics.F1Score).
		Str("artifact", artifactPath).
		Msg("Model trained")

	if p.opts.Metrics != nil {
		p.opts.Metrics.TrainingAccuracySet(modelMetrics.Accuracy)
	}
	p.record(storage.RunRecord{
		Kind:            storage.KindTraining,
		ContractVersion: cols.Version(),
		Fingerprint:     cols.Fingerprint(),
		ClassifierKind:  clf.Kind(),
		RowsIn:          res.RowsIn,
		RowsUsed:        res.RowsUsed,
		Warnings:        len(prep.Diagnostics.Warnings()),
		Metrics:         runMetrics,
		ArtifactPath:    artifactPath,
	})
	return res, nil
}

// Predict loads the artifact at artifactPath and labels every row of raw.
func (p *Pipeline) Predict(raw dataframe.DataFrame, background *dataframe.DataFrame, artifactPath string) (*PredictResult, error) {
	start := time.Now()
	res, err := p.predict(raw, background, artifactPath)
	if err != nil {
		if p.opts.Metrics != nil {
			p.opts.Metrics.PipelineFailuresInc()
		}
		return nil, err
	}
	if p.opts.Metrics != nil {
		p.opts.Metrics.PredictionRunsInc()
		p.opts.Metrics.PredictDurationObserve(time.Since(start).Seconds())
	}
	return res, nil
}

func (p *Pipeline) predict(raw dataframe.DataFrame, background *dataframe.DataFrame, artifactPath string) (*PredictResult, error) {
	cols := p.opts.Columns

	// A missing identifier is reported before anything else; preparation
	// below still needs it and fails.
	if raw.Err == nil {
		warnings := features.Validate(raw, cols, features.StagePredict).Warnings()
		warnings.Log()
		if p.opts.Metrics != nil && len(warnings) > 0 {
			p.opts.Metrics.DataQualityWarningsAdd(float64(len(warnings)))
		}
	}

	artifact, err := ml.LoadArtifact(artifactPath)
	if err != nil {
		return nil, err
	}

	prep, err := p.preparer.Prepare(raw, background)
	prep.Diagnostics.Log()
	if err != nil {
		return nil, fmt.Errorf("prepare prediction data: %w", err)
	}
	p.observePrepared(prep)

	if err := checkContract(artifact.Features, cols.Features()); err != nil {
		return nil, err
	}
	if artifact.Fingerprint != cols.Fingerprint() {
		log.Warn().
			Str("artifact", artifact.Fingerprint).
			Str("current", cols.Fingerprint()).
			Msg("Artifact fingerprint differs from contract")
	}

	labels := []int{}
	if prep.Table.Nrow() > 0 {
		X, err := featureMatrix(prep.Table, cols.Features())
		if err != nil {
			return nil, err
		}
		labels, err = artifact.Classifier.Predict(X)
		if err != nil {
			return nil, fmt.Errorf("predict: %w", err)
		}
	}

	diags := prep.Diagnostics
	drift := ml.CompareDistribution(common.AgeColumn, artifact.AgeBaseline, prep.ObservedAges, p.opts.DriftThreshold)
	if drift.Drifted {
		diags = append(diags, features.Diagnostic{
			Severity: features.SeverityWarning,
			Code:     features.CodeAgeDrift,
			Column:   common.AgeColumn,
			Message:  drift.Describe(),
		})
		log.Warn().
			Str("severity", drift.Severity).
			Float64("score", drift.Score).
			Float64("psi", drift.PSI).
			Msg("Age distribution drift detected")
	}
	if prep.ImputedAge > 0 {
		log.Info().
			Int("imputed", prep.ImputedAge).
			Float64("prediction_mean", prep.AgeMean).
			Float64("training_mean", artifact.AgeBaseline.Mean).
			Msg("Imputed age with prediction-time mean")
	}

	ids := prep.Table.Col(cols.Identifier()).Records()
	out := dataframe.New(
		series.New(ids, series.String, cols.Identifier()),
		series.New(labels, series.Int, common.PredictionColumn),
	)
	if out.Err != nil {
		return nil, fmt.Errorf("build prediction table: %w", out.Err)
	}

	if p.opts.Metrics != nil {
		p.opts.Metrics.PredictionsAdd(float64(len(labels)))
		p.opts.Metrics.AgeDriftScoreSet(drift.Score)
	}
	log.Info().
		Int("rows", len(labels)).
		Int("positive", countPositive(labels)).
		Str("artifact", artifactPath).
		Msg("Predictions complete")

	p.record(storage.RunRecord{
		Kind:            storage.KindPrediction,
		ContractVersion: cols.Version(),
		Fingerprint:     cols.Fingerprint(),
		ClassifierKind:  artifact.Classifier.Kind(),
		RowsIn:          raw.Nrow(),
		RowsUsed:        len(labels),
		Warnings:        len(diags.Warnings()),
		Metrics: map[string]float64{
			"positive_rate": positiveRate(labels),
		},
		ArtifactPath: artifactPath,
		DriftScore:   drift.Score,
	})

	return &PredictResult{
		Table:       out,
		IDs:         ids,
		Predictions: labels,
		Diagnostics: diags,
		Drift:       drift,
		Artifact:    artifact,
	}, nil
}

func (p *Pipeline) observePrepared(prep features.Result) {
	if p.opts.Metrics == nil {
		return
	}
	p.opts.Metrics.RowsPreparedAdd(float64(prep.Table.Nrow()))
	if prep.ImputedAge > 0 {
		p.opts.Metrics.ImputedAgesAdd(float64(prep.ImputedAge))
	}
	if n := len(prep.Diagnostics.Warnings()); n > 0 {
		p.opts.Metrics.DataQualityWarningsAdd(float64(n))
	}
}

func (p *Pipeline) record(rec storage.RunRecord) {
	if p.opts.Recorder == nil {
		return
	}
	saved, err := p.opts.Recorder.RecordRun(rec)
	if err != nil {
		log.Warn().Err(err).Str("kind", rec.Kind).Msg("Failed to record run")
		return
	}
	log.Debug().Str("id", saved.ID).Str("kind", saved.Kind).Msg("Run recorded")
}

// checkOutcomes requires the identifier and outcome columns.
func checkOutcomes(outcomes dataframe.DataFrame, identifier string) error {
	if outcomes.Err != nil {
		return fmt.Errorf("outcome table: %w", outcomes.Err)
	}
	names := make(map[string]bool, outcomes.Ncol())
	for _, n := range outcomes.Names() {
		names[n] = true
	}
	cfgErr := &features.ConfigurationError{MissingIdentifier: !names[identifier]}
	if !names[common.OutcomeColumn] {
		cfgErr.Missing = []string{common.OutcomeColumn}
	}
	if cfgErr.MissingIdentifier || len(cfgErr.Missing) > 0 {
		return fmt.Errorf("outcome table: %w", cfgErr)
	}
	return nil
}

// checkContract compares the model's feature list with the current one.
func checkContract(model, current []string) error {
	if features.SameOrder(model, current) {
		return nil
	}
	missing, extra := features.Diff(model, current)
	return &ContractMismatchError{
		Missing:   missing,
		Extra:     extra,
		Reordered: len(missing) == 0 && len(extra) == 0,
	}
}

// joinLabels inner-joins prepared rows with outcome rows on the identifier and
// drops pairs whose outcome is missing. rows indexes prepared, in prepared
// order; a repeated outcome id yields one row per occurrence.
func joinLabels(prepared, outcomes dataframe.DataFrame, identifier string) (rows []int, labels []float64, filtered, unmatched int) {
	outIDs := outcomes.Col(identifier).Records()
	outLabels := outcomes.Col(common.OutcomeColumn).Float()

	index := make(map[string][]int, len(outIDs))
	for j, id := range outIDs {
		index[id] = append(index[id], j)
	}

	for i, id := range prepared.Col(identifier).Records() {
		matches, ok := index[id]
		if !ok {
			unmatched++
			continue
		}
		for _, j := range matches {
			if math.IsNaN(outLabels[j]) {
				filtered++
				continue
			}
			rows = append(rows, i)
			labels = append(labels, outLabels[j])
		}
	}
	return rows, labels, filtered, unmatched
}

// featureMatrix copies the named float columns of df into a dense matrix.
func featureMatrix(df dataframe.DataFrame, names []string) (*mat.Dense, error) {
	r, c := df.Nrow(), len(names)
	if r == 0 {
		return nil, ErrEmptyTable
	}
	if c == 0 {
		return nil, fmt.Errorf("%w: no feature columns", ml.ErrFeatureMismatch)
	}
	data := make([]float64, r*c)
	for j, name := range names {
		col := df.Col(name)
		if col.Err != nil {
			return nil, fmt.Errorf("feature %s: %w", name, col.Err)
		}
		for i, v := range col.Float() {
			data[i*c+j] = v
		}
	}
	return mat.NewDense(r, c, data), nil
}

// observedAges returns the age of each selected row whose birth year is present.
func observedAges(raw dataframe.DataFrame, rows []int, referenceYear int) []float64 {
	birthYears := raw.Col(common.BirthYearColumn).Float()
	ages := make([]float64, 0, len(rows))
	for _, i := range rows {
		if by := birthYears[i]; !math.IsNaN(by) {
			ages = append(ages, float64(referenceYear)-by)
		}
	}
	return ages
}

func countPositive(labels []int) int {
	n := 0
	for _, l := range labels {
		n += l
	}
	return n
}

func positiveRate(labels []int) float64 {
	if len(labels) == 0 {
		return 0
	}
	return float64(countPositive(labels)) / float64(len(labels))
}
