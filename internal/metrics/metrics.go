// Package metrics provides Prometheus metrics for the training and prediction
// pipeline. The CLIs are batch jobs, so metrics are gathered into a private
// registry and written to a node-exporter textfile at exit instead of being
// served over HTTP.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the pipeline.
type Metrics struct {
	// Run metrics
	TrainingRuns     prometheus.Counter   // Completed training runs
	PredictionRuns   prometheus.Counter   // Completed prediction runs
	PipelineFailures prometheus.Counter   // Runs that ended in an error
	TrainDuration    prometheus.Histogram // Wall time of a training run
	PredictDuration  prometheus.Histogram // Wall time of a prediction run

	// Data metrics
	RowsPrepared        prometheus.Counter // Rows passed through feature preparation
	LabelFiltered       prometheus.Counter // Training rows dropped for a missing label
	ImputedAges         prometheus.Counter // Age values filled with the call mean
	DataQualityWarnings prometheus.Counter // Non-fatal validation warnings

	// Model metrics
	Predictions      prometheus.Counter // Labels emitted by Predict
	TrainingAccuracy prometheus.Gauge   // In-sample accuracy of the last fit
	AgeDriftScore    prometheus.Gauge   // Drift score of age against the training baseline
}

// NewWithRegistry creates metrics registered with registerer. The CLIs pass
// a private registry so only pipeline metrics reach the textfile.
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		TrainingRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "prefer_training_runs_total",
			Help: "Total number of completed training runs",
		}),
		PredictionRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "prefer_prediction_runs_total",
			Help: "Total number of completed prediction runs",
		}),
		PipelineFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "prefer_pipeline_failures_total",
			Help: "Total number of pipeline runs that failed",
		}),
		TrainDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "prefer_train_duration_seconds",
			Help:    "Duration of training runs in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 15),
		}),
		PredictDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "prefer_predict_duration_seconds",
			Help:    "Duration of prediction runs in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 15),
		}),
		RowsPrepared: factory.NewCounter(prometheus.CounterOpts{
			Name: "prefer_rows_prepared_total",
			Help: "Total number of respondent rows prepared",
		}),
		LabelFiltered: factory.NewCounter(prometheus.CounterOpts{
			Name: "prefer_label_filtered_total",
			Help: "Total number of training rows dropped for a missing outcome",
		}),
		ImputedAges: factory.NewCounter(prometheus.CounterOpts{
			Name: "prefer_imputed_ages_total",
			Help: "Total number of age values imputed with the call mean",
		}),
		DataQualityWarnings: factory.NewCounter(prometheus.CounterOpts{
			Name: "prefer_data_quality_warnings_total",
			Help: "Total number of non-fatal data quality warnings",
		}),
		Predictions: factory.NewCounter(prometheus.CounterOpts{
			Name: "prefer_predictions_total",
			Help: "Total number of predictions emitted",
		}),
		TrainingAccuracy: factory.NewGauge(prometheus.GaugeOpts{
			Name: "prefer_training_accuracy",
			Help: "In-sample accuracy of the most recent fit",
		}),
		AgeDriftScore: factory.NewGauge(prometheus.GaugeOpts{
			Name: "prefer_age_drift_score",
			Help: "Drift score of the age feature against the training baseline",
		}),
	}
}

// WriteTextfile writes everything in g to path in the Prometheus text format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
