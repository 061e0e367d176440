package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"prefer-predictor/internal/cfg"
	"prefer-predictor/internal/common"
	"prefer-predictor/internal/dataio"
	"prefer-predictor/internal/features"
	"prefer-predictor/internal/metrics"
	"prefer-predictor/internal/ml"
	"prefer-predictor/internal/pipeline"
	"prefer-predictor/internal/storage"
)

func main() {
	var (
		dataPath       = flag.String("data", "", "Path to the respondent CSV")
		backgroundPath = flag.String("background", "", "Path to the background CSV (optional)")
		modelPath      = flag.String("model", "", "Model artifact path or http(s) URL (overrides MODEL_PATH)")
		outputPath     = flag.String("output", common.DefaultPredictionPath, "Where to write the predictions CSV")
		logLevel       = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config, err := cfg.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Override config with command line arguments
	if *modelPath != "" {
		config.ModelPath = *modelPath
	}
	if *logLevel != "" {
		config.LogLevel = *logLevel
	}
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "usage: predict -data respondents.csv [-background background.csv] [-model model.db] [-output predictions.csv]")
		os.Exit(2)
	}

	if err := run(config, *dataPath, *backgroundPath, *outputPath); err != nil {
		log.Fatal().Err(err).Msg("Prediction failed")
	}
}

func run(config cfg.Settings, dataPath, backgroundPath, outputPath string) error {
	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(registry)
	if config.MetricsFile != "" {
		defer func() {
			if err := metrics.WriteTextfile(config.MetricsFile, registry); err != nil {
				log.Warn().Err(err).Msg("Failed to write metrics")
			}
		}()
	}

	artifactPath, err := ml.ResolveArtifact(context.Background(), config.ModelPath, config.ModelCacheDir, config.FetchTimeout)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Columns:        features.KeptColumns,
		ReferenceYear:  config.ReferenceYear,
		DriftThreshold: config.DriftThreshold,
		Metrics:        metrics.NewWrapper(m),
	}
	if config.DataPath != "" {
		ledger, err := storage.New(config.DataPath)
		if err != nil {
			return fmt.Errorf("open run ledger: %w", err)
		}
		defer ledger.Close()
		opts.Recorder = ledger
		warnOnContractChange(ledger, features.KeptColumns)
	}

	raw, err := dataio.ReadRespondentsFile(dataPath, features.KeptColumns.Required())
	if err != nil {
		return err
	}
	background, err := readBackground(backgroundPath)
	if err != nil {
		return err
	}

	res, err := pipeline.New(opts).Predict(raw, background, artifactPath)
	if err != nil {
		return err
	}

	if err := dataio.WriteTableFile(outputPath, res.Table); err != nil {
		return err
	}

	fmt.Println("=== Prediction Summary ===")
	fmt.Printf("Rows:        %d\n", len(res.Predictions))
	fmt.Printf("Warnings:    %d\n", len(res.Diagnostics.Warnings()))
	fmt.Printf("Age drift:   %.4f (%s)\n", res.Drift.Score, res.Drift.Severity)
	fmt.Printf("Output:      %s\n", outputPath)
	fmt.Println("==========================")
	return nil
}

// warnOnContractChange compares the last recorded training run with the
// contract compiled into this binary.
func warnOnContractChange(ledger *storage.Store, columns features.ColumnSet) {
	last, err := ledger.LastRun(storage.KindTraining)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read run ledger")
		return
	}
	if last == nil {
		return
	}
	if last.Fingerprint != columns.Fingerprint() {
		log.Warn().
			Str("trained_version", last.ContractVersion).
			Str("current_version", columns.Version()).
			Time("trained_at", last.Timestamp).
			Msg("Last training run used a different feature contract")
	}
}

func readBackground(path string) (*dataframe.DataFrame, error) {
	if path == "" {
		return nil, nil
	}
	df, err := dataio.ReadBackgroundFile(path)
	if err != nil {
		return nil, err
	}
	return &df, nil
}
