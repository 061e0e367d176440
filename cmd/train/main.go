package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"prefer-predictor/internal/cfg"
	"prefer-predictor/internal/dataio"
	"prefer-predictor/internal/features"
	"prefer-predictor/internal/metrics"
	"prefer-predictor/internal/pipeline"
	"prefer-predictor/internal/storage"
)

func main() {
	var (
		dataPath       = flag.String("data", "", "Path to the respondent CSV")
		outcomePath    = flag.String("outcome", "", "Path to the outcome CSV")
		backgroundPath = flag.String("background", "", "Path to the background CSV (optional)")
		modelPath      = flag.String("model", "", "Where to write the model artifact (overrides MODEL_PATH)")
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

	if *dataPath == "" || *outcomePath == "" {
		fmt.Fprintln(os.Stderr, "usage: train -data respondents.csv -outcome outcomes.csv [-background background.csv] [-model model.db]")
		os.Exit(2)
	}
	if strings.HasPrefix(config.ModelPath, "http://") || strings.HasPrefix(config.ModelPath, "https://") {
		log.Fatal().Str("model", config.ModelPath).Msg("Training needs a local model path")
	}

	if err := run(config, *dataPath, *outcomePath, *backgroundPath); err != nil {
		log.Fatal().Err(err).Msg("Training failed")
	}
}

func run(config cfg.Settings, dataPath, outcomePath, backgroundPath string) error {
	var err error
	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(registry)
	if config.MetricsFile != "" {
		defer func() {
			if err := metrics.WriteTextfile(config.MetricsFile, registry); err != nil {
				log.Warn().Err(err).Msg("Failed to write metrics")
			}
		}()
	}

	opts := pipeline.Options{
		Columns:        features.KeptColumns,
		ReferenceYear:  config.ReferenceYear,
		Classifier:     config.Classifier,
		DriftThreshold: config.DriftThreshold,
		Metrics:        metrics.NewWrapper(m),
	}
	var ledger *storage.Store
	if config.DataPath != "" {
		ledger, err = storage.New(config.DataPath)
		if err != nil {
			return fmt.Errorf("open run ledger: %w", err)
		}
		defer ledger.Close()
		opts.Recorder = ledger
	}

	raw, err := dataio.ReadRespondentsFile(dataPath, features.KeptColumns.Required())
	if err != nil {
		return err
	}
	outcomes, err := dataio.ReadOutcomesFile(outcomePath)
	if err != nil {
		return err
	}
	background, err := readBackground(backgroundPath)
	if err != nil {
		return err
	}

	res, err := pipeline.New(opts).Train(raw, outcomes, background, config.ModelPath)
	if err != nil {
		var cfgErr *features.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Error().Strs("missing", cfgErr.Missing).Bool("missing_identifier", cfgErr.MissingIdentifier).Msg("Input does not match the feature contract")
		}
		return err
	}

	fmt.Println("=== Training Summary ===")
	fmt.Printf("Classifier:      %s\n", res.Classifier.Kind())
	fmt.Printf("Rows prepared:   %d\n", res.RowsIn)
	fmt.Printf("Rows used:       %d\n", res.RowsUsed)
	fmt.Printf("Missing outcome: %d\n", res.LabelFiltered)
	fmt.Printf("Accuracy:        %.4f\n", res.Metrics.Accuracy)
	fmt.Printf("F1 score:        %.4f\n", res.Metrics.F1Score)
	fmt.Printf("Artifact:        %s\n", res.ArtifactPath)
	fmt.Println("========================")

	if ledger != nil {
		reportHistory(ledger, historyWindow)
	}
	return nil
}

const historyWindow = 30 * 24 * time.Hour

// reportHistory prints the most recent training runs from the ledger so a
// drop in accuracy against earlier fits is visible.
func reportHistory(ledger *storage.Store, window time.Duration) {
	now := time.Now()
	runs, err := ledger.GetRuns(storage.KindTraining, now.Add(-window), now)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read run ledger")
		return
	}
	if len(runs) < 2 {
		return
	}
	if len(runs) > 5 {
		runs = runs[len(runs)-5:]
	}

	fmt.Println("Recent training runs:")
	for _, r := range runs {
		fmt.Printf("  %s  %-8s rows=%-6d accuracy=%.4f\n",
			r.Timestamp.Local().Format(time.DateTime), r.ClassifierKind, r.RowsUsed, r.Metrics["accuracy"])
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
