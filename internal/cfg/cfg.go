package cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"prefer-predictor/internal/common"
	"prefer-predictor/internal/ml"
)

type Settings struct {
	DataPath       string
	ModelPath      string
	ModelCacheDir  string
	FetchTimeout   time.Duration
	ReferenceYear  int
	Classifier     ml.Config
	DriftThreshold float64
	MetricsFile    string
	LogLevel       string
}

type ConfigFile struct {
	Model struct {
		Path         string `yaml:"path"`
		CacheDir     string `yaml:"cacheDir"`
		FetchTimeout string `yaml:"fetchTimeout"`
	} `yaml:"model"`

	Features struct {
		ReferenceYear  int     `yaml:"referenceYear"`
		DriftThreshold float64 `yaml:"driftThreshold"`
	} `yaml:"features"`

	ML struct {
		Kind     string `yaml:"kind"`
		Logistic struct {
			LearningRate float64 `yaml:"learningRate"`
			Epochs       int     `yaml:"epochs"`
			BatchSize    int     `yaml:"batchSize"`
			// Zero is a valid penalty and seed, so unset must be told apart.
			L2        *float64 `yaml:"l2"`
			Seed      *int64   `yaml:"seed"`
			Threshold float64  `yaml:"threshold"`
		} `yaml:"logistic"`
	} `yaml:"ml"`

	System struct {
		DataPath    string `yaml:"dataPath"`
		MetricsFile string `yaml:"metricsFile"`
		LogLevel    string `yaml:"logLevel"`
	} `yaml:"system"`
}

// Load reads an optional .env file, then settings from the YAML file named by
// CONFIG_FILE (environment variables override it) or from the environment alone.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load .env: %w", err)
	}

	// Try to load from YAML file first
	if configPath := os.Getenv(common.EnvConfigFile); configPath != "" {
		return loadFromYAML(configPath)
	}

	// Fallback to environment variables
	return loadFromEnv()
}

func loadFromYAML(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	fetchTimeout, err := time.ParseDuration(config.Model.FetchTimeout)
	if err != nil {
		fetchTimeout = 30 * time.Second
	}

	settings := Settings{
		DataPath:      getEnvOrDefault(common.EnvDataPath, config.System.DataPath),
		ModelPath:     getEnvOrDefault(common.EnvModelPath, orString(config.Model.Path, common.DefaultModelPath)),
		ModelCacheDir: getEnvOrDefault(common.EnvModelCacheDir, orString(config.Model.CacheDir, common.DefaultModelCacheDir)),
		FetchTimeout:  getDurationOrDefault(common.EnvFetchTimeout, fetchTimeout),
		ReferenceYear: getIntFromEnvOrConfig(common.EnvReferenceYear, config.Features.ReferenceYear, common.DefaultReferenceYear),
		Classifier: ml.Config{
			Kind: getEnvOrDefault(common.EnvClassifier, orString(config.ML.Kind, common.DefaultClassifier)),
			Logistic: ml.LogisticConfig{
				LearningRate: getFloatFromEnvOrConfig(common.EnvLearningRate, config.ML.Logistic.LearningRate, common.DefaultLearningRate),
				Epochs:       getIntFromEnvOrConfig(common.EnvEpochs, config.ML.Logistic.Epochs, common.DefaultEpochs),
				BatchSize:    getIntFromEnvOrConfig(common.EnvBatchSize, config.ML.Logistic.BatchSize, common.DefaultBatchSize),
				L2:           getFloatOrDefault(common.EnvL2, floatOr(config.ML.Logistic.L2, common.DefaultL2)),
				Seed:         int64(getIntOrDefault(common.EnvSeed, int(intOr(config.ML.Logistic.Seed, common.DefaultSeed)))),
				Threshold:    getFloatFromEnvOrConfig(common.EnvProbThreshold, config.ML.Logistic.Threshold, common.DefaultProbThreshold),
			},
		},
		DriftThreshold: getFloatFromEnvOrConfig(common.EnvDriftThreshold, config.Features.DriftThreshold, common.DefaultDriftThreshold),
		MetricsFile:    getEnvOrDefault(common.EnvMetricsFile, config.System.MetricsFile),
		LogLevel:       getEnvOrDefault(common.EnvLogLevel, orString(config.System.LogLevel, common.DefaultLogLevel)),
	}

	// Validate configuration
	if err := validateSettings(&settings); err != nil {
		return Settings{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	return settings, nil
}

func loadFromEnv() (Settings, error) {
	settings := Settings{
		DataPath:      os.Getenv(common.EnvDataPath), // optional
		ModelPath:     getEnvOrDefault(common.EnvModelPath, common.DefaultModelPath),
		ModelCacheDir: getEnvOrDefault(common.EnvModelCacheDir, common.DefaultModelCacheDir),
		FetchTimeout:  getDurationOrDefault(common.EnvFetchTimeout, 30*time.Second),
		ReferenceYear: getIntOrDefault(common.EnvReferenceYear, common.DefaultReferenceYear),
		Classifier: ml.Config{
			Kind: getEnvOrDefault(common.EnvClassifier, common.DefaultClassifier),
			Logistic: ml.LogisticConfig{
				LearningRate: getFloatOrDefault(common.EnvLearningRate, common.DefaultLearningRate),
				Epochs:       getIntOrDefault(common.EnvEpochs, common.DefaultEpochs),
				BatchSize:    getIntOrDefault(common.EnvBatchSize, common.DefaultBatchSize),
				L2:           getFloatOrDefault(common.EnvL2, common.DefaultL2),
				Seed:         int64(getIntOrDefault(common.EnvSeed, common.DefaultSeed)),
				Threshold:    getFloatOrDefault(common.EnvProbThreshold, common.DefaultProbThreshold),
			},
		},
		DriftThreshold: getFloatOrDefault(common.EnvDriftThreshold, common.DefaultDriftThreshold),
		MetricsFile:    os.Getenv(common.EnvMetricsFile), // optional
		LogLevel:       getEnvOrDefault(common.EnvLogLevel, common.DefaultLogLevel),
	}

	// Validate configuration
	if err := validateSettings(&settings); err != nil {
		return Settings{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	return settings, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func orString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func floatOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func intOr(v *int64, def int64) int64 {
	if v != nil {
		return *v
	}
	return def
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getIntFromEnvOrConfig(key string, configValue, defaultValue int) int {
	if env := os.Getenv(key); env != "" {
		if val, err := strconv.Atoi(env); err == nil {
			return val
		}
	}
	if configValue != 0 {
		return configValue
	}
	return defaultValue
}

func getFloatFromEnvOrConfig(key string, configValue, defaultValue float64) float64 {
	if env := os.Getenv(key); env != "" {
		if val, err := strconv.ParseFloat(env, 64); err == nil {
			return val
		}
	}
	if configValue != 0 {
		return configValue
	}
	return defaultValue
}

// validateSettings performs range checks on the loaded configuration
func validateSettings(settings *Settings) error {
	if settings.ModelPath == "" {
		return fmt.Errorf("model path cannot be empty")
	}
	if strings.HasPrefix(settings.ModelPath, "http") && settings.ModelCacheDir == "" {
		return fmt.Errorf("model cache dir is required for a remote model path")
	}
	if settings.FetchTimeout < time.Second || settings.FetchTimeout > 10*time.Minute {
		return fmt.Errorf("model fetch timeout must be between 1s and 10m, got %v", settings.FetchTimeout)
	}

	if settings.ReferenceYear < common.MinReferenceYear || settings.ReferenceYear > common.MaxReferenceYear {
		return fmt.Errorf("reference year must be between %d and %d, got %d",
			common.MinReferenceYear, common.MaxReferenceYear, settings.ReferenceYear)
	}

	switch settings.Classifier.Kind {
	case ml.KindLogistic, ml.KindMajority:
	default:
		return fmt.Errorf("classifier must be %q or %q, got %q", ml.KindLogistic, ml.KindMajority, settings.Classifier.Kind)
	}

	lr := settings.Classifier.Logistic
	if lr.LearningRate <= 0 || lr.LearningRate > common.MaxLearningRate {
		return fmt.Errorf("learning rate must be between 0 and %g, got %f", common.MaxLearningRate, lr.LearningRate)
	}
	if lr.Epochs <= 0 || lr.Epochs > common.MaxEpochs {
		return fmt.Errorf("epochs must be between 1 and %d, got %d", common.MaxEpochs, lr.Epochs)
	}
	if lr.BatchSize < 0 {
		return fmt.Errorf("batch size cannot be negative, got %d", lr.BatchSize)
	}
	if lr.L2 < 0 {
		return fmt.Errorf("L2 penalty cannot be negative, got %f", lr.L2)
	}
	if lr.Threshold < common.MinProbThreshold || lr.Threshold > common.MaxProbThreshold {
		return fmt.Errorf("probability threshold must be between %g and %g, got %f",
			common.MinProbThreshold, common.MaxProbThreshold, lr.Threshold)
	}

	if settings.DriftThreshold <= 0 || settings.DriftThreshold > common.MaxDriftThreshold {
		return fmt.Errorf("drift threshold must be between 0 and %g, got %f", common.MaxDriftThreshold, settings.DriftThreshold)
	}

	switch strings.ToLower(settings.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("invalid log level %q", settings.LogLevel)
	}

	return nil
}
