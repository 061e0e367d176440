package common

// Column names shared by the loaders, the feature contract and the pipeline
const (
	IdentifierColumn = "nomem_encr"
	BirthYearColumn  = "birthyear_bg"
	AgeColumn        = "age"
	OutcomeColumn    = "new_child"
	PredictionColumn = "prediction"
)

// Environment variable keys
const (
	EnvConfigFile     = "CONFIG_FILE"
	EnvDataPath       = "DATA_PATH"
	EnvModelPath      = "MODEL_PATH"
	EnvModelCacheDir  = "MODEL_CACHE_DIR"
	EnvFetchTimeout   = "MODEL_FETCH_TIMEOUT"
	EnvReferenceYear  = "REFERENCE_YEAR"
	EnvClassifier     = "CLASSIFIER"
	EnvLearningRate   = "LEARNING_RATE"
	EnvEpochs         = "EPOCHS"
	EnvBatchSize      = "BATCH_SIZE"
	EnvL2             = "L2_PENALTY"
	EnvSeed           = "SEED"
	EnvProbThreshold  = "PROB_THRESHOLD"
	EnvDriftThreshold = "DRIFT_THRESHOLD"
	EnvMetricsFile    = "METRICS_FILE"
	EnvLogLevel       = "LOG_LEVEL"
)

// Configuration defaults
const (
	DefaultModelPath      = "model.db"
	DefaultModelCacheDir  = ".model-cache"
	DefaultReferenceYear  = 2024
	DefaultClassifier     = "logistic"
	DefaultLearningRate   = 0.1
	DefaultEpochs         = 200
	DefaultBatchSize      = 0 // full batch
	DefaultL2             = 1e-4
	DefaultSeed           = 42
	DefaultProbThreshold  = 0.5
	DefaultDriftThreshold = 0.1
	DefaultLogLevel       = "info"
	DefaultLedgerFile     = "prefer-runs.db"
	DefaultPredictionPath = "predictions.csv"
)

// Validation constants
const (
	MinReferenceYear  = 1900
	MaxReferenceYear  = 2100
	MaxEpochs         = 100000
	MaxLearningRate   = 10.0
	MinProbThreshold  = 0.01
	MaxProbThreshold  = 0.99
	MaxDriftThreshold = 10.0
)
