package cfg

import (
	"testing"
	"time"

	"prefer-predictor/internal/ml"
)

// createValidSettings creates a valid Settings struct for testing
func createValidSettings() *Settings {
	return &Settings{
		ModelPath:     "model.db",
		ModelCacheDir: ".model-cache",
		FetchTimeout:  30 * time.Second,
		ReferenceYear: 2024,
		Classifier: ml.Config{
			Kind:     ml.KindLogistic,
			Logistic: ml.DefaultLogisticConfig(),
		},
		DriftThreshold: 0.1,
		LogLevel:       "info",
	}
}

func TestValidateSettings_ValidConfig(t *testing.T) {
	settings := createValidSettings()

	err := validateSettings(settings)
	if err != nil {
		t.Errorf("Expected valid config to pass, got error: %v", err)
	}
}

func TestValidateSettings_EmptyModelPath(t *testing.T) {
	settings := createValidSettings()
	settings.ModelPath = ""

	if err := validateSettings(settings); err == nil {
		t.Error("Expected error for empty model path")
	}
}

func TestValidateSettings_RemoteModelNeedsCacheDir(t *testing.T) {
	settings := createValidSettings()
	settings.ModelPath = "https://models.example.org/model.db"
	settings.ModelCacheDir = ""

	if err := validateSettings(settings); err == nil {
		t.Error("Expected error for remote model without cache dir")
	}
}

func TestValidateSettings_InvalidFetchTimeout(t *testing.T) {
	testCases := []struct {
		name    string
		timeout time.Duration
		wantErr bool
	}{
		{"too short", 500 * time.Millisecond, true},
		{"minimum valid", time.Second, false},
		{"maximum valid", 10 * time.Minute, false},
		{"too long", 11 * time.Minute, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := createValidSettings()
			settings.FetchTimeout = tc.timeout

			err := validateSettings(settings)
			if tc.wantErr && err == nil {
				t.Error("Expected error for invalid fetch timeout")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no error for valid fetch timeout, got: %v", err)
			}
		})
	}
}

func TestValidateSettings_InvalidReferenceYear(t *testing.T) {
	testCases := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{"too early", 1899, true},
		{"minimum valid", 1900, false},
		{"default", 2024, false},
		{"maximum valid", 2100, false},
		{"too late", 2101, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := createValidSettings()
			settings.ReferenceYear = tc.year

			err := validateSettings(settings)
			if tc.wantErr && err == nil {
				t.Error("Expected error for invalid reference year")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no error for valid reference year, got: %v", err)
			}
		})
	}
}

func TestValidateSettings_Classifier(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr bool
	}{
		{"majority", func(s *Settings) { s.Classifier.Kind = ml.KindMajority }, false},
		{"unknown kind", func(s *Settings) { s.Classifier.Kind = "svm" }, true},
		{"zero learning rate", func(s *Settings) { s.Classifier.Logistic.LearningRate = 0 }, true},
		{"learning rate too high", func(s *Settings) { s.Classifier.Logistic.LearningRate = 11 }, true},
		{"zero epochs", func(s *Settings) { s.Classifier.Logistic.Epochs = 0 }, true},
		{"too many epochs", func(s *Settings) { s.Classifier.Logistic.Epochs = 100001 }, true},
		{"negative batch size", func(s *Settings) { s.Classifier.Logistic.BatchSize = -1 }, true},
		{"negative L2", func(s *Settings) { s.Classifier.Logistic.L2 = -0.1 }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := createValidSettings()
			tc.mutate(settings)

			err := validateSettings(settings)
			if tc.wantErr && err == nil {
				t.Error("Expected error for invalid classifier settings")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestValidateSettings_InvalidProbThreshold(t *testing.T) {
	testCases := []struct {
		name          string
		probThreshold float64
		wantErr       bool
	}{
		{"too low", 0.005, true},
		{"minimum valid", 0.01, false},
		{"normal", 0.5, false},
		{"maximum valid", 0.99, false},
		{"too high", 1.0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := createValidSettings()
			settings.Classifier.Logistic.Threshold = tc.probThreshold

			err := validateSettings(settings)
			if tc.wantErr && err == nil {
				t.Error("Expected error for invalid probability threshold")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no error for valid probability threshold, got: %v", err)
			}
		})
	}
}

func TestValidateSettings_InvalidDriftThreshold(t *testing.T) {
	testCases := []struct {
		name      string
		threshold float64
		wantErr   bool
	}{
		{"zero", 0, true},
		{"small", 0.05, false},
		{"maximum valid", 10, false},
		{"too high", 10.5, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := createValidSettings()
			settings.DriftThreshold = tc.threshold

			err := validateSettings(settings)
			if tc.wantErr && err == nil {
				t.Error("Expected error for invalid drift threshold")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no error for valid drift threshold, got: %v", err)
			}
		})
	}
}
