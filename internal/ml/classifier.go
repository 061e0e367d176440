// Package ml provides the binary classifiers used by the pipeline, their
// persisted artifact format, training-set evaluation and the drift probe that
// compares prediction-time feature distributions with the training baseline.
//
// Classifiers are opaque capabilities behind the Classifier interface so an
// implementation can be swapped without touching feature preparation.
package ml

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Classifier kinds understood by NewClassifier and the artifact loader.
const (
	KindLogistic = "logistic"
	KindMajority = "majority"
)

var (
	ErrNotFitted        = errors.New("classifier is not fitted")
	ErrEmptyTrainingSet = errors.New("no training rows")
	ErrInvalidLabel     = errors.New("labels must be 0 or 1")
	ErrFeatureMismatch  = errors.New("feature count does not match fitted model")
	ErrUnknownKind      = errors.New("unknown classifier kind")
)

// Classifier is a binary classifier that can be persisted.
type Classifier interface {
	// Fit trains on X (rows x features) against labels y in {0, 1}.
	Fit(X mat.Matrix, y []float64) error

	// Predict returns one label in {0, 1} per row of X, in row order.
	Predict(X mat.Matrix) ([]int, error)

	// Kind names the implementation for the artifact registry.
	Kind() string

	MarshalBinary() ([]byte, error)
	UnmarshalBinary(data []byte) error
}

// Weighted is implemented by classifiers exposing one coefficient per feature.
type Weighted interface {
	Coefficients() []float64
	Bias() float64
}

// BaseRate is implemented by classifiers that keep the training label balance.
type BaseRate interface {
	PositiveRate() float64
}

// Config selects and parameterises a classifier.
type Config struct {
	Kind     string
	Logistic LogisticConfig
}

// NewClassifier builds an unfitted classifier for cfg.Kind.
func NewClassifier(cfg Config) (Classifier, error) {
	switch cfg.Kind {
	case KindLogistic, "":
		return NewLogisticRegression(cfg.Logistic), nil
	case KindMajority:
		return NewMajority(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}

// decodeClassifier restores a fitted classifier from its persisted payload.
func decodeClassifier(kind string, payload []byte) (Classifier, error) {
	var c Classifier
	switch kind {
	case KindLogistic:
		c = &LogisticRegression{}
	case KindMajority:
		c = &Majority{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err := c.UnmarshalBinary(payload); err != nil {
		return nil, err
	}
	return c, nil
}

func validateLabels(y []float64) error {
	for i, v := range y {
		if v != 0 && v != 1 {
			return fmt.Errorf("%w: row %d has %v", ErrInvalidLabel, i, v)
		}
	}
	return nil
}
