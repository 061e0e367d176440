package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/snappy"
	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const (
	metaBucket  = "meta"
	modelBucket = "model"

	manifestKey = "manifest"
	payloadKey  = "payload"

	artifactFormat = 1
)

// ErrCorruptArtifact reports an artifact file that opens but lacks the
// expected buckets or keys.
var ErrCorruptArtifact = errors.New("artifact is corrupt")

// ArtifactError wraps any failure to persist or restore a model artifact.
type ArtifactError struct {
	Path string
	Op   string // save, open, decode or fetch
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("model artifact %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }

// Artifact is a fitted classifier together with the feature contract it was
// trained against.
type Artifact struct {
	Classifier      Classifier
	Features        []string
	ContractVersion string
	Fingerprint     string
	CreatedAt       time.Time
	TrainingSamples int
	Metrics         ModelMetrics
	AgeBaseline     Distribution
}

type manifest struct {
	Format          int          `json:"format"`
	Kind            string       `json:"kind"`
	Features        []string     `json:"features"`
	ContractVersion string       `json:"contract_version"`
	Fingerprint     string       `json:"fingerprint"`
	CreatedAt       time.Time    `json:"created_at"`
	TrainingSamples int          `json:"training_samples"`
	Metrics         ModelMetrics `json:"metrics"`
	AgeBaseline     Distribution `json:"age_baseline"`
}

// SaveArtifact writes a to path. The file is built next to path under a
// temporary name and renamed into place, replacing any previous artifact.
func SaveArtifact(path string, a *Artifact) error {
	if a == nil || a.Classifier == nil {
		return &ArtifactError{Path: path, Op: "save", Err: ErrNotFitted}
	}

	payload, err := a.Classifier.MarshalBinary()
	if err != nil {
		return &ArtifactError{Path: path, Op: "save", Err: fmt.Errorf("encode classifier: %w", err)}
	}
	meta, err := json.Marshal(manifest{
		Format:          artifactFormat,
		Kind:            a.Classifier.Kind(),
		Features:        a.Features,
		ContractVersion: a.ContractVersion,
		Fingerprint:     a.Fingerprint,
		CreatedAt:       a.CreatedAt.UTC(),
		TrainingSamples: a.TrainingSamples,
		Metrics:         a.Metrics,
		AgeBaseline:     a.AgeBaseline,
	})
	if err != nil {
		return &ArtifactError{Path: path, Op: "save", Err: fmt.Errorf("encode manifest: %w", err)}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &ArtifactError{Path: path, Op: "save", Err: err}
		}
	}

	tmp := fmt.Sprintf("%s.tmp-%s", path, uuid.NewString())
	if err := writeArtifact(tmp, meta, snappy.Encode(nil, payload)); err != nil {
		os.Remove(tmp)
		return &ArtifactError{Path: path, Op: "save", Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &ArtifactError{Path: path, Op: "save", Err: fmt.Errorf("publish artifact: %w", err)}
	}
	return nil
}

func writeArtifact(path string, meta, payload []byte) error {
	db, err := bbolt.Open(path, 0o644, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		mb, err := tx.CreateBucketIfNotExists([]byte(metaBucket))
		if err != nil {
			return fmt.Errorf("create meta bucket: %w", err)
		}
		if err := mb.Put([]byte(manifestKey), meta); err != nil {
			return err
		}
		pb, err := tx.CreateBucketIfNotExists([]byte(modelBucket))
		if err != nil {
			return fmt.Errorf("create model bucket: %w", err)
		}
		return pb.Put([]byte(payloadKey), payload)
	})
	if err != nil {
		db.Close()
		return err
	}
	return db.Close()
}

// LoadArtifact restores the artifact at path. A missing file yields an
// *ArtifactError wrapping os.ErrNotExist.
func LoadArtifact(path string) (*Artifact, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &ArtifactError{Path: path, Op: "open", Err: err}
	}

	db, err := bbolt.Open(path, 0o444, &bbolt.Options{ReadOnly: true, Timeout: 1 * time.Second})
	if err != nil {
		return nil, &ArtifactError{Path: path, Op: "open", Err: err}
	}
	defer db.Close()

	var meta, payload []byte
	err = db.View(func(tx *bbolt.Tx) error {
		mb := tx.Bucket([]byte(metaBucket))
		pb := tx.Bucket([]byte(modelBucket))
		if mb == nil || pb == nil {
			return fmt.Errorf("%w: missing bucket", ErrCorruptArtifact)
		}
		// Values are only valid inside the transaction.
		meta = append([]byte(nil), mb.Get([]byte(manifestKey))...)
		payload = append([]byte(nil), pb.Get([]byte(payloadKey))...)
		if len(meta) == 0 || len(payload) == 0 {
			return fmt.Errorf("%w: missing manifest or payload", ErrCorruptArtifact)
		}
		return nil
	})
	if err != nil {
		return nil, &ArtifactError{Path: path, Op: "open", Err: err}
	}

	var m manifest
	if err := json.Unmarshal(meta, &m); err != nil {
		return nil, &ArtifactError{Path: path, Op: "decode", Err: fmt.Errorf("manifest: %w", err)}
	}
	if m.Format != artifactFormat {
		return nil, &ArtifactError{Path: path, Op: "decode", Err: fmt.Errorf("%w: unsupported format %d", ErrCorruptArtifact, m.Format)}
	}

	raw, err := snappy.Decode(nil, payload)
	if err != nil {
		return nil, &ArtifactError{Path: path, Op: "decode", Err: fmt.Errorf("decompress payload: %w", err)}
	}
	clf, err := decodeClassifier(m.Kind, raw)
	if err != nil {
		return nil, &ArtifactError{Path: path, Op: "decode", Err: err}
	}

	return &Artifact{
		Classifier:      clf,
		Features:        m.Features,
		ContractVersion: m.ContractVersion,
		Fingerprint:     m.Fingerprint,
		CreatedAt:       m.CreatedAt,
		TrainingSamples: m.TrainingSamples,
		Metrics:         m.Metrics,
		AgeBaseline:     m.AgeBaseline,
	}, nil
}
