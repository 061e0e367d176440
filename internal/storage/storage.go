// Package storage keeps a ledger of training and prediction runs.
// It uses BoltDB as the underlying storage engine so run history survives
// between CLI invocations and can be queried by time range.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"prefer-predictor/internal/common"
)

// Run kinds; each is stored in its own bucket.
const (
	KindTraining   = "training"
	KindPrediction = "prediction"

	trainingBucket   = "training_runs"
	predictionBucket = "prediction_runs"
)

// RunRecord describes one pipeline run.
type RunRecord struct {
	ID              string             `json:"id"`
	Kind            string             `json:"kind"`
	Timestamp       time.Time          `json:"timestamp"`
	ContractVersion string             `json:"contract_version"`
	Fingerprint     string             `json:"fingerprint"`
	ClassifierKind  string             `json:"classifier_kind,omitempty"`
	RowsIn          int                `json:"rows_in"`
	RowsUsed        int                `json:"rows_used"`
	Warnings        int                `json:"warnings"`
	Metrics         map[string]float64 `json:"metrics,omitempty"`
	ArtifactPath    string             `json:"artifact_path"`
	DriftScore      float64            `json:"drift_score"`
}

// Store is the BoltDB-backed run ledger.
type Store struct {
	db *bbolt.DB
}

// New opens (or creates) the ledger under dataPath.
func New(dataPath string) (*Store, error) {
	dbPath := filepath.Join(dataPath, common.DefaultLedgerFile)

	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(trainingBucket)); err != nil {
			return fmt.Errorf("create training bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(predictionBucket)); err != nil {
			return fmt.Errorf("create prediction bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database. Closing twice is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// RecordRun stores rec, filling ID and Timestamp when unset. Keys are
// "<unixnano>_<id>" so a cursor walks runs in time order.
func (s *Store) RecordRun(rec RunRecord) (RunRecord, error) {
	bucket, err := bucketFor(rec.Kind)
	if err != nil {
		return rec, err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	rec.Timestamp = rec.Timestamp.UTC()

	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucket))

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal run: %w", err)
		}

		return b.Put(runKey(rec.Timestamp, rec.ID), data)
	})
	return rec, err
}

// GetRuns returns runs of kind with start <= timestamp <= end, oldest first.
func (s *Store) GetRuns(kind string, start, end time.Time) ([]RunRecord, error) {
	bucket, err := bucketFor(kind)
	if err != nil {
		return nil, err
	}

	var runs []RunRecord
	err = s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(bucket)).Cursor()

		startKey := timeKey(start)
		// '~' sorts after '_', so the end bound covers every id stamped at end.
		endKey := append(timeKey(end), '~')

		for k, v := c.Seek(startKey); k != nil && bytes.Compare(k, endKey) <= 0; k, v = c.Next() {
			var rec RunRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				continue // Skip malformed records
			}
			runs = append(runs, rec)
		}
		return nil
	})
	return runs, err
}

// LastRun returns the most recent run of kind, or nil when there is none.
func (s *Store) LastRun(kind string) (*RunRecord, error) {
	bucket, err := bucketFor(kind)
	if err != nil {
		return nil, err
	}

	var last *RunRecord
	err = s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(bucket)).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var rec RunRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				continue
			}
			last = &rec
			return nil
		}
		return nil
	})
	return last, err
}

func bucketFor(kind string) (string, error) {
	switch kind {
	case KindTraining:
		return trainingBucket, nil
	case KindPrediction:
		return predictionBucket, nil
	default:
		return "", fmt.Errorf("unknown run kind %q", kind)
	}
}

// timeKey zero-pads the timestamp so lexical order matches time order.
func timeKey(t time.Time) []byte {
	return []byte(fmt.Sprintf("%020d", t.UnixNano()))
}

func runKey(t time.Time, id string) []byte {
	return []byte(fmt.Sprintf("%020d_%s", t.UnixNano(), id))
}
