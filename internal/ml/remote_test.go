package ml

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveArtifact_LocalPath(t *testing.T) {
	path, err := ResolveArtifact(context.Background(), "models/model.db", t.TempDir(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "models/model.db", path)
}

func TestResolveArtifact_Download(t *testing.T) {
	src := filepath.Join(t.TempDir(), "model.db")
	require.NoError(t, SaveArtifact(src, fittedArtifact(t)))
	body, err := os.ReadFile(src)
	require.NoError(t, err)

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/artifacts/fertility.db" {
			http.NotFound(w, r)
			return
		}
		w.Write(body)
	}))
	defer server.Close()

	cacheDir := filepath.Join(t.TempDir(), "cache")
	path, err := ResolveArtifact(context.Background(), server.URL+"/artifacts/fertility.db", cacheDir, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cacheDir, "fertility.db"), path)
	assert.Equal(t, 1, requests)

	loaded, err := LoadArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", loaded.Fingerprint)
}

func TestResolveArtifact_HTTPError(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cacheDir := t.TempDir()
	_, err := ResolveArtifact(context.Background(), server.URL+"/model.db", cacheDir, 5*time.Second)

	var artErr *ArtifactError
	require.True(t, errors.As(err, &artErr))
	assert.Equal(t, "fetch", artErr.Op)
	assert.Equal(t, 1, requests, "fetch must not retry")

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
