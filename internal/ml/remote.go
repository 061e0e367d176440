package ml

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// ResolveArtifact returns a local path for location. Plain paths are returned
// unchanged. http(s) URLs are downloaded once into cacheDir; there is no retry.
func ResolveArtifact(ctx context.Context, location, cacheDir string, timeout time.Duration) (string, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		return location, nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return "", &ArtifactError{Path: location, Op: "fetch", Err: err}
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		name = "model.db"
	}

	r := resty.New()
	if timeout > 0 {
		r.SetTimeout(timeout)
	} else {
		r.SetTimeout(30 * time.Second)
	}

	resp, err := r.R().SetContext(ctx).Get(location)
	if err != nil {
		return "", &ArtifactError{Path: location, Op: "fetch", Err: err}
	}
	if resp.IsError() {
		return "", &ArtifactError{Path: location, Op: "fetch", Err: fmt.Errorf("unexpected status %s", resp.Status())}
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", &ArtifactError{Path: location, Op: "fetch", Err: err}
	}
	dst := filepath.Join(cacheDir, name)
	tmp, err := os.CreateTemp(cacheDir, "."+name+".tmp-*")
	if err != nil {
		return "", &ArtifactError{Path: location, Op: "fetch", Err: err}
	}
	if _, err := tmp.Write(resp.Body()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", &ArtifactError{Path: location, Op: "fetch", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", &ArtifactError{Path: location, Op: "fetch", Err: err}
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return "", &ArtifactError{Path: location, Op: "fetch", Err: err}
	}

	log.Info().
		Str("url", location).
		Str("path", dst).
		Int("bytes", len(resp.Body())).
		Msg("Downloaded model artifact")
	return dst, nil
}
