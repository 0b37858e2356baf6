//go:build !dev

package resources

import (
	"bytes"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

//go:embed static/*
var staticFS embed.FS

var (
	minifyOnce sync.Once
	minified   map[string][]byte
)

// loadAssets minifies every embedded asset once. Assets that fail to minify
// are served as written.
func loadAssets() map[string][]byte {
	minifyOnce.Do(func() {
		minified = make(map[string][]byte)
		_ = fs.WalkDir(staticFS, "static", func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			src, err := staticFS.ReadFile(p)
			if err != nil {
				return err
			}
			name := strings.TrimPrefix(p, "static/")
			out, err := Minify(name, src)
			if err != nil {
				slog.Warn("serving unminified asset", "asset", name, "error", err)
				out = src
			}
			minified[name] = out
			return nil
		})
	})
	return minified
}

// Handler returns an HTTP handler for serving static files.
// In production mode, files are embedded in the binary and minified on first use.
func Handler() http.Handler {
	assets := loadAssets()
	started := time.Now()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/static/")
		body, ok := assets[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		// Cache embedded static assets for 1 year (they never change in prod)
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		http.ServeContent(w, r, name, started, bytes.NewReader(body))
	})
}
