package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/testutil"
)

// writeCatalog copies the demo catalog into a temp dir and returns its path.
func writeCatalog(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "catalog", "data", "demo.yaml"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func dealName(t *testing.T, s *catalog.Store, id string) string {
	t.Helper()
	d, ok := s.Catalog().Deals.Get(id)
	require.True(t, ok)
	return d.Name
}

func newTestServer(t *testing.T, store *catalog.Store) *Server {
	t.Helper()
	return NewServer(Config{
		Store:         store,
		Port:          0,
		Watch:         true,
		SessionSecret: "test-secret-key-32-bytes-long!!",
		PageSize:      25,
		PruneInterval: 10 * time.Millisecond,
		IdleTimeout:   time.Millisecond,
		Logger:        testutil.NewTestLogger(t),
	})
}

func TestServer_Handler(t *testing.T) {
	store, err := catalog.NewStore("")
	require.NoError(t, err)
	s := newTestServer(t, store)

	h, err := s.Handler()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/deals", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Platform Rollout")
	assert.Equal(t, 1, s.App().Docs.Len())
}

func TestServer_ReloadCatalog(t *testing.T) {
	path := writeCatalog(t)
	store, err := catalog.NewStore(path)
	require.NoError(t, err)
	s := newTestServer(t, store)

	ch := s.Notifier().Subscribe()
	defer s.Notifier().Unsubscribe(ch)

	t.Run("valid edit swaps and notifies", func(t *testing.T) {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		edited := strings.ReplaceAll(string(data), "Acme Platform Rollout", "Acme Platform Relaunch")
		require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

		s.reloadCatalog()

		assert.Equal(t, "Acme Platform Relaunch", dealName(t, store, "d1"))
		select {
		case <-ch:
		default:
			t.Fatal("expected a broadcast")
		}
	})

	t.Run("broken file keeps the previous snapshot", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("deals: [unclosed"), 0o644))

		s.reloadCatalog()

		assert.Equal(t, "Acme Platform Relaunch", dealName(t, store, "d1"))
		select {
		case <-ch:
			t.Fatal("no broadcast expected")
		default:
		}
	})
}

func TestServer_WatchCatalog(t *testing.T) {
	path := writeCatalog(t)
	store, err := catalog.NewStore(path)
	require.NoError(t, err)
	s := newTestServer(t, store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.watchCatalog(ctx) }()

	// Give the watcher time to register.
	time.Sleep(50 * time.Millisecond)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := strings.ReplaceAll(string(data), "Hooli Pilot", "Hooli Rollout")
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	require.Eventually(t, func() bool {
		d, ok := store.Catalog().Deals.Get("d5")
		return ok && d.Name == "Hooli Rollout"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestServer_PruneDocuments(t *testing.T) {
	store, err := catalog.NewStore("")
	require.NoError(t, err)
	s := newTestServer(t, store)
	s.App().Docs.Mount("client", "/deals", "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.pruneDocuments(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.App().Docs.Len() == 0 }, time.Second, 10*time.Millisecond)
	cancel()
	<-done
}
