// Package router sets up HTTP routes for the UI server.
package router

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	companiesFeature "github.com/leapstack-labs/acronym/internal/ui/features/companies"
	componentsFeature "github.com/leapstack-labs/acronym/internal/ui/features/components"
	contactsFeature "github.com/leapstack-labs/acronym/internal/ui/features/contacts"
	dealsFeature "github.com/leapstack-labs/acronym/internal/ui/features/deals"
	meetingsFeature "github.com/leapstack-labs/acronym/internal/ui/features/meetings"
	playbookFeature "github.com/leapstack-labs/acronym/internal/ui/features/playbook"
	sessionFeature "github.com/leapstack-labs/acronym/internal/ui/features/session"
	"github.com/leapstack-labs/acronym/internal/ui/resources"
	"github.com/starfederation/datastar-go/datastar"
)

// feature wires one feature's routes and pages.
type feature func(chi.Router, *common.App) error

var featureSetups = []feature{
	dealsFeature.SetupRoutes,
	meetingsFeature.SetupRoutes,
	companiesFeature.SetupRoutes,
	contactsFeature.SetupRoutes,
	playbookFeature.SetupRoutes,
	componentsFeature.SetupRoutes,
	sessionFeature.SetupRoutes,
}

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(router chi.Router, app *common.App) error {
	if app.Pages == nil {
		app.Pages = common.Pages{}
	}

	// Hot reload endpoint for dev mode
	if app.IsDev {
		setupReload(router)
	}

	// Static assets
	router.Handle("/static/*", resources.Handler())

	router.Get("/healthz", health(app))

	for _, setup := range featureSetups {
		if err := setup(router, app); err != nil {
			return err
		}
	}

	// "/" redirects to the deals list; anything else renders the not-found page.
	router.Get("/", app.ServePage)
	router.NotFound(app.ServePage)

	return nil
}

// Health is the body of /healthz.
type Health struct {
	Status    string               `json:"status"`
	Documents int                  `json:"documents"`
	Streams   int                  `json:"streams"`
	Catalog   map[catalog.Kind]int `json:"catalog"`
}

func health(app *common.App) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Health{
			Status:    "ok",
			Documents: app.Docs.Len(),
			Streams:   app.Notifier.Len(),
			Catalog:   app.Store.Catalog().Counts(),
		})
	}
}

func setupReload(router chi.Router) {
	reloadChan := make(chan struct{}, 1)
	var hotReloadOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		hotReloadOnce.Do(reload)
		select {
		case <-reloadChan:
			reload()
		case <-r.Context().Done():
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		select {
		case reloadChan <- struct{}{}:
		default:
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
