// Package components provides the page showcasing every presentational primitive.
package components

import (
	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// Register adds the components page to pages.
func Register(pages common.Pages) {
	pages[viewstate.PageComponents] = Page
}

// SetupRoutes configures routes for the components feature.
func SetupRoutes(router chi.Router, app *common.App) error {
	Register(app.Pages)
	router.Get("/components", app.ServePage)
	return nil
}
