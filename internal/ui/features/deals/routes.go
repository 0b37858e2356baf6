// Package deals provides the deals list, board and deal detail pages.
package deals

import (
	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// Register adds the deal pages to pages.
func Register(pages common.Pages) {
	pages[viewstate.PageDeals] = ListPage
	pages[viewstate.PageDealDetail] = DetailPage
}

// SetupRoutes configures routes for the deals feature.
func SetupRoutes(router chi.Router, app *common.App) error {
	Register(app.Pages)

	router.Get("/deals", app.ServePage)
	router.Get("/deals/*", app.ServePage)

	return nil
}
