// Package companies provides the company list and company detail pages.
package companies

import (
	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// Register adds the company pages to pages.
func Register(pages common.Pages) {
	pages[viewstate.PageCompanies] = ListPage
	pages[viewstate.PageCompanyDetail] = DetailPage
}

// SetupRoutes configures routes for the companies feature.
func SetupRoutes(router chi.Router, app *common.App) error {
	Register(app.Pages)

	router.Get("/companies", app.ServePage)
	router.Get("/companies/*", app.ServePage)

	return nil
}
