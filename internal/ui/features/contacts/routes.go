// Package contacts provides the contact list with its side panel and the
// contact detail page.
package contacts

import (
	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// Register adds the contact pages to pages.
func Register(pages common.Pages) {
	pages[viewstate.PageContacts] = ListPage
	pages[viewstate.PageContactDetail] = DetailPage
}

// SetupRoutes configures routes for the contacts feature.
func SetupRoutes(router chi.Router, app *common.App) error {
	Register(app.Pages)

	router.Get("/contacts", app.ServePage)
	router.Get("/contacts/*", app.ServePage)

	return nil
}
