// Package meetings provides the upcoming and past meeting lists and the
// meeting detail pages.
package meetings

import (
	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// Register adds the meeting pages to pages.
func Register(pages common.Pages) {
	pages[viewstate.PageMeetings] = ListPage
	pages[viewstate.PageMeetingDetail] = DetailPage
	pages[viewstate.PagePastMeetingDetail] = RecapPage
}

// SetupRoutes configures routes for the meetings feature.
func SetupRoutes(router chi.Router, app *common.App) error {
	Register(app.Pages)

	router.Get("/meetings", app.ServePage)
	router.Get("/meetings/*", app.ServePage)

	return nil
}
