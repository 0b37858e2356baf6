// Package playbook provides the sales playbook pages: customer profiles,
// buyer personas, discovery questions, FAQs, objections and positioning.
package playbook

import (
	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// Register adds the playbook pages to pages.
func Register(pages common.Pages) {
	pages[viewstate.PageCustomerProfiles] = CustomerProfilesPage
	pages[viewstate.PageBuyerPersonas] = BuyerPersonasPage
	pages[viewstate.PageDiscoveryQuestions] = DiscoveryQuestionsPage
	pages[viewstate.PageFAQs] = FAQsPage
	pages[viewstate.PageObjections] = ObjectionsPage
	pages[viewstate.PagePositioning] = PositioningPage
}

// SetupRoutes configures routes for the playbook feature.
func SetupRoutes(router chi.Router, app *common.App) error {
	Register(app.Pages)

	for _, p := range []string{
		"/customer-profiles",
		"/buyer-personas",
		"/discovery-questions",
		"/faqs",
		"/objections",
		"/playbook/positioning",
	} {
		router.Get(p, app.ServePage)
	}

	return nil
}
