package commands

import (
	"strings"

	"github.com/leapstack-labs/acronym/internal/viewstate"
	"github.com/spf13/cobra"
)

// routeInfo documents one URL pattern of the dashboard.
type routeInfo struct {
	Pattern string
	Example string
	Page    viewstate.Page
}

var routeTable = []routeInfo{
	{"/deals", "/deals", viewstate.PageDeals},
	{"/deals/:view", "/deals/board", viewstate.PageDeals},
	{"/deals/:dealId", "/deals/d1", viewstate.PageDealDetail},
	{"/deals/:view/:dealId", "/deals/v2/d1", viewstate.PageDealDetail},
	{"/meetings", "/meetings", viewstate.PageMeetings},
	{"/meetings/past", "/meetings/past", viewstate.PageMeetings},
	{"/meetings/:meetingId[/:version]", "/meetings/m1/post-call-1", viewstate.PageMeetingDetail},
	{"/meetings/past/:meetingId", "/meetings/past/m4", viewstate.PagePastMeetingDetail},
	{"/companies", "/companies", viewstate.PageCompanies},
	{"/companies/:companyId", "/companies/co-acme", viewstate.PageCompanyDetail},
	{"/contacts", "/contacts", viewstate.PageContacts},
	{"/contacts/:contactId", "/contacts/c1", viewstate.PageContactDetail},
	{"/customer-profiles", "/customer-profiles", viewstate.PageCustomerProfiles},
	{"/buyer-personas", "/buyer-personas", viewstate.PageBuyerPersonas},
	{"/discovery-questions", "/discovery-questions", viewstate.PageDiscoveryQuestions},
	{"/faqs", "/faqs", viewstate.PageFAQs},
	{"/objections", "/objections", viewstate.PageObjections},
	{"/playbook/positioning", "/playbook/positioning", viewstate.PagePositioning},
	{"/components", "/components", viewstate.PageComponents},
}

// NewRoutesCommand creates the routes command.
func NewRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the dashboard URL patterns",
		Long: `List every URL pattern the dashboard serves with its page, the query key
that opens its side panel and the view variants it accepts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderer(cmd).Table([]string{"Pattern", "Page", "Panel", "Variants", "Example"}, routeRows())
		},
	}
}

func routeRows() [][]string {
	rows := make([][]string, len(routeTable))
	for i, r := range routeTable {
		panel := ""
		if spec, ok := viewstate.PanelFor(viewstate.Route{Page: r.Page}); ok {
			panel = "?" + spec.Key + "="
		}
		variants := ""
		if set, ok := viewstate.Variants(r.Page); ok {
			variants = strings.Join(set.Values, "|")
		}
		rows[i] = []string{r.Pattern, string(r.Page), panel, variants, r.Example}
	}
	return rows
}
