package common

import (
	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// NavItem is one sidebar link.
type NavItem struct {
	Label    string
	URL      string
	Section  string
	Count    int
	HasCount bool
	Active   bool
}

// NavGroup is a titled block of sidebar links.
type NavGroup struct {
	Title string
	Items []NavItem
}

// Sidebar holds the navigation shown on every page.
type Sidebar struct {
	Groups []NavGroup
}

type navSpec struct {
	label string
	page  viewstate.Page
	kind  catalog.Kind
}

var navGroups = []struct {
	title string
	items []navSpec
}{
	{"Pipeline", []navSpec{
		{"Deals", viewstate.PageDeals, catalog.KindDeal},
		{"Meetings", viewstate.PageMeetings, catalog.KindMeeting},
		{"Companies", viewstate.PageCompanies, catalog.KindCompany},
		{"Contacts", viewstate.PageContacts, catalog.KindContact},
	}},
	{"Playbook", []navSpec{
		{"Customer profiles", viewstate.PageCustomerProfiles, catalog.KindCustomerProfile},
		{"Buyer personas", viewstate.PageBuyerPersonas, catalog.KindPersona},
		{"Discovery questions", viewstate.PageDiscoveryQuestions, catalog.KindDiscoveryQuestion},
		{"FAQs", viewstate.PageFAQs, catalog.KindFAQ},
		{"Objections", viewstate.PageObjections, catalog.KindObjection},
		{"Positioning", viewstate.PagePositioning, ""},
	}},
	{"System", []navSpec{
		{"Components", viewstate.PageComponents, ""},
	}},
}

// BuildSidebar lists every section with its record count and marks the one
// the current route belongs to.
func BuildSidebar(c *catalog.Catalog, current viewstate.Route) Sidebar {
	counts := c.Counts()
	active := current.Section()

	var sb Sidebar
	for _, g := range navGroups {
		group := NavGroup{Title: g.title}
		for _, spec := range g.items {
			r := viewstate.Route{Page: spec.page}
			item := NavItem{
				Label:   spec.label,
				URL:     r.URL(),
				Section: r.Section(),
				Active:  r.Section() == active,
			}
			if spec.kind != "" {
				item.Count = counts[spec.kind]
				item.HasCount = true
			}
			group.Items = append(group.Items, item)
		}
		sb.Groups = append(sb.Groups, group)
	}
	return sb
}
