package companies

import (
	"embed"

	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/listview"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = common.ParseTemplates(templateFS, "templates/*.html")

// Schema is how the company list searches, filters and sorts.
var Schema = listview.Schema[catalog.Company]{
	Text: func(co catalog.Company) []string {
		return []string{co.Name, co.Industry, co.HQ, co.Description}
	},
	Tags: func(co catalog.Company) []string { return co.Tags },
	Facets: map[string]func(catalog.Company) string{
		"industry": func(co catalog.Company) string { return co.Industry },
		"tier":     func(co catalog.Company) string { return co.Tier },
	},
	Sort: map[string]func(catalog.Company) string{
		"name":     func(co catalog.Company) string { return co.Name },
		"industry": func(co catalog.Company) string { return co.Industry },
		"tier":     func(co catalog.Company) string { return co.Tier },
		"hq":       func(co catalog.Company) string { return co.HQ },
	},
}

type companyRow struct {
	Company catalog.Company
	Deals   int
	URL     string
}

type listData struct {
	Toolbar common.Toolbar
	Headers []common.SortHeader
	Rows    []companyRow
	Pager   common.Pager
}

// ListPage renders /companies.
func ListPage(v common.View) common.Content {
	c := v.Catalog
	all := c.Companies.All()
	res := listview.Apply(all, Schema, v.List, v.PageSize)

	rows := make([]companyRow, 0, len(res.Items))
	for _, co := range res.Items {
		rows = append(rows, companyRow{
			Company: co,
			Deals:   len(c.DealsFor(co.ID)),
			URL:     viewstate.Route{Page: viewstate.PageCompanyDetail, EntityID: co.ID}.URL(),
		})
	}

	return common.Content{
		Title: "Companies",
		Main: common.Render(tmpl, "company-list", listData{
			Toolbar: common.NewToolbar(all, Schema, v.List, res.Total, "Search companies",
				common.FacetSpec{Field: "industry", Label: "Industry"},
				common.FacetSpec{Field: "tier", Label: "Tier"},
			),
			Headers: common.NewSortHeaders(v.List, "Company", "name", "Industry", "industry", "Tier", "tier", "HQ", "hq"),
			Rows:    rows,
			Pager:   common.NewPager(res),
		}),
	}
}

type detailData struct {
	Header   common.Header
	Found    bool
	Missing  common.Missing
	Company  catalog.Company
	Contacts []catalog.Contact
	Deals    []catalog.Deal
	Meetings []catalog.Meeting
	Pipeline int
}

// DetailPage renders /companies/:companyId with its contacts, deals and meetings.
func DetailPage(v common.View) common.Content {
	c := v.Catalog
	sel := viewstate.Select(v.Route.EntityID, c.Companies.Get)

	title := "Company not found"
	if sel.Found {
		title = sel.Value.Name
	}
	data := detailData{
		Header: common.Header{
			Crumbs: []common.Crumb{{Label: "Companies", URL: viewstate.Route{Page: viewstate.PageCompanies}.URL()}},
			Title:  title,
		},
		Found:   sel.Found,
		Missing: common.Missing{Kind: "Company", ID: sel.ID},
	}
	if sel.Found {
		data.Company = sel.Value
		data.Contacts = c.ContactsAt(sel.ID)
		data.Deals = c.DealsFor(sel.ID)
		data.Meetings = c.MeetingsFor(sel.ID)
		for _, d := range data.Deals {
			if d.Stage != "Closed Won" && d.Stage != "Closed Lost" {
				data.Pipeline += d.Amount
			}
		}
	}

	return common.Content{
		Title: title,
		Main:  common.Render(tmpl, "company-detail", data),
	}
}
