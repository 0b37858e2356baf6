package contacts

import (
	"embed"
	"slices"

	"github.com/a-h/templ"
	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/listview"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = common.ParseTemplates(templateFS, "templates/*.html")

// Row is a contact joined with its company name, so the list can search and
// filter by company.
type Row struct {
	catalog.Contact
	Company string
}

// Schema is how the contact list searches, filters and sorts.
var Schema = listview.Schema[Row]{
	Text: func(r Row) []string {
		return []string{r.Name, r.Title, r.Email, r.Company}
	},
	Tags: func(r Row) []string { return r.Tags },
	Facets: map[string]func(Row) string{
		"role":    func(r Row) string { return r.Role },
		"company": func(r Row) string { return r.Company },
	},
	Sort: map[string]func(Row) string{
		"name":    func(r Row) string { return r.Name },
		"company": func(r Row) string { return r.Company },
		"role":    func(r Row) string { return r.Role },
	},
}

// Rows joins every contact with its company.
func Rows(c *catalog.Catalog) []Row {
	all := c.Contacts.All()
	out := make([]Row, len(all))
	for i, ct := range all {
		out[i] = Row{Contact: ct, Company: c.CompanyName(ct.CompanyID)}
	}
	return out
}

type contactRow struct {
	Row
	Panel common.PanelRow
}

type listData struct {
	Toolbar common.Toolbar
	Headers []common.SortHeader
	Rows    []contactRow
	Pager   common.Pager
}

// ListPage renders /contacts with the contact panel.
func ListPage(v common.View) common.Content {
	all := Rows(v.Catalog)
	res := listview.Apply(all, Schema, v.List, v.PageSize)

	rows := make([]contactRow, 0, len(res.Items))
	for _, r := range res.Items {
		rows = append(rows, contactRow{Row: r, Panel: common.NewPanelRow(v.Route, r.ID)})
	}

	return common.Content{
		Title: "Contacts",
		Main: common.Render(tmpl, "contact-list", listData{
			Toolbar: common.NewToolbar(all, Schema, v.List, res.Total, "Search contacts",
				common.FacetSpec{Field: "role", Label: "Role"},
				common.FacetSpec{Field: "company", Label: "Company"},
			),
			Headers: common.NewSortHeaders(v.List, "Name", "name", "Company", "company", "Role", "role"),
			Rows:    rows,
			Pager:   common.NewPager(res),
		}),
		Panel: panel(v),
	}
}

func panel(v common.View) *common.PanelContent {
	if !viewstate.PanelVisible(v.Route) {
		return nil
	}
	spec, _ := viewstate.PanelFor(v.Route)
	sel := viewstate.SelectPanel(v.Route, v.Catalog.Contacts.Get)

	p := &common.PanelContent{
		Title: title(sel),
		Body:  Detail(v.Catalog, sel, viewstate.Embedded),
	}
	if sel.Found {
		p.FullPageURL = spec.FullPageURL(sel.ID)
	}
	return p
}

// DetailPage renders /contacts/:contactId.
func DetailPage(v common.View) common.Content {
	sel := viewstate.Select(v.Route.EntityID, v.Catalog.Contacts.Get)
	return common.Content{
		Title: title(sel),
		Main:  Detail(v.Catalog, sel, viewstate.FullPage),
	}
}

func title(sel viewstate.Selection[catalog.Contact]) string {
	if !sel.Found {
		return "Contact not found"
	}
	return sel.Value.Name
}

type detailData struct {
	FullPage   bool
	Header     common.Header
	Found      bool
	Missing    common.Missing
	Contact    catalog.Contact
	Company    string
	Persona    catalog.Persona
	HasPersona bool
	Deals      []catalog.Deal
	Meetings   []catalog.Meeting
}

// Detail renders one contact for the full page or the side panel.
func Detail(c *catalog.Catalog, sel viewstate.Selection[catalog.Contact], mode viewstate.DisplayMode) templ.Component {
	data := detailData{
		FullPage: mode == viewstate.FullPage,
		Header: common.Header{
			Crumbs: []common.Crumb{{Label: "Contacts", URL: viewstate.Route{Page: viewstate.PageContacts}.URL()}},
			Title:  title(sel),
		},
		Found:   sel.Found,
		Missing: common.Missing{Kind: "Contact", ID: sel.ID},
	}
	if sel.Found {
		ct := sel.Value
		data.Contact = ct
		data.Company = c.CompanyName(ct.CompanyID)
		data.Persona, data.HasPersona = c.Personas.Get(ct.PersonaID)
		data.Deals = stakeholderDeals(c, ct.ID)
		for _, m := range c.Meetings.All() {
			if slices.Contains(m.AttendeeIDs, ct.ID) {
				data.Meetings = append(data.Meetings, m)
			}
		}
	}
	return common.Render(tmpl, "contact-detail", data)
}

// stakeholderDeals returns the deals that list the contact as a stakeholder.
func stakeholderDeals(c *catalog.Catalog, contactID string) []catalog.Deal {
	var out []catalog.Deal
	for _, d := range c.Deals.All() {
		detail, _ := c.DealDetail(d.ID)
		for _, s := range detail.Stakeholders {
			if s.ContactID == contactID {
				out = append(out, d)
				break
			}
		}
	}
	return out
}
