package meetings

import (
	"embed"

	"github.com/a-h/templ"
	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/listview"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = common.ParseTemplates(templateFS, "templates/*.html")

// Version names a meeting detail layout.
type Version string

// Detail layouts. Recap is the past-meeting page; the others are the
// versions of the upcoming meeting detail.
const (
	VersionFirstCall Version = "1st-call"
	VersionPostCall  Version = "post-call-1"
	VersionRecap     Version = "recap"
)

// Schema is how the meeting lists search, filter and sort.
var Schema = listview.Schema[catalog.Meeting]{
	Text: func(m catalog.Meeting) []string {
		return []string{m.Title, m.Date, m.Kind}
	},
	Tags: func(m catalog.Meeting) []string { return m.Tags },
	Facets: map[string]func(catalog.Meeting) string{
		"kind": func(m catalog.Meeting) string { return m.Kind },
	},
	Sort: map[string]func(catalog.Meeting) string{
		"title": func(m catalog.Meeting) string { return m.Title },
		"date":  func(m catalog.Meeting) string { return m.Date + " " + m.Time },
		"kind":  func(m catalog.Meeting) string { return m.Kind },
	},
}

type meetingRow struct {
	Meeting catalog.Meeting
	Company string
	Panel   common.PanelRow
}

type listData struct {
	Past    bool
	Tabs    []common.VariantTab
	Toolbar common.Toolbar
	Headers []common.SortHeader
	Rows    []meetingRow
	Pager   common.Pager
}

// ListPage renders /meetings and /meetings/past with the meeting panel.
func ListPage(v common.View) common.Content {
	c := v.Catalog
	past := v.Route.Variant == "past"
	items := c.MeetingsByStatus(past)
	res := listview.Apply(items, Schema, v.List, v.PageSize)

	rows := make([]meetingRow, 0, len(res.Items))
	for _, m := range res.Items {
		rows = append(rows, meetingRow{
			Meeting: m,
			Company: c.CompanyName(m.CompanyID),
			Panel:   common.NewPanelRow(v.Route, m.ID),
		})
	}

	title := "Upcoming meetings"
	if past {
		title = "Past meetings"
	}
	return common.Content{
		Title: title,
		Main: common.Render(tmpl, "meeting-list", listData{
			Past:    past,
			Tabs:    common.NewVariantTabs(v.Route, "Upcoming", "Past"),
			Toolbar: common.NewToolbar(items, Schema, v.List, res.Total, "Search meetings", common.FacetSpec{Field: "kind", Label: "Type"}),
			Headers: common.NewSortHeaders(v.List, "Meeting", "title", "Date", "date", "Type", "kind"),
			Rows:    rows,
			Pager:   common.NewPager(res),
		}),
		Panel: panel(v, past),
	}
}

func panel(v common.View, past bool) *common.PanelContent {
	if !viewstate.PanelVisible(v.Route) {
		return nil
	}
	spec, _ := viewstate.PanelFor(v.Route)
	sel := viewstate.SelectPanel(v.Route, v.Catalog.Meetings.Get)

	version := VersionFirstCall
	if past {
		version = VersionRecap
	}
	p := &common.PanelContent{
		Title: title(sel),
		Body:  Detail(v.Catalog, sel, DetailOptions{Mode: viewstate.Embedded, Version: version}),
	}
	if sel.Found {
		p.FullPageURL = spec.FullPageURL(sel.ID)
	}
	return p
}

// DetailPage renders /meetings/:meetingId in its requested version.
func DetailPage(v common.View) common.Content {
	sel := viewstate.Select(v.Route.EntityID, v.Catalog.Meetings.Get)
	return common.Content{
		Title: title(sel),
		Main: Detail(v.Catalog, sel, DetailOptions{
			Mode:    viewstate.FullPage,
			Version: Version(viewstate.MeetingDetailVariants.Normalize(v.Route.Variant)),
			Tabs:    common.NewVariantTabs(v.Route, "First call", "Post-call"),
		}),
	}
}

// RecapPage renders /meetings/past/:meetingId.
func RecapPage(v common.View) common.Content {
	sel := viewstate.Select(v.Route.EntityID, v.Catalog.Meetings.Get)
	return common.Content{
		Title: title(sel),
		Main:  Detail(v.Catalog, sel, DetailOptions{Mode: viewstate.FullPage, Version: VersionRecap}),
	}
}

func title(sel viewstate.Selection[catalog.Meeting]) string {
	if !sel.Found {
		return "Meeting not found"
	}
	return sel.Value.Title
}

// DetailOptions frames a meeting detail.
type DetailOptions struct {
	Mode    viewstate.DisplayMode
	Version Version
	Tabs    []common.VariantTab
}

type attendee struct {
	ID    string
	Name  string
	Title string
	Found bool
}

type detailData struct {
	FullPage  bool
	Header    common.Header
	Tabs      []common.VariantTab
	Version   Version
	Found     bool
	Missing   common.Missing
	Meeting   catalog.Meeting
	Company   string
	Deal      catalog.Deal
	HasDeal   bool
	Attendees []attendee
	Questions []catalog.DiscoveryQuestion
	Signals   []catalog.Signal
}

// FirstCall reports whether the first-call layout applies.
func (d detailData) FirstCall() bool {
	return d.Version == VersionFirstCall
}

// Recap reports whether the past-meeting layout applies.
func (d detailData) Recap() bool {
	return d.Version == VersionRecap
}

// Detail renders one meeting in the given version. The panel and the full
// page share it; only the full page carries the breadcrumb and version tabs.
func Detail(c *catalog.Catalog, sel viewstate.Selection[catalog.Meeting], opts DetailOptions) templ.Component {
	if opts.Version == "" {
		opts.Version = VersionFirstCall
	}

	list := viewstate.Route{Page: viewstate.PageMeetings}
	if opts.Version == VersionRecap {
		list.Variant = "past"
	}
	data := detailData{
		FullPage: opts.Mode == viewstate.FullPage,
		Header: common.Header{
			Crumbs: []common.Crumb{{Label: "Meetings", URL: list.URL()}},
			Title:  title(sel),
		},
		Version: opts.Version,
		Found:   sel.Found,
		Missing: common.Missing{Kind: "Meeting", ID: sel.ID},
	}
	if data.FullPage {
		data.Tabs = opts.Tabs
	}
	if !sel.Found {
		return common.Render(tmpl, "meeting-detail", data)
	}

	m := sel.Value
	data.Meeting = m
	data.Company = c.CompanyName(m.CompanyID)
	data.Deal, data.HasDeal = c.Deals.Get(m.DealID)

	var personas []string
	for _, id := range m.AttendeeIDs {
		ct, ok := c.Contacts.Get(id)
		data.Attendees = append(data.Attendees, attendee{
			ID:    id,
			Name:  c.ContactName(id),
			Title: ct.Title,
			Found: ok,
		})
		if ok && ct.PersonaID != "" {
			personas = append(personas, ct.PersonaID)
		}
	}
	data.Questions = c.QuestionsForPersonas(personas)
	data.Signals = c.SignalsByID(m.Recap.SignalIDs)

	return common.Render(tmpl, "meeting-detail", data)
}
