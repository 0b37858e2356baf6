package deals

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

// stageOrder is the pipeline order of board columns.
var stageOrder = []string{"Qualification", "Discovery", "Proposal", "Negotiation", "Closed Won", "Closed Lost"}

// Schema is how the deals list searches, filters and sorts.
var Schema = listview.Schema[catalog.Deal]{
	Text: func(d catalog.Deal) []string {
		return []string{d.Name, d.Owner, d.Stage, d.Category}
	},
	Tags: func(d catalog.Deal) []string { return d.Tags },
	Facets: map[string]func(catalog.Deal) string{
		"stage":    func(d catalog.Deal) string { return d.Stage },
		"category": func(d catalog.Deal) string { return d.Category },
		"owner":    func(d catalog.Deal) string { return d.Owner },
	},
	Sort: map[string]func(catalog.Deal) string{
		"name":       func(d catalog.Deal) string { return d.Name },
		"stage":      func(d catalog.Deal) string { return d.Stage },
		"category":   func(d catalog.Deal) string { return d.Category },
		"owner":      func(d catalog.Deal) string { return d.Owner },
		"close_date": func(d catalog.Deal) string { return d.CloseDate },
	},
}

type dealRow struct {
	Deal    catalog.Deal
	Company string
	Panel   common.PanelRow
}

type boardColumn struct {
	Stage  string
	Rows   []dealRow
	Amount int
}

type listData struct {
	Board   bool
	Tabs    []common.VariantTab
	Toolbar common.Toolbar
	Headers []common.SortHeader
	Rows    []dealRow
	Columns []boardColumn
	Pager   common.Pager
}

// ListPage renders /deals in its table or board variant with the deal panel.
func ListPage(v common.View) common.Content {
	c := v.Catalog
	all := c.Deals.All()
	board := viewstate.DealListVariants.Normalize(v.Route.Variant) == "board"

	pageSize := v.PageSize
	if board {
		// The board shows every matching deal; columns replace pagination.
		pageSize = max(len(all), 1)
	}
	res := listview.Apply(all, Schema, v.List, pageSize)

	rows := make([]dealRow, 0, len(res.Items))
	for _, d := range res.Items {
		rows = append(rows, dealRow{
			Deal:    d,
			Company: c.CompanyName(d.CompanyID),
			Panel:   common.NewPanelRow(v.Route, d.ID),
		})
	}

	data := listData{
		Board: board,
		Tabs:  common.NewVariantTabs(v.Route, "Table", "Board"),
		Toolbar: common.NewToolbar(all, Schema, v.List, res.Total, "Search deals",
			common.FacetSpec{Field: "stage", Label: "Stage"},
			common.FacetSpec{Field: "category", Label: "Category"},
			common.FacetSpec{Field: "owner", Label: "Owner"},
		),
		Headers: common.NewSortHeaders(v.List,
			"Deal", "name",
			"Stage", "stage",
			"Category", "category",
			"Owner", "owner",
			"Close date", "close_date",
		),
		Rows:  rows,
		Pager: common.NewPager(res),
	}
	if board {
		data.Columns = columns(rows)
	}

	return common.Content{
		Title: "Deals",
		Main:  common.Render(tmpl, "deal-list", data),
		Panel: panel(v),
	}
}

func columns(rows []dealRow) []boardColumn {
	stages := slices.Clone(stageOrder)
	for _, r := range rows {
		if r.Deal.Stage != "" && !slices.Contains(stages, r.Deal.Stage) {
			stages = append(stages, r.Deal.Stage)
		}
	}
	out := make([]boardColumn, 0, len(stages))
	for _, s := range stages {
		col := boardColumn{Stage: s}
		for _, r := range rows {
			if r.Deal.Stage == s {
				col.Rows = append(col.Rows, r)
				col.Amount += r.Deal.Amount
			}
		}
		out = append(out, col)
	}
	return out
}

func panel(v common.View) *common.PanelContent {
	if !viewstate.PanelVisible(v.Route) {
		return nil
	}
	spec, _ := viewstate.PanelFor(v.Route)
	sel := viewstate.SelectPanel(v.Route, v.Catalog.DealDetail)

	p := &common.PanelContent{
		Title: title(sel),
		Body:  Detail(v.Catalog, sel, DetailOptions{Mode: viewstate.Embedded}),
	}
	if sel.Found {
		p.FullPageURL = spec.FullPageURL(sel.ID)
	}
	return p
}

// DetailPage renders /deals/:dealId and /deals/v2/:dealId.
func DetailPage(v common.View) common.Content {
	sel := viewstate.Select(v.Route.EntityID, v.Catalog.DealDetail)
	return common.Content{
		Title: title(sel),
		Main: Detail(v.Catalog, sel, DetailOptions{
			Mode:    viewstate.FullPage,
			Variant: v.Route.Variant,
			Tabs:    common.NewVariantTabs(v.Route, "Classic", "Stakeholders"),
		}),
	}
}

func title(sel viewstate.Selection[catalog.DealDetail]) string {
	if !sel.Found {
		return "Deal not found"
	}
	return sel.Value.Name
}

// DetailOptions frames a deal detail.
type DetailOptions struct {
	Mode    viewstate.DisplayMode
	Variant string
	Tabs    []common.VariantTab
}

type stakeholder struct {
	catalog.Stakeholder
	Name  string
	Title string
	Found bool
}

// SignalHealth weighs the positive signals of a deal against its risks.
type SignalHealth struct {
	Positive int
	Risk     int
}

// Score is the positive weight minus the risk weight.
func (h SignalHealth) Score() int {
	return h.Positive - h.Risk
}

// Verdict summarizes the score.
func (h SignalHealth) Verdict() string {
	switch {
	case h.Positive == 0 && h.Risk == 0:
		return "No signals recorded"
	case h.Score() > 0:
		return "Healthy"
	case h.Score() < 0:
		return "Needs attention"
	default:
		return "Balanced"
	}
}

// Weigh sums the weights of positive and risk signals.
func Weigh(positive, risks []catalog.Signal) SignalHealth {
	var h SignalHealth
	for _, s := range positive {
		h.Positive += s.Weight
	}
	for _, s := range risks {
		h.Risk += s.Weight
	}
	return h
}

type detailData struct {
	FullPage     bool
	Header       common.Header
	Tabs         []common.VariantTab
	V2           bool
	Found        bool
	Missing      common.Missing
	Deal         catalog.DealDetail
	Company      string
	Positive     []catalog.Signal
	Risks        []catalog.Signal
	Health       SignalHealth
	Stakeholders []stakeholder
	Meetings     []catalog.Meeting
}

// Detail renders one deal. The same rendering serves the full page and the
// side panel; only the full page carries the breadcrumb and variant tabs.
func Detail(c *catalog.Catalog, sel viewstate.Selection[catalog.DealDetail], opts DetailOptions) templ.Component {
	data := detailData{
		FullPage: opts.Mode == viewstate.FullPage,
		Header: common.Header{
			Crumbs: []common.Crumb{{Label: "Deals", URL: viewstate.Route{Page: viewstate.PageDeals}.URL()}},
			Title:  title(sel),
		},
		Tabs:    opts.Tabs,
		V2:      viewstate.DealDetailVariants.Normalize(opts.Variant) == "v2",
		Found:   sel.Found,
		Missing: common.Missing{Kind: "Deal", ID: sel.ID},
	}
	if !data.FullPage {
		data.Tabs = nil
	}

	if sel.Found {
		d := sel.Value
		data.Deal = d
		data.Company = c.CompanyName(d.CompanyID)
		data.Positive = c.SignalsByID(d.Overview.PositiveSignals)
		data.Risks = c.SignalsByID(d.Overview.RiskFactors)
		data.Health = Weigh(data.Positive, data.Risks)
		for _, s := range d.Stakeholders {
			ct, ok := c.Contacts.Get(s.ContactID)
			data.Stakeholders = append(data.Stakeholders, stakeholder{
				Stakeholder: s,
				Name:        c.ContactName(s.ContactID),
				Title:       ct.Title,
				Found:       ok,
			})
		}
		for _, id := range d.MeetingIDs {
			if m, ok := c.Meetings.Get(id); ok {
				data.Meetings = append(data.Meetings, m)
			}
		}
	}
	return common.Render(tmpl, "deal-detail", data)
}
