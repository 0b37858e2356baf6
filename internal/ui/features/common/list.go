package common

import (
	"net/url"
	"strconv"

	"github.com/leapstack-labs/acronym/internal/listview"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// Session endpoints driven by the browser.
const (
	StreamPath     = "/session/stream"
	SyncPath       = "/session/sync"
	NavigatePath   = "/session/navigate"
	PanelOpenPath  = "/session/panel/open"
	PanelClosePath = "/session/panel/close"
	VariantPath    = "/session/variant"
	ListPath       = "/session/list"
)

func action(path string, kv ...string) string {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

// NavigateAction moves the tab to target without a page load.
func NavigateAction(target string) string {
	return action(NavigatePath, "url", target)
}

// OpenPanelAction selects id in the current page's panel.
func OpenPanelAction(id string) string {
	return action(PanelOpenPath, "id", id)
}

// ClosePanelAction dismisses the panel for reason.
func ClosePanelAction(reason viewstate.CloseReason) string {
	return action(PanelClosePath, "reason", string(reason))
}

// VariantAction switches the current page to variant v.
func VariantAction(v string) string {
	return action(VariantPath, "value", v)
}

// ListAction changes the current page's list state.
func ListAction(kind string, kv ...string) string {
	return action(ListPath, append([]string{"action", kind}, kv...)...)
}

// FacetOption is one toggle in a filter group.
type FacetOption struct {
	Value  string
	Active bool
	Action string
}

// Facet is a group of filter toggles.
type Facet struct {
	Field   string
	Label   string
	Options []FacetOption
}

// Toolbar is the search box and filter groups above a list.
type Toolbar struct {
	Placeholder string
	Search      string
	Facets      []Facet
	Total       int
	Filtered    bool
	ClearAction string
}

// SortHeader is a sortable column heading.
type SortHeader struct {
	Label  string
	Field  string
	Active bool
	Desc   bool
	Action string
}

// Pager is the pagination footer.
type Pager struct {
	Page       int
	PageCount  int
	HasPrev    bool
	HasNext    bool
	PrevAction string
	NextAction string
}

// FacetSpec names a filter field and its label.
type FacetSpec struct {
	Field string
	Label string
}

// NewToolbar builds the toolbar for items under schema.
func NewToolbar[T any](items []T, schema listview.Schema[T], st listview.State, total int, placeholder string, facets ...FacetSpec) Toolbar {
	tb := Toolbar{
		Placeholder: placeholder,
		Search:      st.Search,
		Total:       total,
		Filtered:    len(st.Filters) > 0 || st.Search != "",
		ClearAction: ListAction("clear"),
	}
	for _, f := range facets {
		facet := Facet{Field: f.Field, Label: f.Label}
		for _, v := range listview.Options(items, schema, f.Field) {
			facet.Options = append(facet.Options, FacetOption{
				Value:  v,
				Active: st.FilterActive(f.Field, v),
				Action: ListAction("filter", "field", f.Field, "value", v),
			})
		}
		tb.Facets = append(tb.Facets, facet)
	}
	return tb
}

// NewSortHeaders builds the sortable headings for the given columns.
// Columns are label/field pairs.
func NewSortHeaders(st listview.State, columns ...string) []SortHeader {
	var out []SortHeader
	for i := 0; i+1 < len(columns); i += 2 {
		field := columns[i+1]
		out = append(out, SortHeader{
			Label:  columns[i],
			Field:  field,
			Active: st.SortField == field,
			Desc:   st.SortField == field && st.SortDesc,
			Action: ListAction("sort", "field", field),
		})
	}
	return out
}

// NewPager builds the pagination footer for a result.
func NewPager[T any](res listview.Result[T]) Pager {
	return Pager{
		Page:       res.Page,
		PageCount:  res.PageCount,
		HasPrev:    res.HasPrev(),
		HasNext:    res.HasNext(),
		PrevAction: ListAction("page", "value", strconv.Itoa(res.Page-1)),
		NextAction: ListAction("page", "value", strconv.Itoa(res.Page+1)),
	}
}

// VariantTab is one option of a variant switcher.
type VariantTab struct {
	Label  string
	Value  string
	URL    string
	Active bool
	Action string
}

// NewVariantTabs builds the switcher for r's page. Labels follow the set order.
func NewVariantTabs(r viewstate.Route, labels ...string) []VariantTab {
	set, ok := viewstate.Variants(r.Page)
	if !ok {
		return nil
	}
	var out []VariantTab
	for i, v := range set.Values {
		label := v
		if i < len(labels) {
			label = labels[i]
		}
		target, _ := r.WithVariant(v)
		out = append(out, VariantTab{
			Label:  label,
			Value:  v,
			URL:    target.URL(),
			Active: set.Normalize(r.Variant) == v,
			Action: VariantAction(v),
		})
	}
	return out
}

// PanelRow links a list row to the page's side panel.
type PanelRow struct {
	URL      string // list URL with the panel key set
	Action   string
	Selected bool
}

// NewPanelRow builds the panel link for id on r's page.
func NewPanelRow(r viewstate.Route, id string) PanelRow {
	spec, ok := viewstate.PanelFor(r)
	if !ok {
		return PanelRow{}
	}
	return PanelRow{
		URL:      r.WithQuery(spec.Key, id).URL(),
		Action:   OpenPanelAction(id),
		Selected: viewstate.PanelID(r) == id,
	}
}
