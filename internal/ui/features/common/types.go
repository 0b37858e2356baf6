package common

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/listview"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// View is everything a page needs to render: the catalog snapshot, the
// resolved route and the page's list state.
type View struct {
	Catalog  *catalog.Catalog
	Route    viewstate.Route
	List     listview.State
	PageSize int
}

// Crumb is one breadcrumb entry.
type Crumb struct {
	Label string
	URL   string
}

// Header is the breadcrumb and title bar of a full-page detail.
type Header struct {
	Crumbs []Crumb
	Title  string
}

// Content is the rendered body of a page.
type Content struct {
	Title  string
	Main   templ.Component
	Panel  *PanelContent
	Status int
}

// PanelContent is the side panel hosted by a list page.
type PanelContent struct {
	Title       string
	Body        templ.Component
	FullPageURL string
}

// PageFunc renders one page.
type PageFunc func(View) Content

// Pages maps every page to its renderer.
type Pages map[viewstate.Page]PageFunc

// Render dispatches to the page's renderer. Unregistered pages render the
// not-found page with status 404.
func (p Pages) Render(v View) Content {
	fn, ok := p[v.Route.Page]
	if !ok || v.Route.Page == viewstate.PageNotFound {
		return NotFoundPage(v)
	}
	c := fn(v)
	if c.Status == 0 {
		c.Status = http.StatusOK
	}
	return c
}

// NotFoundPage renders the page shown for unknown paths.
func NotFoundPage(v View) Content {
	return Content{
		Title:  "Page not found",
		Main:   Render(base, "page-not-found", struct{ Path string }{v.Route.Path()}),
		Status: http.StatusNotFound,
	}
}
