package common

import (
	"context"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/listview"
	"github.com/leapstack-labs/acronym/internal/ui/notifier"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// App holds the dependencies shared by every feature.
type App struct {
	Store    *catalog.Store
	Docs     *viewstate.Registry
	Sessions sessions.Store
	Notifier *notifier.Notifier
	Pages    Pages
	PageSize int
	IsDev    bool
	Logger   *slog.Logger
}

// View builds the render input for doc.
func (a *App) View(doc *viewstate.Document) View {
	r := doc.Route()
	size := a.PageSize
	if size < 1 {
		size = listview.DefaultPageSize
	}
	return View{
		Catalog:  a.Store.Catalog(),
		Route:    r,
		List:     doc.List(r.Page),
		PageSize: size,
	}
}

// Content renders doc's current page.
func (a *App) Content(doc *viewstate.Document) Content {
	return a.Pages.Render(a.View(doc))
}

// ServePage renders the full HTML page for the request URL. Non-canonical
// URLs redirect; every other request mounts a document for a new tab.
func (a *App) ServePage(w http.ResponseWriter, r *http.Request) {
	res := viewstate.Resolve(r.URL.Path, r.URL.RawQuery)
	if res.Redirect != "" {
		http.Redirect(w, r, res.Redirect, http.StatusFound)
		return
	}

	client, err := EnsureClientID(a.Sessions, w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	doc := a.Docs.Mount(client, res.Route.URL(), "")
	content := a.Content(doc)

	page := PageComponent(doc, content, a.sidebar(doc.Route()), a.IsDev)
	html, err := HTML(r.Context(), page)
	if err != nil {
		a.Log().Error("failed to render page", "path", r.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(content.Status)
	_, _ = io.WriteString(w, string(html))
}

// AppView renders the #app container of doc: sidebar, page and panel.
func (a *App) AppView(doc *viewstate.Document) templ.Component {
	content := a.Content(doc)
	return AppComponent(content, a.sidebar(doc.Route()))
}

func (a *App) sidebar(r viewstate.Route) Sidebar {
	return BuildSidebar(a.Store.Catalog(), r)
}

// Log returns the app logger, falling back to the default logger.
func (a *App) Log() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

type appData struct {
	Title   string
	Sidebar Sidebar
	Main    template.HTML
	Panel   *panelData
}

type panelData struct {
	Title         string
	Body          template.HTML
	FullPageURL   string
	CloseButton   string
	CloseBackdrop string
	CloseEscape   string
}

type layoutData struct {
	Title    string
	Datastar string
	Overflow string
	Signals  string
	IsDev    bool
	App      template.HTML
}

// AppComponent renders the #app container for content.
func AppComponent(content Content, sidebar Sidebar) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		main, err := HTML(ctx, content.Main)
		if err != nil {
			return err
		}
		data := appData{
			Title:   content.Title,
			Sidebar: sidebar,
			Main:    main,
		}
		if content.Panel != nil {
			body, err := HTML(ctx, content.Panel.Body)
			if err != nil {
				return err
			}
			data.Panel = &panelData{
				Title:         content.Panel.Title,
				Body:          body,
				FullPageURL:   content.Panel.FullPageURL,
				CloseButton:   ClosePanelAction(viewstate.CloseButton),
				CloseBackdrop: ClosePanelAction(viewstate.CloseBackdrop),
				CloseEscape:   ClosePanelAction(viewstate.CloseEscape),
			}
		}
		return base.ExecuteTemplate(w, "app", data)
	})
}

// PageComponent renders the complete HTML document for doc.
func PageComponent(doc *viewstate.Document, content Content, sidebar Sidebar, isDev bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		app, err := HTML(ctx, AppComponent(content, sidebar))
		if err != nil {
			return err
		}
		return base.ExecuteTemplate(w, "layout", layoutData{
			Title:    content.Title,
			Datastar: DatastarScript,
			Overflow: doc.Overflow(),
			Signals:  SignalsJSON(Signals{Tab: doc.ID(), Search: doc.List(doc.Route().Page).Search}),
			IsDev:    isDev,
			App:      app,
		})
	})
}
