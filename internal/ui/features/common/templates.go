package common

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/leapstack-labs/acronym/internal/ui/resources"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// DatastarScript is the client runtime loaded by every page.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

//go:embed templates/*.html
var templateFS embed.FS

// partials holds the shared snippets every feature template set starts from.
// It is only cloned, never executed.
var partials = template.Must(template.New("partials").Funcs(Funcs()).ParseFS(templateFS, "templates/partials.html"))

// base is the shell template set: layout, app container, sidebar and panel.
var base = ParseTemplates(templateFS, "templates/layout.html", "templates/app.html")

// Tag is a pill or badge.
type Tag struct {
	Label string
	Class string
	Badge bool
}

// Missing is the inline "not found" message for an unknown id.
type Missing struct {
	Kind string
	ID   string
}

// Funcs returns the template helpers shared by all features.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"tag": func(family, value string) Tag {
			return Tag{Label: value, Class: StyleClass(family, value), Badge: IsBadge(family)}
		},
		"labelTag": func(family, value, label string) Tag {
			return Tag{Label: label, Class: StyleClass(family, value), Badge: IsBadge(family)}
		},
		"missing":       func(kind, id string) Missing { return Missing{Kind: kind, ID: id} },
		"money":         Money,
		"initials":      Initials,
		"health":        HealthLabel,
		"effectiveness": EffectivenessLabel,
		"meetingKind":   MeetingKindLabel,
		"join":          strings.Join,
		"add":           func(a, b int) int { return a + b },
		"static":        resources.StaticPath,
		"navigate":      NavigateAction,
		"dealURL": func(id string) string {
			return viewstate.Route{Page: viewstate.PageDealDetail, EntityID: id}.URL()
		},
		"companyURL": func(id string) string {
			return viewstate.Route{Page: viewstate.PageCompanyDetail, EntityID: id}.URL()
		},
		"contactURL": func(id string) string {
			return viewstate.Route{Page: viewstate.PageContactDetail, EntityID: id}.URL()
		},
		"meetingURL": func(id string, past bool) string {
			if past {
				return viewstate.Route{Page: viewstate.PagePastMeetingDetail, EntityID: id}.URL()
			}
			return viewstate.Route{Page: viewstate.PageMeetingDetail, EntityID: id}.URL()
		},
	}
}

// ParseTemplates clones the shared partials and adds a feature's templates.
func ParseTemplates(fsys fs.FS, patterns ...string) *template.Template {
	t := template.Must(partials.Clone())
	return template.Must(t.ParseFS(fsys, patterns...))
}

// Render executes the named template of set t as a component.
func Render(t *template.Template, name string, data any) templ.Component {
	named := t.Lookup(name)
	if named == nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return fmt.Errorf("template %q is not defined", name)
		})
	}
	return templ.FromGoHTML(named, data)
}

// HTML renders a component into a value that can be embedded in a template.
func HTML(ctx context.Context, c templ.Component) (template.HTML, error) {
	if c == nil {
		return "", nil
	}
	return templ.ToGoHTML(ctx, c)
}

func sortStrings(s []string) {
	sort.Strings(s)
}
