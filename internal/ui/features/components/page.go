package components

import (
	"embed"

	"github.com/leapstack-labs/acronym/internal/ui/features/common"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = common.ParseTemplates(templateFS, "templates/*.html")

// Family is one style family with a tag per known value.
type Family struct {
	Name string
	Tags []common.Tag
}

// Families lists every style family with its rendered tags.
func Families() []Family {
	var out []Family
	for _, f := range common.StyleFamilies() {
		fam := Family{Name: f}
		for _, v := range common.StyleValues(f) {
			fam.Tags = append(fam.Tags, common.Tag{Label: v, Class: common.StyleClass(f, v), Badge: common.IsBadge(f)})
		}
		// The fallback style for values missing from the table.
		fam.Tags = append(fam.Tags, common.Tag{Label: "unknown", Class: common.StyleClass(f, ""), Badge: common.IsBadge(f)})
		out = append(out, fam)
	}
	return out
}

type pageData struct {
	Families []Family
	Missing  common.Missing
	Names    []string
}

// Page renders /components.
func Page(_ common.View) common.Content {
	return common.Content{
		Title: "Components",
		Main: common.Render(tmpl, "components", pageData{
			Families: Families(),
			Missing:  common.Missing{Kind: "Deal", ID: "example"},
			Names:    []string{"Maria Chen", "Robert Hale", "Pepper Lane"},
		}),
	}
}
