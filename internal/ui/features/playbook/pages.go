package playbook

import (
	"embed"

	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/listview"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = common.ParseTemplates(templateFS, "templates/*.html")

type listData[T any] struct {
	Title   string
	Toolbar common.Toolbar
	Headers []common.SortHeader
	Items   []T
	Pager   common.Pager
}

// listSpec describes one playbook list page.
type listSpec[T any] struct {
	title       string
	template    string
	placeholder string
	schema      listview.Schema[T]
	columns     []string // label/field pairs
	facets      []common.FacetSpec
}

func (s listSpec[T]) render(v common.View, items []T) common.Content {
	res := listview.Apply(items, s.schema, v.List, v.PageSize)
	return common.Content{
		Title: s.title,
		Main: common.Render(tmpl, s.template, listData[T]{
			Title:   s.title,
			Toolbar: common.NewToolbar(items, s.schema, v.List, res.Total, s.placeholder, s.facets...),
			Headers: common.NewSortHeaders(v.List, s.columns...),
			Items:   res.Items,
			Pager:   common.NewPager(res),
		}),
	}
}

// =============================================================================
// Customer profiles
// =============================================================================

// ProfileSchema is how customer profiles are searched, filtered and sorted.
var ProfileSchema = listview.Schema[catalog.CustomerProfile]{
	Text: func(p catalog.CustomerProfile) []string {
		return append([]string{p.Name, p.Industry, p.Description}, p.Criteria...)
	},
	Tags: func(p catalog.CustomerProfile) []string { return p.Tags },
	Facets: map[string]func(catalog.CustomerProfile) string{
		"category": func(p catalog.CustomerProfile) string { return p.Category },
		"industry": func(p catalog.CustomerProfile) string { return p.Industry },
	},
	Sort: map[string]func(catalog.CustomerProfile) string{
		"name":     func(p catalog.CustomerProfile) string { return p.Name },
		"industry": func(p catalog.CustomerProfile) string { return p.Industry },
		"category": func(p catalog.CustomerProfile) string { return p.Category },
	},
}

var profiles = listSpec[catalog.CustomerProfile]{
	title:       "Customer profiles",
	template:    "customer-profiles",
	placeholder: "Search profiles",
	schema:      ProfileSchema,
	columns:     []string{"Name", "name", "Industry", "industry", "Segment", "category"},
	facets:      []common.FacetSpec{{Field: "category", Label: "Segment"}, {Field: "industry", Label: "Industry"}},
}

// CustomerProfilesPage renders /customer-profiles.
func CustomerProfilesPage(v common.View) common.Content {
	return profiles.render(v, v.Catalog.CustomerProfiles.All())
}

// =============================================================================
// Buyer personas
// =============================================================================

// PersonaCard is a persona with its objections and discovery questions resolved.
type PersonaCard struct {
	catalog.Persona
	Objections []catalog.Objection
	Questions  []catalog.DiscoveryQuestion
}

// PersonaSchema is how buyer personas are searched, filtered and sorted.
var PersonaSchema = listview.Schema[PersonaCard]{
	Text: func(p PersonaCard) []string {
		out := []string{p.Name, p.Department, p.Seniority}
		out = append(out, p.Goals...)
		return append(out, p.Pains...)
	},
	Tags: func(p PersonaCard) []string { return p.Tags },
	Facets: map[string]func(PersonaCard) string{
		"category":   func(p PersonaCard) string { return p.Category },
		"department": func(p PersonaCard) string { return p.Department },
	},
	Sort: map[string]func(PersonaCard) string{
		"name":       func(p PersonaCard) string { return p.Name },
		"department": func(p PersonaCard) string { return p.Department },
		"category":   func(p PersonaCard) string { return p.Category },
	},
}

var personas = listSpec[PersonaCard]{
	title:       "Buyer personas",
	template:    "buyer-personas",
	placeholder: "Search personas",
	schema:      PersonaSchema,
	columns:     []string{"Name", "name", "Department", "department", "Role", "category"},
	facets:      []common.FacetSpec{{Field: "category", Label: "Role"}, {Field: "department", Label: "Department"}},
}

// PersonaCards resolves the objections and questions of every persona.
func PersonaCards(c *catalog.Catalog) []PersonaCard {
	all := c.Personas.All()
	out := make([]PersonaCard, len(all))
	for i, p := range all {
		card := PersonaCard{Persona: p, Questions: c.QuestionsForPersonas([]string{p.ID})}
		for _, id := range p.ObjectionIDs {
			if o, ok := c.Objections.Get(id); ok {
				card.Objections = append(card.Objections, o)
			}
		}
		out[i] = card
	}
	return out
}

// BuyerPersonasPage renders /buyer-personas.
func BuyerPersonasPage(v common.View) common.Content {
	return personas.render(v, PersonaCards(v.Catalog))
}

// =============================================================================
// Discovery questions
// =============================================================================

// QuestionSchema is how discovery questions are searched, filtered and sorted.
var QuestionSchema = listview.Schema[catalog.DiscoveryQuestion]{
	Text: func(q catalog.DiscoveryQuestion) []string {
		return []string{q.Question, q.Purpose, q.Category, q.Stage}
	},
	Tags: func(q catalog.DiscoveryQuestion) []string { return q.Tags },
	Facets: map[string]func(catalog.DiscoveryQuestion) string{
		"category": func(q catalog.DiscoveryQuestion) string { return q.Category },
		"stage":    func(q catalog.DiscoveryQuestion) string { return q.Stage },
	},
	Sort: map[string]func(catalog.DiscoveryQuestion) string{
		"question": func(q catalog.DiscoveryQuestion) string { return q.Question },
		"category": func(q catalog.DiscoveryQuestion) string { return q.Category },
		"stage":    func(q catalog.DiscoveryQuestion) string { return q.Stage },
	},
}

var questions = listSpec[catalog.DiscoveryQuestion]{
	title:       "Discovery questions",
	template:    "discovery-questions",
	placeholder: "Search questions",
	schema:      QuestionSchema,
	columns:     []string{"Question", "question", "Category", "category", "Stage", "stage"},
	facets:      []common.FacetSpec{{Field: "category", Label: "Category"}, {Field: "stage", Label: "Stage"}},
}

// DiscoveryQuestionsPage renders /discovery-questions.
func DiscoveryQuestionsPage(v common.View) common.Content {
	return questions.render(v, v.Catalog.DiscoveryQuestions.All())
}

// =============================================================================
// FAQs
// =============================================================================

// FAQSchema is how FAQs are searched, filtered and sorted.
var FAQSchema = listview.Schema[catalog.FAQ]{
	Text: func(f catalog.FAQ) []string { return []string{f.Question, f.Answer} },
	Tags: func(f catalog.FAQ) []string { return f.Tags },
	Facets: map[string]func(catalog.FAQ) string{
		"category": func(f catalog.FAQ) string { return f.Category },
	},
	Sort: map[string]func(catalog.FAQ) string{
		"question": func(f catalog.FAQ) string { return f.Question },
		"category": func(f catalog.FAQ) string { return f.Category },
	},
}

var faqs = listSpec[catalog.FAQ]{
	title:       "FAQs",
	template:    "faqs",
	placeholder: "Search FAQs",
	schema:      FAQSchema,
	columns:     []string{"Question", "question", "Category", "category"},
	facets:      []common.FacetSpec{{Field: "category", Label: "Category"}},
}

// FAQsPage renders /faqs.
func FAQsPage(v common.View) common.Content {
	return faqs.render(v, v.Catalog.FAQs.All())
}

// =============================================================================
// Objections
// =============================================================================

// ObjectionSchema is how objections are searched, filtered and sorted.
// Missing effectiveness ratings filter and sort as "Unrated".
var ObjectionSchema = listview.Schema[catalog.Objection]{
	Text: func(o catalog.Objection) []string {
		return []string{o.Statement, o.Response, o.Category}
	},
	Tags: func(o catalog.Objection) []string { return o.Tags },
	Facets: map[string]func(catalog.Objection) string{
		"category":      func(o catalog.Objection) string { return o.Category },
		"effectiveness": func(o catalog.Objection) string { return common.EffectivenessLabel(o.Effectiveness) },
	},
	Sort: map[string]func(catalog.Objection) string{
		"statement":     func(o catalog.Objection) string { return o.Statement },
		"category":      func(o catalog.Objection) string { return o.Category },
		"effectiveness": func(o catalog.Objection) string { return o.Effectiveness },
	},
}

var objections = listSpec[catalog.Objection]{
	title:       "Objections",
	template:    "objections",
	placeholder: "Search objections",
	schema:      ObjectionSchema,
	columns:     []string{"Objection", "statement", "Category", "category", "Effectiveness", "effectiveness"},
	facets:      []common.FacetSpec{{Field: "category", Label: "Category"}, {Field: "effectiveness", Label: "Effectiveness"}},
}

// ObjectionsPage renders /objections.
func ObjectionsPage(v common.View) common.Content {
	return objections.render(v, v.Catalog.Objections.All())
}

// =============================================================================
// Positioning
// =============================================================================

// PositioningPage renders /playbook/positioning.
func PositioningPage(v common.View) common.Content {
	return common.Content{
		Title: "Positioning",
		Main:  common.Render(tmpl, "positioning", v.Catalog.Positioning),
	}
}
