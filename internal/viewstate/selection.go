package viewstate

// DisplayMode selects how a detail view is framed.
type DisplayMode int

const (
	// FullPage renders the detail with its own top bar and breadcrumb.
	FullPage DisplayMode = iota
	// Embedded renders the detail inside a host (the side panel) that supplies the header.
	Embedded
)

func (m DisplayMode) String() string {
	if m == Embedded {
		return "embedded"
	}
	return "full-page"
}

// Selection is the outcome of looking an id up in a collection.
type Selection[T any] struct {
	ID    string
	Value T
	Found bool
}

// Empty reports whether nothing was selected.
func (s Selection[T]) Empty() bool {
	return s.ID == ""
}

// NotFound reports whether an id was selected but does not exist.
func (s Selection[T]) NotFound() bool {
	return s.ID != "" && !s.Found
}

// Select looks id up. An empty id yields an empty selection without a lookup.
func Select[T any](id string, lookup func(string) (T, bool)) Selection[T] {
	if id == "" {
		return Selection[T]{}
	}
	v, ok := lookup(id)
	return Selection[T]{ID: id, Value: v, Found: ok}
}

// PanelVisible reports whether r's page owns a panel and its key is set.
func PanelVisible(r Route) bool {
	spec, ok := PanelFor(r)
	return ok && r.Query.Has(spec.Key)
}

// PanelID returns the entity id the panel should show, empty when closed.
func PanelID(r Route) string {
	spec, ok := PanelFor(r)
	if !ok {
		return ""
	}
	return r.Query.Get(spec.Key)
}

// SelectPanel derives the panel selection for r.
func SelectPanel[T any](r Route, lookup func(string) (T, bool)) Selection[T] {
	return Select(PanelID(r), lookup)
}
