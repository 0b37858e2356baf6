// Package listview filters, sorts and paginates catalog records for list pages.
package listview

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPageSize is the number of rows per page when none is configured.
const DefaultPageSize = 25

// State is the search, filter, sort and page selection of one list.
// Values are immutable; every method returns a modified copy.
type State struct {
	Search    string
	Filters   map[string][]string
	SortField string
	SortDesc  bool
	Page      int
}

// WithSearch sets the search text and resets to the first page.
func (s State) WithSearch(q string) State {
	s.Search = q
	s.Page = 0
	return s
}

// ToggleFilter adds value to field's selection, or removes it when present.
// The page resets to the first.
func (s State) ToggleFilter(field, value string) State {
	filters := make(map[string][]string, len(s.Filters)+1)
	for k, v := range s.Filters {
		filters[k] = slices.Clone(v)
	}
	cur := filters[field]
	if i := slices.Index(cur, value); i >= 0 {
		cur = slices.Delete(cur, i, i+1)
	} else {
		cur = append(cur, value)
	}
	if len(cur) == 0 {
		delete(filters, field)
	} else {
		filters[field] = cur
	}
	s.Filters = filters
	s.Page = 0
	return s
}

// ClearFilters drops every filter and resets to the first page.
func (s State) ClearFilters() State {
	s.Filters = nil
	s.Page = 0
	return s
}

// FilterActive reports whether value is selected for field.
func (s State) FilterActive(field, value string) bool {
	return slices.Contains(s.Filters[field], value)
}

// ToggleSort sorts by field. Selecting the active field flips the direction;
// a new field starts ascending.
func (s State) ToggleSort(field string) State {
	if s.SortField == field {
		s.SortDesc = !s.SortDesc
		return s
	}
	s.SortField = field
	s.SortDesc = false
	return s
}

// WithPage moves to page n. Negative values clamp to the first page.
func (s State) WithPage(n int) State {
	if n < 0 {
		n = 0
	}
	s.Page = n
	return s
}

// Schema describes how to search, filter and sort records of type T.
type Schema[T any] struct {
	// Text returns the free-text fields searched for each record.
	Text func(T) []string
	// Tags returns the tag array, also searched.
	Tags func(T) []string
	// Facets maps a filter field to the value a record carries for it.
	Facets map[string]func(T) string
	// Sort maps a column to the value it sorts by.
	Sort map[string]func(T) string
}

// Result is one rendered page of a list.
type Result[T any] struct {
	Items     []T
	Total     int // matching records before pagination
	Page      int
	PageCount int
}

// HasPrev reports whether an earlier page exists.
func (r Result[T]) HasPrev() bool {
	return r.Page > 0
}

// HasNext reports whether a later page exists.
func (r Result[T]) HasNext() bool {
	return r.Page+1 < r.PageCount
}

// Apply filters, sorts and paginates items. The input slice is not modified.
func Apply[T any](items []T, schema Schema[T], st State, pageSize int) Result[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	matched := make([]T, 0, len(items))
	needle := fold(strings.TrimSpace(st.Search))
	for _, item := range items {
		if matchesSearch(item, schema, needle) && matchesFilters(item, schema, st.Filters) {
			matched = append(matched, item)
		}
	}

	if key, ok := schema.Sort[st.SortField]; ok {
		sortItems(matched, key, st.SortDesc)
	}

	pageCount := (len(matched) + pageSize - 1) / pageSize
	page := st.Page
	if page >= pageCount {
		page = max(pageCount-1, 0)
	}
	start := min(page*pageSize, len(matched))
	end := min(start+pageSize, len(matched))

	return Result[T]{
		Items:     matched[start:end],
		Total:     len(matched),
		Page:      page,
		PageCount: pageCount,
	}
}

// Options returns the distinct values of a facet in first-seen order.
func Options[T any](items []T, schema Schema[T], field string) []string {
	get, ok := schema.Facets[field]
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if v := get(item); v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func matchesSearch[T any](item T, schema Schema[T], needle string) bool {
	if needle == "" {
		return true
	}
	var fields []string
	if schema.Text != nil {
		fields = append(fields, schema.Text(item)...)
	}
	if schema.Tags != nil {
		fields = append(fields, schema.Tags(item)...)
	}
	for _, f := range fields {
		if strings.Contains(fold(f), needle) {
			return true
		}
	}
	return false
}

// matchesFilters ORs values within a field and ANDs across fields.
func matchesFilters[T any](item T, schema Schema[T], filters map[string][]string) bool {
	for field, values := range filters {
		if len(values) == 0 {
			continue
		}
		get, ok := schema.Facets[field]
		if !ok {
			continue
		}
		if !slices.Contains(values, get(item)) {
			return false
		}
	}
	return true
}

// sortItems orders items stably by key. Empty keys sort last in both directions.
func sortItems[T any](items []T, key func(T) string, desc bool) {
	col := collate.New(language.English, collate.IgnoreCase)
	slices.SortStableFunc(items, func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka == "" && kb == "":
			return 0
		case ka == "":
			return 1
		case kb == "":
			return -1
		}
		c := col.CompareString(ka, kb)
		if desc {
			return -c
		}
		return c
	})
}

func fold(s string) string {
	return cases.Fold().String(s)
}
