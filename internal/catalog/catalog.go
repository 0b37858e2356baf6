package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when two records of one kind share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrMissingID is returned when a record has an empty id.
	ErrMissingID = errors.New("missing id")
	// ErrNotFound is returned by lookups outside the dashboard, which renders
	// missing records inline instead.
	ErrNotFound = errors.New("record not found")
)

// Collection is an ordered set of records indexed by id.
type Collection[T any] struct {
	items []T
	index map[string]int
}

// NewCollection indexes items by the id returned from idOf.
// Order is preserved; ids must be unique and non-empty.
func NewCollection[T any](items []T, idOf func(T) string) (*Collection[T], error) {
	c := &Collection[T]{
		items: items,
		index: make(map[string]int, len(items)),
	}
	for i, item := range items {
		id := idOf(item)
		if id == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrMissingID)
		}
		if _, ok := c.index[id]; ok {
			return nil, fmt.Errorf("%q: %w", id, ErrDuplicateID)
		}
		c.index[id] = i
	}
	return c, nil
}

// All returns the records in catalog order. Callers must not mutate the slice.
func (c *Collection[T]) All() []T {
	if c == nil {
		return nil
	}
	return c.items
}

// Get looks a record up by id. A miss reports false, never an error.
func (c *Collection[T]) Get(id string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	i, ok := c.index[id]
	if !ok {
		return zero, false
	}
	return c.items[i], true
}

// Has reports whether id exists in the collection.
func (c *Collection[T]) Has(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Catalog is the complete set of demo data.
type Catalog struct {
	Deals              *Collection[Deal]
	DealDetails        *Collection[DealDetail]
	Companies          *Collection[Company]
	Contacts           *Collection[Contact]
	Meetings           *Collection[Meeting]
	Personas           *Collection[Persona]
	Objections         *Collection[Objection]
	FAQs               *Collection[FAQ]
	DiscoveryQuestions *Collection[DiscoveryQuestion]
	Signals            *Collection[Signal]
	CustomerProfiles   *Collection[CustomerProfile]
	Positioning        Positioning
}

// DealDetail returns the detail record for id. When only a summary exists the
// detail is synthesized from it so every listed deal stays navigable.
func (c *Catalog) DealDetail(id string) (DealDetail, bool) {
	if d, ok := c.DealDetails.Get(id); ok {
		return d, true
	}
	summary, ok := c.Deals.Get(id)
	if !ok {
		return DealDetail{}, false
	}
	return synthesizeDetail(summary), true
}

// synthesizeDetail maps summary fields onto a detail record. Detail-only
// sections are empty collections, never nil.
func synthesizeDetail(d Deal) DealDetail {
	return DealDetail{
		ID:        d.ID,
		Name:      d.Name,
		CompanyID: d.CompanyID,
		Stage:     d.Stage,
		Owner:     d.Owner,
		Amount:    d.Amount,
		CloseDate: d.CloseDate,
		Health:    d.Health,
		Category:  d.Category,
		Tags:      append([]string{}, d.Tags...),
		Overview: DealOverview{
			PositiveSignals: []string{},
			RiskFactors:     []string{},
			NextSteps:       []string{},
		},
		Stakeholders: []Stakeholder{},
		Timeline:     []TimelineEvent{},
		MeetingIDs:   []string{},
		Synthesized:  true,
	}
}

// ContactsAt returns the contacts working at companyID in catalog order.
func (c *Catalog) ContactsAt(companyID string) []Contact {
	var out []Contact
	for _, ct := range c.Contacts.All() {
		if ct.CompanyID == companyID {
			out = append(out, ct)
		}
	}
	return out
}

// DealsFor returns the deals opened with companyID.
func (c *Catalog) DealsFor(companyID string) []Deal {
	var out []Deal
	for _, d := range c.Deals.All() {
		if d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out
}

// MeetingsFor returns the meetings held with companyID.
func (c *Catalog) MeetingsFor(companyID string) []Meeting {
	var out []Meeting
	for _, m := range c.Meetings.All() {
		if m.CompanyID == companyID {
			out = append(out, m)
		}
	}
	return out
}

// MeetingsByStatus splits meetings into upcoming and past, preserving order.
func (c *Catalog) MeetingsByStatus(past bool) []Meeting {
	var out []Meeting
	for _, m := range c.Meetings.All() {
		if m.Past() == past {
			out = append(out, m)
		}
	}
	return out
}

// CompanyName resolves a company id to its display name, falling back to the id.
func (c *Catalog) CompanyName(id string) string {
	if co, ok := c.Companies.Get(id); ok {
		return co.Name
	}
	return id
}

// ContactName resolves a contact id to its display name, falling back to the id.
func (c *Catalog) ContactName(id string) string {
	if ct, ok := c.Contacts.Get(id); ok {
		return ct.Name
	}
	return id
}

// SignalsByID resolves signal ids, skipping unknown ones.
func (c *Catalog) SignalsByID(ids []string) []Signal {
	out := make([]Signal, 0, len(ids))
	for _, id := range ids {
		if s, ok := c.Signals.Get(id); ok {
			out = append(out, s)
		}
	}
	return out
}

// QuestionsForPersonas returns discovery questions tagged with any of the personas.
func (c *Catalog) QuestionsForPersonas(personaIDs []string) []DiscoveryQuestion {
	want := make(map[string]bool, len(personaIDs))
	for _, id := range personaIDs {
		want[id] = true
	}
	var out []DiscoveryQuestion
	for _, q := range c.DiscoveryQuestions.All() {
		for _, p := range q.PersonaIDs {
			if want[p] {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

// Counts returns the number of records per kind for navigation badges.
func (c *Catalog) Counts() map[Kind]int {
	return map[Kind]int{
		KindDeal:              c.Deals.Len(),
		KindCompany:           c.Companies.Len(),
		KindContact:           c.Contacts.Len(),
		KindMeeting:           c.Meetings.Len(),
		KindPersona:           c.Personas.Len(),
		KindObjection:         c.Objections.Len(),
		KindFAQ:               c.FAQs.Len(),
		KindDiscoveryQuestion: c.DiscoveryQuestions.Len(),
		KindSignal:            c.Signals.Len(),
		KindCustomerProfile:   c.CustomerProfiles.Len(),
	}
}
