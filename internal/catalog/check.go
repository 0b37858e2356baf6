package catalog

import "fmt"

// Issue is a dangling reference found by Check.
type Issue struct {
	Kind    Kind
	ID      string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Kind, i.ID, i.Message)
}

// Check reports references to records that do not exist. Dangling
// references render as "not found", so they are reported, not rejected.
func (c *Catalog) Check() []Issue {
	var issues []Issue
	add := func(k Kind, id, format string, args ...any) {
		issues = append(issues, Issue{Kind: k, ID: id, Message: fmt.Sprintf(format, args...)})
	}

	for _, d := range c.Deals.All() {
		if !c.Companies.Has(d.CompanyID) {
			add(KindDeal, d.ID, "unknown company %q", d.CompanyID)
		}
	}
	for _, d := range c.DealDetails.All() {
		if !c.Deals.Has(d.ID) {
			add(KindDeal, d.ID, "detail has no summary record")
		}
		for _, id := range append(append([]string{}, d.Overview.PositiveSignals...), d.Overview.RiskFactors...) {
			if !c.Signals.Has(id) {
				add(KindDeal, d.ID, "unknown signal %q", id)
			}
		}
		for _, s := range d.Stakeholders {
			if !c.Contacts.Has(s.ContactID) {
				add(KindDeal, d.ID, "unknown stakeholder %q", s.ContactID)
			}
		}
		for _, id := range d.MeetingIDs {
			if !c.Meetings.Has(id) {
				add(KindDeal, d.ID, "unknown meeting %q", id)
			}
		}
	}
	for _, ct := range c.Contacts.All() {
		if !c.Companies.Has(ct.CompanyID) {
			add(KindContact, ct.ID, "unknown company %q", ct.CompanyID)
		}
		if ct.PersonaID != "" && !c.Personas.Has(ct.PersonaID) {
			add(KindContact, ct.ID, "unknown persona %q", ct.PersonaID)
		}
	}
	for _, m := range c.Meetings.All() {
		if m.DealID != "" && !c.Deals.Has(m.DealID) {
			add(KindMeeting, m.ID, "unknown deal %q", m.DealID)
		}
		for _, id := range m.AttendeeIDs {
			if !c.Contacts.Has(id) {
				add(KindMeeting, m.ID, "unknown attendee %q", id)
			}
		}
		if m.Status != "upcoming" && m.Status != "past" {
			add(KindMeeting, m.ID, "status %q is neither upcoming nor past", m.Status)
		}
	}
	for _, p := range c.Personas.All() {
		for _, id := range p.ObjectionIDs {
			if !c.Objections.Has(id) {
				add(KindPersona, p.ID, "unknown objection %q", id)
			}
		}
	}

	return issues
}
