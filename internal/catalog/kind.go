package catalog

import (
	"fmt"
	"strings"
)

// Kind names a record type in the catalog.
type Kind string

// Record kinds.
const (
	KindDeal              Kind = "deal"
	KindCompany           Kind = "company"
	KindContact           Kind = "contact"
	KindMeeting           Kind = "meeting"
	KindPersona           Kind = "persona"
	KindObjection         Kind = "objection"
	KindFAQ               Kind = "faq"
	KindDiscoveryQuestion Kind = "discovery-question"
	KindSignal            Kind = "signal"
	KindCustomerProfile   Kind = "customer-profile"
)

var kindAliases = map[string]Kind{
	"deals":               KindDeal,
	"companies":           KindCompany,
	"contacts":            KindContact,
	"meetings":            KindMeeting,
	"personas":            KindPersona,
	"buyer-personas":      KindPersona,
	"objections":          KindObjection,
	"faqs":                KindFAQ,
	"discovery-questions": KindDiscoveryQuestion,
	"signals":             KindSignal,
	"customer-profiles":   KindCustomerProfile,
}

// Kinds returns every kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindDeal, KindCompany, KindContact, KindMeeting, KindPersona,
		KindObjection, KindFAQ, KindDiscoveryQuestion, KindSignal, KindCustomerProfile,
	}
}

// ParseKind accepts singular or plural kind names.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown record kind %q", s)
}

// Row is a flattened record used for tabular output.
type Row struct {
	ID       string
	Title    string
	Category string
}

// Rows flattens every record of kind k.
func (c *Catalog) Rows(k Kind) []Row {
	switch k {
	case KindDeal:
		return rows(c.Deals.All(), func(d Deal) Row { return Row{d.ID, d.Name, d.Stage} })
	case KindCompany:
		return rows(c.Companies.All(), func(co Company) Row { return Row{co.ID, co.Name, co.Industry} })
	case KindContact:
		return rows(c.Contacts.All(), func(ct Contact) Row { return Row{ct.ID, ct.Name, ct.Role} })
	case KindMeeting:
		return rows(c.Meetings.All(), func(m Meeting) Row { return Row{m.ID, m.Title, m.Status} })
	case KindPersona:
		return rows(c.Personas.All(), func(p Persona) Row { return Row{p.ID, p.Name, p.Category} })
	case KindObjection:
		return rows(c.Objections.All(), func(o Objection) Row { return Row{o.ID, o.Statement, o.Category} })
	case KindFAQ:
		return rows(c.FAQs.All(), func(f FAQ) Row { return Row{f.ID, f.Question, f.Category} })
	case KindDiscoveryQuestion:
		return rows(c.DiscoveryQuestions.All(), func(q DiscoveryQuestion) Row { return Row{q.ID, q.Question, q.Category} })
	case KindSignal:
		return rows(c.Signals.All(), func(s Signal) Row { return Row{s.ID, s.Label, s.Kind} })
	case KindCustomerProfile:
		return rows(c.CustomerProfiles.All(), func(p CustomerProfile) Row { return Row{p.ID, p.Name, p.Category} })
	default:
		return nil
	}
}

// Lookup returns the record of kind k with the given id.
// Deals resolve to their (possibly synthesized) detail record.
func (c *Catalog) Lookup(k Kind, id string) (any, bool) {
	switch k {
	case KindDeal:
		return found(c.DealDetail(id))
	case KindCompany:
		return found(c.Companies.Get(id))
	case KindContact:
		return found(c.Contacts.Get(id))
	case KindMeeting:
		return found(c.Meetings.Get(id))
	case KindPersona:
		return found(c.Personas.Get(id))
	case KindObjection:
		return found(c.Objections.Get(id))
	case KindFAQ:
		return found(c.FAQs.Get(id))
	case KindDiscoveryQuestion:
		return found(c.DiscoveryQuestions.Get(id))
	case KindSignal:
		return found(c.Signals.Get(id))
	case KindCustomerProfile:
		return found(c.CustomerProfiles.Get(id))
	default:
		return nil, false
	}
}

func rows[T any](items []T, fn func(T) Row) []Row {
	out := make([]Row, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

func found[T any](v T, ok bool) (any, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}
