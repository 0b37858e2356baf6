// Package viewstate keeps page, selection and panel state consistent with the URL.
//
// The URL is the single source of truth. A Route is parsed from it, selections
// and panel visibility are derived from the Route on every render, and every
// user action is expressed as a history push that produces a new URL.
package viewstate

import (
	"errors"
	"net/url"
	"strings"
)

// ErrUnknownVariant is returned when a variant is not valid for the current page.
var ErrUnknownVariant = errors.New("unknown view variant")

// Page identifies a top-level page.
type Page string

// Top-level pages.
const (
	PageDeals              Page = "deals"
	PageDealDetail         Page = "deal-detail"
	PageMeetings           Page = "meetings"
	PageMeetingDetail      Page = "meeting-detail"
	PagePastMeetingDetail  Page = "past-meeting-detail"
	PageCompanies          Page = "companies"
	PageCompanyDetail      Page = "company-detail"
	PageContacts           Page = "contacts"
	PageContactDetail      Page = "contact-detail"
	PageCustomerProfiles   Page = "customer-profiles"
	PageBuyerPersonas      Page = "buyer-personas"
	PageDiscoveryQuestions Page = "discovery-questions"
	PageFAQs               Page = "faqs"
	PageObjections         Page = "objections"
	PagePositioning        Page = "positioning"
	PageComponents         Page = "components"
	PageNotFound           Page = "not-found"
)

// VariantSet lists the variants a page can render in.
type VariantSet struct {
	Values  []string
	Default string
}

// Has reports whether v is a member of the set.
func (s VariantSet) Has(v string) bool {
	for _, x := range s.Values {
		if x == v {
			return true
		}
	}
	return false
}

// Normalize maps empty or unknown values to the default.
func (s VariantSet) Normalize(v string) string {
	if s.Has(v) {
		return v
	}
	return s.Default
}

// Variant sets per page.
var (
	DealListVariants      = VariantSet{Values: []string{"table", "board"}, Default: "table"}
	DealDetailVariants    = VariantSet{Values: []string{"v1", "v2"}, Default: "v1"}
	MeetingListVariants   = VariantSet{Values: []string{"upcoming", "past"}, Default: "upcoming"}
	MeetingDetailVariants = VariantSet{Values: []string{"1st-call", "post-call-1"}, Default: "1st-call"}
)

// Variants returns the variant set for p, if the page has one.
func Variants(p Page) (VariantSet, bool) {
	switch p {
	case PageDeals:
		return DealListVariants, true
	case PageDealDetail:
		return DealDetailVariants, true
	case PageMeetings:
		return MeetingListVariants, true
	case PageMeetingDetail:
		return MeetingDetailVariants, true
	default:
		return VariantSet{}, false
	}
}

// Route is a resolved location: one page plus its path parameters and query.
type Route struct {
	Page     Page
	EntityID string
	Variant  string
	Query    QueryState
}

// Equal reports whether two routes address the same location.
func (r Route) Equal(o Route) bool {
	return r.Page == o.Page && r.EntityID == o.EntityID && r.Variant == o.Variant && r.Query.Equal(o.Query)
}

// Path returns the canonical path of the route. Default variants are omitted.
func (r Route) Path() string {
	switch r.Page {
	case PageDeals:
		if r.Variant != "" && r.Variant != DealListVariants.Default {
			return "/deals/" + url.PathEscape(r.Variant)
		}
		return "/deals"
	case PageDealDetail:
		if r.Variant != "" && r.Variant != DealDetailVariants.Default {
			return "/deals/" + url.PathEscape(r.Variant) + "/" + url.PathEscape(r.EntityID)
		}
		return "/deals/" + url.PathEscape(r.EntityID)
	case PageMeetings:
		if r.Variant == "past" {
			return "/meetings/past"
		}
		return "/meetings"
	case PageMeetingDetail:
		if r.Variant != "" && r.Variant != MeetingDetailVariants.Default {
			return "/meetings/" + url.PathEscape(r.EntityID) + "/" + url.PathEscape(r.Variant)
		}
		return "/meetings/" + url.PathEscape(r.EntityID)
	case PagePastMeetingDetail:
		return "/meetings/past/" + url.PathEscape(r.EntityID)
	case PageCompanies:
		return "/companies"
	case PageCompanyDetail:
		return "/companies/" + url.PathEscape(r.EntityID)
	case PageContacts:
		return "/contacts"
	case PageContactDetail:
		return "/contacts/" + url.PathEscape(r.EntityID)
	case PageCustomerProfiles:
		return "/customer-profiles"
	case PageBuyerPersonas:
		return "/buyer-personas"
	case PageDiscoveryQuestions:
		return "/discovery-questions"
	case PageFAQs:
		return "/faqs"
	case PageObjections:
		return "/objections"
	case PagePositioning:
		return "/playbook/positioning"
	case PageComponents:
		return "/components"
	case PageNotFound:
		if strings.HasPrefix(r.EntityID, "/") {
			return r.EntityID
		}
		return "/"
	default:
		return "/"
	}
}

// URL returns the canonical path plus the encoded query.
func (r Route) URL() string {
	p := r.Path()
	if q := r.Query.Encode(); q != "" {
		return p + "?" + q
	}
	return p
}

// WithQuery returns a copy of the route with key set to value.
func (r Route) WithQuery(key, value string) Route {
	r.Query = r.Query.With(key, value)
	return r
}

// WithoutQuery returns a copy of the route without key.
func (r Route) WithoutQuery(key string) Route {
	r.Query = r.Query.Without(key)
	return r
}

// WithVariant returns a copy of the route rendered in variant v.
func (r Route) WithVariant(v string) (Route, error) {
	set, ok := Variants(r.Page)
	if !ok || !set.Has(v) {
		return r, ErrUnknownVariant
	}
	r.Variant = v
	return r, nil
}

// Section returns the sidebar section a page belongs to.
func (r Route) Section() string {
	switch r.Page {
	case PageDeals, PageDealDetail:
		return "deals"
	case PageMeetings, PageMeetingDetail, PagePastMeetingDetail:
		return "meetings"
	case PageCompanies, PageCompanyDetail:
		return "companies"
	case PageContacts, PageContactDetail:
		return "contacts"
	default:
		return strings.TrimPrefix(string(r.Page), "/")
	}
}

// PanelSpec describes the side panel a list page hosts.
type PanelSpec struct {
	// Key is the query key whose presence opens the panel.
	Key string
	// Detail maps an entity id to its canonical full-page route.
	Detail func(id string) Route
}

// FullPageURL returns the full-page detail location for id.
func (s PanelSpec) FullPageURL(id string) string {
	return s.Detail(id).URL()
}

// PanelFor returns the panel spec owned by r's page. Meetings panels escalate
// to the past-meeting recap when the list shows past meetings.
func PanelFor(r Route) (PanelSpec, bool) {
	switch r.Page {
	case PageDeals:
		return PanelSpec{Key: "dealId", Detail: func(id string) Route {
			return Route{Page: PageDealDetail, EntityID: id, Variant: DealDetailVariants.Default}
		}}, true
	case PageContacts:
		return PanelSpec{Key: "contactId", Detail: func(id string) Route {
			return Route{Page: PageContactDetail, EntityID: id}
		}}, true
	case PageMeetings:
		if r.Variant == "past" {
			return PanelSpec{Key: "meeting", Detail: func(id string) Route {
				return Route{Page: PagePastMeetingDetail, EntityID: id}
			}}, true
		}
		return PanelSpec{Key: "meeting", Detail: func(id string) Route {
			return Route{Page: PageMeetingDetail, EntityID: id, Variant: MeetingDetailVariants.Default}
		}}, true
	default:
		return PanelSpec{}, false
	}
}
