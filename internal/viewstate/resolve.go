package viewstate

import (
	"net/url"
	"slices"
	"strings"
)

// Resolution is the outcome of resolving a URL.
type Resolution struct {
	Route Route
	// Redirect is the canonical location to send the browser to instead of
	// rendering Route. Empty when Route should be rendered as is.
	Redirect string
}

// reserved holds the path keywords that name views, never entities.
var reserved = map[string]bool{
	"table": true, "board": true,
	"v1": true, "v2": true,
	"upcoming": true, "past": true,
	"1st-call": true, "post-call-1": true,
}

// IsReserved reports whether segment is a view keyword.
func IsReserved(segment string) bool {
	return reserved[segment]
}

// ResolveURL parses raw (a path with optional query) and resolves it.
func ResolveURL(raw string) Resolution {
	u, err := url.Parse(raw)
	if err != nil {
		return Resolution{Route: Route{Page: PageNotFound}}
	}
	return Resolve(u.Path, u.RawQuery)
}

// Resolve maps a path and raw query to exactly one page.
//
// View keywords are matched before entity ids, so /deals/board is the board
// view rather than a lookup of an entity called "board". A keyword sitting in
// an entity-id position redirects to the canonical view route.
func Resolve(path, rawQuery string) Resolution {
	q := ParseQuery(rawQuery)
	segs := splitPath(path)
	res := resolve(segs, q)
	switch {
	case res.Route.Page == PageNotFound:
		// Unknown locations keep their path so history and links stay intact.
		res.Route.EntityID = "/" + strings.Join(segs, "/")
	case res.Redirect == "" && !slices.Equal(splitPath(res.Route.Path()), segs):
		// Explicit default variants and unknown versions render under their
		// canonical path, which the address bar has to show too.
		res.Redirect = res.Route.URL()
	}
	return res
}

func resolve(segs []string, q QueryState) Resolution {
	route := func(p Page, id, variant string) Resolution {
		return Resolution{Route: Route{Page: p, EntityID: id, Variant: variant, Query: q}}
	}
	redirect := func(r Route) Resolution {
		return Resolution{Route: r, Redirect: r.URL()}
	}

	if len(segs) == 0 {
		return redirect(Route{Page: PageDeals, Variant: DealListVariants.Default, Query: q})
	}

	switch segs[0] {
	case "deals":
		return resolveDeals(segs[1:], q, route, redirect)
	case "meetings":
		return resolveMeetings(segs[1:], q, route, redirect)
	case "companies":
		switch len(segs) {
		case 1:
			return route(PageCompanies, "", "")
		case 2:
			return route(PageCompanyDetail, segs[1], "")
		}
	case "contacts":
		switch len(segs) {
		case 1:
			return route(PageContacts, "", "")
		case 2:
			return route(PageContactDetail, segs[1], "")
		}
	case "customer-profiles":
		if len(segs) == 1 {
			return route(PageCustomerProfiles, "", "")
		}
	case "buyer-personas":
		if len(segs) == 1 {
			return route(PageBuyerPersonas, "", "")
		}
	case "discovery-questions":
		if len(segs) == 1 {
			return route(PageDiscoveryQuestions, "", "")
		}
	case "faqs":
		if len(segs) == 1 {
			return route(PageFAQs, "", "")
		}
	case "objections":
		if len(segs) == 1 {
			return route(PageObjections, "", "")
		}
	case "playbook":
		if len(segs) == 2 && segs[1] == "positioning" {
			return route(PagePositioning, "", "")
		}
	case "components":
		if len(segs) == 1 {
			return route(PageComponents, "", "")
		}
	}
	return route(PageNotFound, "", "")
}

func resolveDeals(segs []string, q QueryState, route func(Page, string, string) Resolution, redirect func(Route) Resolution) Resolution {
	switch len(segs) {
	case 0:
		return route(PageDeals, "", DealListVariants.Default)
	case 1:
		s := segs[0]
		switch {
		case s == DealListVariants.Default:
			return redirect(Route{Page: PageDeals, Variant: s, Query: q})
		case DealListVariants.Has(s):
			return route(PageDeals, "", s)
		case IsReserved(s):
			return redirect(Route{Page: PageDeals, Variant: DealListVariants.Default, Query: q})
		default:
			return route(PageDealDetail, s, DealDetailVariants.Default)
		}
	case 2:
		view, id := segs[0], segs[1]
		switch {
		case IsReserved(id):
			return redirect(Route{Page: PageDeals, Variant: DealListVariants.Default, Query: q})
		case DealDetailVariants.Has(view):
			return route(PageDealDetail, id, view)
		case DealListVariants.Has(view):
			return redirect(Route{Page: PageDeals, Variant: view, Query: q.With("dealId", id)})
		}
	}
	return route(PageNotFound, "", "")
}

func resolveMeetings(segs []string, q QueryState, route func(Page, string, string) Resolution, redirect func(Route) Resolution) Resolution {
	switch len(segs) {
	case 0:
		return route(PageMeetings, "", MeetingListVariants.Default)
	case 1:
		s := segs[0]
		switch {
		case s == "past":
			return route(PageMeetings, "", "past")
		case IsReserved(s):
			return redirect(Route{Page: PageMeetings, Variant: MeetingListVariants.Default, Query: q})
		default:
			return route(PageMeetingDetail, s, MeetingDetailVariants.Default)
		}
	case 2:
		first, second := segs[0], segs[1]
		switch {
		case first == "past" && !IsReserved(second):
			return route(PagePastMeetingDetail, second, "")
		case first == "past":
			return redirect(Route{Page: PageMeetings, Variant: "past", Query: q})
		case IsReserved(first):
			return redirect(Route{Page: PageMeetings, Variant: MeetingListVariants.Default, Query: q})
		default:
			// Unknown versions degrade to the default version.
			return route(PageMeetingDetail, first, MeetingDetailVariants.Normalize(second))
		}
	}
	return route(PageNotFound, "", "")
}

func splitPath(p string) []string {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	out := parts[:0]
	for _, s := range parts {
		if s == "" {
			continue
		}
		if u, err := url.PathUnescape(s); err == nil {
			s = u
		}
		out = append(out, s)
	}
	return out
}
