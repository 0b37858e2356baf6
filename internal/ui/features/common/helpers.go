// Package common provides shared types and utilities for UI features.
package common

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Style families for pills and badges.
const (
	StyleStage         = "stage"
	StyleHealth        = "health"
	StyleCategory      = "category"
	StyleSentiment     = "sentiment"
	StyleSignal        = "signal"
	StyleEffectiveness = "effectiveness"
	StyleMeetingKind   = "meeting-kind"
	StyleRole          = "role"
)

// styles maps a family and a value to a CSS modifier. Unknown values fall
// back to the family's neutral style.
var styles = map[string]map[string]string{
	StyleStage: {
		"Qualification": "pill--slate",
		"Discovery":     "pill--blue",
		"Proposal":      "pill--violet",
		"Negotiation":   "pill--amber",
		"Closed Won":    "pill--green",
		"Closed Lost":   "pill--red",
	},
	StyleHealth: {
		"on-track": "badge--green",
		"at-risk":  "badge--amber",
		"stalled":  "badge--red",
		"won":      "badge--blue",
	},
	StyleCategory: {
		"New Business": "pill--blue",
		"Expansion":    "pill--green",
		"Renewal":      "pill--violet",
		"Budget":       "pill--amber",
		"Timing":       "pill--slate",
		"Competition":  "pill--red",
		"Security":     "pill--red",
		"Pricing":      "pill--amber",
		"Product":      "pill--blue",
		"Process":      "pill--violet",
		"Pain":         "pill--red",
		"Impact":       "pill--green",
		"Economic":     "pill--amber",
		"Technical":    "pill--blue",
		"User":         "pill--green",
		"Champion":     "pill--violet",
		"Engagement":   "pill--blue",
		"Value":        "pill--green",
	},
	StyleSentiment: {
		"positive": "badge--green",
		"neutral":  "badge--slate",
		"negative": "badge--red",
	},
	StyleSignal: {
		"positive": "badge--green",
		"risk":     "badge--red",
	},
	StyleEffectiveness: {
		"Strong": "badge--green",
		"Mixed":  "badge--amber",
		"Weak":   "badge--red",
	},
	StyleMeetingKind: {
		"1st-call":    "pill--blue",
		"check-in":    "pill--slate",
		"demo":        "pill--violet",
		"negotiation": "pill--amber",
	},
	StyleRole: {
		"Champion":       "pill--green",
		"Economic Buyer": "pill--amber",
		"Evaluator":      "pill--blue",
		"Blocker":        "pill--red",
	},
}

var neutral = map[string]string{
	StyleHealth:        "badge--slate",
	StyleSentiment:     "badge--slate",
	StyleSignal:        "badge--slate",
	StyleEffectiveness: "badge--slate",
}

// StyleClass returns the CSS modifier for value within family.
func StyleClass(family, value string) string {
	if c, ok := styles[family][value]; ok {
		return c
	}
	if c, ok := neutral[family]; ok {
		return c
	}
	return "pill--slate"
}

// StyleValues returns the known values of a family in a stable order.
func StyleValues(family string) []string {
	var out []string
	for v := range styles[family] {
		out = append(out, v)
	}
	sortStrings(out)
	return out
}

// StyleFamilies lists every family shown on the components page.
func StyleFamilies() []string {
	return []string{
		StyleStage, StyleHealth, StyleCategory, StyleSentiment,
		StyleSignal, StyleEffectiveness, StyleMeetingKind, StyleRole,
	}
}

// IsBadge reports whether a family renders as a badge rather than a pill.
func IsBadge(family string) bool {
	_, ok := neutral[family]
	return ok
}

// EffectivenessLabel renders a missing rating as "Unrated".
func EffectivenessLabel(v string) string {
	if v == "" {
		return "Unrated"
	}
	return v
}

// HealthLabel returns a human-readable label for a deal health value.
func HealthLabel(h string) string {
	switch h {
	case "on-track":
		return "On track"
	case "at-risk":
		return "At risk"
	case "stalled":
		return "Stalled"
	case "won":
		return "Won"
	case "":
		return "Unknown"
	default:
		return h
	}
}

// MeetingKindLabel returns a human-readable label for a meeting kind.
func MeetingKindLabel(k string) string {
	switch k {
	case "1st-call":
		return "First call"
	case "check-in":
		return "Check-in"
	case "demo":
		return "Demo"
	case "negotiation":
		return "Negotiation"
	default:
		return k
	}
}

// Money formats whole dollars with thousands separators.
func Money(n int) string {
	p := message.NewPrinter(language.English)
	if n < 0 {
		return p.Sprintf("-$%d", -n)
	}
	return p.Sprintf("$%d", n)
}

// Initials returns up to two initials of a name for avatars.
func Initials(name string) string {
	var out []rune
	for _, f := range strings.Fields(name) {
		out = append(out, []rune(f)[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}
