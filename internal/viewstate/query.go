package viewstate

import (
	"net/url"
	"sort"
	"strings"
)

// QueryState is the single-valued view of a URL query string.
// Values are treated as immutable; With and Without return copies.
type QueryState map[string]string

// ParseQuery parses a raw query string. Repeated keys keep their first value.
// Malformed input degrades to the pairs that could be parsed.
func ParseQuery(raw string) QueryState {
	values, _ := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	q := make(QueryState, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			q[k] = vs[0]
		}
	}
	return q
}

// Get returns the value for key, empty when absent.
func (q QueryState) Get(key string) string {
	return q[key]
}

// Has reports whether key is present with a non-empty value.
func (q QueryState) Has(key string) bool {
	return q[key] != ""
}

// With returns a copy with key set. An empty value removes the key.
func (q QueryState) With(key, value string) QueryState {
	if value == "" {
		return q.Without(key)
	}
	out := make(QueryState, len(q)+1)
	for k, v := range q {
		out[k] = v
	}
	out[key] = value
	return out
}

// Without returns a copy with key removed.
func (q QueryState) Without(key string) QueryState {
	out := make(QueryState, len(q))
	for k, v := range q {
		if k != key {
			out[k] = v
		}
	}
	return out
}

// Equal compares the non-empty entries of two query states.
func (q QueryState) Equal(o QueryState) bool {
	return q.Encode() == o.Encode()
}

// Encode renders the query sorted by key, skipping empty values.
func (q QueryState) Encode() string {
	keys := make([]string, 0, len(q))
	for k, v := range q {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q[k]))
	}
	return b.String()
}
