package viewstate

// History mirrors the browser's session history for one tab.
type History struct {
	entries []string
	index   int
}

// NewHistory starts a history at url.
func NewHistory(url string) *History {
	return &History{entries: []string{url}}
}

// Current returns the active entry.
func (h *History) Current() string {
	return h.entries[h.index]
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Push appends url after the current entry, dropping any forward entries.
// Pushing the current url again is a no-op.
func (h *History) Push(url string) {
	if url == h.Current() {
		return
	}
	h.entries = append(h.entries[:h.index+1], url)
	h.index++
}

// Replace overwrites the current entry.
func (h *History) Replace(url string) {
	h.entries[h.index] = url
}

// Back moves to the previous entry.
func (h *History) Back() (string, bool) {
	if h.index == 0 {
		return h.Current(), false
	}
	h.index--
	return h.Current(), true
}

// Forward moves to the next entry.
func (h *History) Forward() (string, bool) {
	if h.index == len(h.entries)-1 {
		return h.Current(), false
	}
	h.index++
	return h.Current(), true
}

// Sync aligns the history with a location reported by the browser after a
// popstate. Adjacent entries are matched first; anything else replaces the
// current entry because the browser moved somewhere this tab did not record.
func (h *History) Sync(url string) {
	switch {
	case url == h.Current():
	case h.index > 0 && h.entries[h.index-1] == url:
		h.index--
	case h.index < len(h.entries)-1 && h.entries[h.index+1] == url:
		h.index++
	default:
		for i, e := range h.entries {
			if e == url {
				h.index = i
				return
			}
		}
		h.Replace(url)
	}
}
