package viewstate

import (
	"sync"
	"time"

	"github.com/leapstack-labs/acronym/internal/listview"
)

// EffectKind names a side effect the browser has to apply.
type EffectKind int

// Effect kinds.
const (
	// EffectPushURL adds a history entry without reloading.
	EffectPushURL EffectKind = iota
	// EffectReplaceURL rewrites the current history entry.
	EffectReplaceURL
	// EffectOverflow sets document.body.style.overflow.
	EffectOverflow
)

// Effect is a browser-side change produced by a document transition.
type Effect struct {
	Kind  EffectKind
	Value string
}

// Document is the view state of one browser tab.
//
// All methods are safe for concurrent use. Mutations return the effects the
// browser must apply to stay in step; callers render from Route afterwards.
type Document struct {
	id string

	mu       sync.Mutex
	route    Route
	history  *History
	lock     *ScrollLock
	panel    *PanelController
	lists    map[Page]listview.State
	closed   CloseReason
	streams  int
	lastSeen time.Time
}

// NewDocument opens a document at rawURL with the body's current overflow.
// A URL that resolves to a redirect starts at the redirect target.
func NewDocument(id, rawURL, overflow string) *Document {
	res := ResolveURL(rawURL)
	lock := NewScrollLock(overflow)
	d := &Document{
		id:       id,
		route:    res.Route,
		history:  NewHistory(res.Route.URL()),
		lock:     lock,
		panel:    NewPanelController(lock),
		lists:    make(map[Page]listview.State),
		lastSeen: time.Now(),
	}
	d.panel.Reconcile(d.route)
	return d
}

// ID returns the tab id.
func (d *Document) ID() string {
	return d.id
}

// Route returns the current location.
func (d *Document) Route() Route {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.route
}

// URL returns the canonical URL of the current location.
func (d *Document) URL() string {
	return d.Route().URL()
}

// Overflow returns the body overflow style the page should carry.
func (d *Document) Overflow() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lock.Overflow()
}

// ScrollLocked reports whether the scroll lock is held.
func (d *Document) ScrollLocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lock.Held()
}

// MountedPanel returns the entity id the panel shows, empty when closed.
func (d *Document) MountedPanel() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.panel.Mounted()
}

// HistoryLen returns the number of recorded history entries.
func (d *Document) HistoryLen() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.history.Len()
}

// Navigate pushes rawURL as a new location. An open panel closes with reason
// navigation when the new location does not keep it.
func (d *Document) Navigate(rawURL string) []Effect {
	d.mu.Lock()
	defer d.mu.Unlock()
	res := ResolveURL(rawURL)
	if PanelVisible(d.route) && PanelID(res.Route) != PanelID(d.route) {
		d.closed = CloseNavigation
	}
	return d.push(res.Route)
}

// Sync re-derives state from a location the browser already moved to
// (back/forward). No history entry is pushed.
func (d *Document) Sync(rawURL string) []Effect {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := ResolveURL(rawURL)
	var effects []Effect
	if res.Redirect != "" {
		effects = append(effects, Effect{Kind: EffectReplaceURL, Value: res.Redirect})
	}
	d.route = res.Route
	d.history.Sync(d.route.URL())
	return append(effects, d.reconcile()...)
}

// OpenPanel selects id in the current page's panel, replacing any open selection.
func (d *Document) OpenPanel(id string) ([]Effect, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	spec, ok := PanelFor(d.route)
	if !ok {
		return nil, ErrNoPanel
	}
	if id == "" {
		return d.closePanel(spec), nil
	}
	return d.push(d.route.WithQuery(spec.Key, id)), nil
}

// ClosePanel dismisses the panel. Every reason takes the same path: the key
// is removed with a history push, the scroll lock is released and the panel
// unmounts. Closing an already closed panel still releases the lock.
func (d *Document) ClosePanel(reason CloseReason) ([]Effect, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	spec, ok := PanelFor(d.route)
	if !ok {
		return d.reconcile(), ErrNoPanel
	}
	d.closed = reason
	return d.closePanel(spec), nil
}

// LastClose returns the reason the panel was last dismissed.
func (d *Document) LastClose() CloseReason {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// FullPageURL returns the full-page detail location of the open panel entity.
func (d *Document) FullPageURL() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	spec, ok := PanelFor(d.route)
	if !ok || !d.route.Query.Has(spec.Key) {
		return "", false
	}
	return spec.FullPageURL(d.route.Query.Get(spec.Key)), true
}

// SetVariant switches the page to variant v and pushes the new path.
func (d *Document) SetVariant(v string) ([]Effect, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next, err := d.route.WithVariant(v)
	if err != nil {
		return nil, err
	}
	// The panel key belongs to the list being left when the list kind changes.
	if next.Page == PageMeetings && next.Variant != d.route.Variant {
		if spec, ok := PanelFor(d.route); ok {
			next = next.WithoutQuery(spec.Key)
		}
	}
	return d.push(next), nil
}

// List returns the list state of page p.
func (d *Document) List(p Page) listview.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lists[p]
}

// UpdateList applies fn to the list state of page p.
func (d *Document) UpdateList(p Page, fn func(listview.State) listview.State) listview.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := fn(d.lists[p])
	d.lists[p] = st
	return st
}

// Attach records a live stream for the tab.
func (d *Document) Attach() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.streams++
	d.lastSeen = time.Now()
}

// Detach records the end of a stream. It reports whether no stream remains.
func (d *Document) Detach() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.streams > 0 {
		d.streams--
	}
	d.lastSeen = time.Now()
	return d.streams == 0
}

// Idle reports whether no stream is attached and nothing happened since cutoff.
func (d *Document) Idle(cutoff time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.streams == 0 && d.lastSeen.Before(cutoff)
}

// Teardown unmounts the panel and releases the scroll lock unconditionally.
func (d *Document) Teardown() []Effect {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.panel.Unmount() {
		return []Effect{{Kind: EffectOverflow, Value: d.lock.Overflow()}}
	}
	return nil
}

func (d *Document) push(r Route) []Effect {
	d.lastSeen = time.Now()
	var effects []Effect
	if url := r.URL(); url != d.history.Current() {
		d.history.Push(url)
		effects = append(effects, Effect{Kind: EffectPushURL, Value: url})
	}
	d.route = r
	return append(effects, d.reconcile()...)
}

func (d *Document) closePanel(spec PanelSpec) []Effect {
	if d.route.Query.Has(spec.Key) {
		return d.push(d.route.WithoutQuery(spec.Key))
	}
	return d.reconcile()
}

func (d *Document) reconcile() []Effect {
	if d.panel.Reconcile(d.route) {
		return []Effect{{Kind: EffectOverflow, Value: d.lock.Overflow()}}
	}
	return nil
}
