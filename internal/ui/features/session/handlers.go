package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/leapstack-labs/acronym/internal/listview"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/viewstate"
	"github.com/starfederation/datastar-go/datastar"
)

// reloadScript recovers a tab whose document is gone (server restart,
// pruned tab) by loading the current URL from scratch.
const reloadScript = "window.location.reload()"

// ErrUnknownListAction is returned for list actions the page does not support.
var ErrUnknownListAction = errors.New("unknown list action")

// Handlers provides HTTP handlers for the session feature.
type Handlers struct {
	app *common.App
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(app *common.App) *Handlers {
	return &Handlers{app: app}
}

// request is a resolved session call: the tab's document plus its signals.
type request struct {
	client  string
	signals common.Signals
	doc     *viewstate.Document
	sse     *datastar.ServerSentEventGenerator
}

// begin reads signals, opens the SSE response and finds the tab's document.
// When the document is missing the browser is told to reload and ok is false.
func (h *Handlers) begin(w http.ResponseWriter, r *http.Request) (request, bool) {
	// Read signals BEFORE creating SSE
	signals, sigErr := common.ReadSignals(r)
	sse := datastar.NewSSE(w, r)

	req := request{signals: signals, sse: sse}
	if sigErr != nil {
		_ = sse.ConsoleError(fmt.Errorf("failed to read signals: %w", sigErr))
		return req, false
	}

	client, err := common.ClientID(h.app.Sessions, r)
	if err == nil {
		req.doc, err = h.app.Docs.Get(client, signals.Tab)
	}
	if err != nil {
		h.app.Log().Debug("tab has no document, reloading", "tab", signals.Tab, "error", err)
		_ = sse.ExecuteScript(reloadScript)
		return req, false
	}
	req.client = client
	return req, true
}

// respond patches the app container and replays effects in order.
func (h *Handlers) respond(req request, effects []viewstate.Effect) {
	if err := req.sse.PatchElementTempl(h.app.AppView(req.doc)); err != nil {
		_ = req.sse.ConsoleError(err)
		return
	}
	for _, e := range effects {
		if err := req.sse.ExecuteScript(Script(e)); err != nil {
			return
		}
	}
	content := h.app.Content(req.doc)
	_ = req.sse.ExecuteScript("document.title = " + jsString(content.Title+" - ACRONYM"))
}

// syncSearch aligns the search box with the list state of the current page.
func (h *Handlers) syncSearch(req request) {
	st := req.doc.List(req.doc.Route().Page)
	_ = req.sse.MarshalAndPatchSignals(map[string]any{"search": st.Search})
}

// Stream is the long-lived SSE endpoint of a tab. It re-renders when the
// catalog changes and tears the tab's document down when it ends.
func (h *Handlers) Stream(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}

	req.doc.Attach()
	defer func() {
		if req.doc.Detach() {
			h.app.Docs.Release(req.client, req.doc.ID())
		}
	}()

	// Subscribe to updates
	updates := h.app.Notifier.Subscribe()
	defer h.app.Notifier.Unsubscribe(updates)

	// Wait for updates (no initial send - content is already rendered)
	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := req.sse.PatchElementTempl(h.app.AppView(req.doc)); err != nil {
				_ = req.sse.ConsoleError(err)
				// Don't return - keep trying on next update
			}
		}
	}
}

// Sync re-derives the tab from the URL the browser moved to on back/forward.
func (h *Handlers) Sync(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	effects := req.doc.Sync(r.URL.Query().Get("url"))
	h.respond(req, effects)
	h.syncSearch(req)
}

// Navigate moves the tab to a new location without a page load.
func (h *Handlers) Navigate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	effects := req.doc.Navigate(r.URL.Query().Get("url"))
	h.respond(req, effects)
	h.syncSearch(req)
}

// OpenPanel shows an entity in the current page's side panel.
func (h *Handlers) OpenPanel(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	effects, err := req.doc.OpenPanel(r.URL.Query().Get("id"))
	if err != nil {
		_ = req.sse.ConsoleError(err)
		return
	}
	h.respond(req, effects)
}

// ClosePanel dismisses the side panel. The reason is recorded; every reason
// takes the same path.
func (h *Handlers) ClosePanel(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	reason := viewstate.ParseCloseReason(r.URL.Query().Get("reason"))
	effects, err := req.doc.ClosePanel(reason)
	if err != nil && !errors.Is(err, viewstate.ErrNoPanel) {
		_ = req.sse.ConsoleError(err)
		return
	}
	h.respond(req, effects)
}

// Variant switches the current page to another view variant.
func (h *Handlers) Variant(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	effects, err := req.doc.SetVariant(r.URL.Query().Get("value"))
	if err != nil {
		_ = req.sse.ConsoleError(err)
		return
	}
	h.respond(req, effects)
}

// List applies a search, filter, sort or page change to the current list.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	update, err := listUpdate(q.Get("action"), q.Get("field"), q.Get("value"), req.signals.Search)
	if err != nil {
		_ = req.sse.ConsoleError(err)
		return
	}
	req.doc.UpdateList(req.doc.Route().Page, update)
	h.respond(req, nil)
	if q.Get("action") == "clear" {
		h.syncSearch(req)
	}
}

func listUpdate(action, field, value, search string) (func(listview.State) listview.State, error) {
	switch action {
	case "search":
		return func(s listview.State) listview.State { return s.WithSearch(search) }, nil
	case "filter":
		return func(s listview.State) listview.State { return s.ToggleFilter(field, value) }, nil
	case "sort":
		return func(s listview.State) listview.State { return s.ToggleSort(field) }, nil
	case "page":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid page %q: %w", value, err)
		}
		return func(s listview.State) listview.State { return s.WithPage(n) }, nil
	case "clear":
		return func(s listview.State) listview.State { return s.ClearFilters().WithSearch("") }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownListAction, action)
	}
}

// Script renders an effect as the browser statement that applies it.
func Script(e viewstate.Effect) string {
	switch e.Kind {
	case viewstate.EffectPushURL:
		return "window.history.pushState(null, '', " + jsString(e.Value) + ")"
	case viewstate.EffectReplaceURL:
		return "window.history.replaceState(null, '', " + jsString(e.Value) + ")"
	case viewstate.EffectOverflow:
		return "document.body.style.overflow = " + jsString(e.Value)
	default:
		return ""
	}
}

func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
