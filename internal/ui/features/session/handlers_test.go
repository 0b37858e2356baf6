package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/acronym/internal/listview"
	"github.com/leapstack-labs/acronym/internal/ui/features"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/ui/features/deals"
	"github.com/leapstack-labs/acronym/internal/ui/features/meetings"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

func setupTestHandlers(t *testing.T) (*Handlers, *common.App) {
	t.Helper()
	app := features.NewTestApp(t, deals.Register, meetings.Register)
	return NewHandlers(app), app
}

func serve(handler http.HandlerFunc, req *http.Request) string {
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec.Body.String()
}

func panels(body string) int {
	return strings.Count(body, `id="side-panel"`)
}

// =============================================================================
// Deals Table Scenario
// =============================================================================

func TestDealsTableScenario(t *testing.T) {
	h, app := setupTestHandlers(t)
	tab := features.OpenTab(t, app, "/deals")
	require.Equal(t, 0, panels(tab.Body))

	// Search narrows the table.
	body := serve(h.List, tab.RequestWithSignals("/session/list?action=search", common.Signals{Tab: tab.Doc.ID(), Search: "acm"}))
	assert.Contains(t, body, "Acme Platform Rollout")
	assert.NotContains(t, body, "Globex Analytics Expansion")
	assert.NotContains(t, body, "pushState", "search is not part of the URL")
	assert.Equal(t, "acm", tab.Doc.List(viewstate.PageDeals).Search)

	// Clicking the row opens the panel and pushes the key.
	body = serve(h.OpenPanel, tab.Request("/session/panel/open?id=d1"))
	assert.Contains(t, body, `window.history.pushState(null, '', "/deals?dealId=d1")`)
	assert.Contains(t, body, `document.body.style.overflow = "hidden"`)
	assert.Equal(t, 1, panels(body))
	assert.Equal(t, "/deals?dealId=d1", tab.Doc.URL())
	assert.True(t, tab.Doc.ScrollLocked())

	// Escape closes it and removes the key.
	body = serve(h.ClosePanel, tab.Request("/session/panel/close?reason=escape"))
	assert.Contains(t, body, `window.history.pushState(null, '', "/deals")`)
	assert.Contains(t, body, `document.body.style.overflow = ""`)
	assert.Equal(t, 0, panels(body))
	assert.Equal(t, "/deals", tab.Doc.URL())
	assert.False(t, tab.Doc.ScrollLocked())
	assert.Equal(t, viewstate.CloseEscape, tab.Doc.LastClose())

	// The search survives the panel round trip.
	assert.Contains(t, body, "Acme Platform Rollout")
	assert.NotContains(t, body, "Globex Analytics Expansion")
}

func TestOpenPanel_ReplacesSelection(t *testing.T) {
	h, app := setupTestHandlers(t)
	tab := features.OpenTab(t, app, "/deals?dealId=d1")

	body := serve(h.OpenPanel, tab.Request("/session/panel/open?id=d2"))

	assert.Equal(t, 1, panels(body))
	assert.Contains(t, body, "Globex Analytics Expansion")
	assert.Contains(t, body, `"/deals?dealId=d2"`)
	assert.NotContains(t, body, "document.body.style.overflow", "lock is already held")
	assert.Equal(t, "d2", tab.Doc.MountedPanel())
}

func TestClosePanel_EveryReasonRestoresOverflow(t *testing.T) {
	for _, reason := range []string{"button", "backdrop", "escape", "bogus"} {
		t.Run(reason, func(t *testing.T) {
			h, app := setupTestHandlers(t)
			tab := features.OpenTab(t, app, "/deals?dealId=d3")
			require.True(t, tab.Doc.ScrollLocked())

			body := serve(h.ClosePanel, tab.Request("/session/panel/close?reason="+reason))

			assert.Contains(t, body, `document.body.style.overflow = ""`)
			assert.False(t, tab.Doc.ScrollLocked())
			assert.Equal(t, "/deals", tab.Doc.URL())
			assert.Equal(t, viewstate.ParseCloseReason(reason), tab.Doc.LastClose())
		})
	}
}

func TestNavigate_ClosesPanel(t *testing.T) {
	h, app := setupTestHandlers(t)
	tab := features.OpenTab(t, app, "/deals?dealId=d1")

	body := serve(h.Navigate, tab.Request("/session/navigate?url=%2Fdeals%2Fd1"))

	assert.Contains(t, body, `window.history.pushState(null, '', "/deals/d1")`)
	assert.Contains(t, body, `document.body.style.overflow = ""`)
	assert.Contains(t, body, "Timeline")
	assert.Equal(t, 0, panels(body))
	assert.Equal(t, viewstate.CloseNavigation, tab.Doc.LastClose())
}

// =============================================================================
// Back / Forward
// =============================================================================

func TestSync_BackClosesPanelWithoutPush(t *testing.T) {
	h, app := setupTestHandlers(t)
	tab := features.OpenTab(t, app, "/deals")
	serve(h.OpenPanel, tab.Request("/session/panel/open?id=d1"))

	body := serve(h.Sync, tab.Request("/session/sync?url=%2Fdeals"))

	assert.NotContains(t, body, "pushState")
	assert.Contains(t, body, `document.body.style.overflow = ""`)
	assert.Equal(t, 0, panels(body))
	assert.Equal(t, "", tab.Doc.MountedPanel())

	// Forward reopens it.
	body = serve(h.Sync, tab.Request("/session/sync?url=%2Fdeals%3FdealId%3Dd1"))
	assert.NotContains(t, body, "pushState")
	assert.Equal(t, 1, panels(body))
}

func TestSync_RedirectReplacesEntry(t *testing.T) {
	h, app := setupTestHandlers(t)
	tab := features.OpenTab(t, app, "/deals")

	body := serve(h.Sync, tab.Request("/session/sync?url=%2Fdeals%2Ftable"))

	assert.Contains(t, body, `window.history.replaceState(null, '', "/deals")`)
	assert.Equal(t, "/deals", tab.Doc.URL())
}

// =============================================================================
// Variants
// =============================================================================

func TestVariant_PushesAndBackRestores(t *testing.T) {
	h, app := setupTestHandlers(t)
	tab := features.OpenTab(t, app, "/deals")

	body := serve(h.Variant, tab.Request("/session/variant?value=board"))
	assert.Contains(t, body, `window.history.pushState(null, '', "/deals/board")`)
	assert.Contains(t, body, "board__column")
	assert.Equal(t, "board", tab.Doc.Route().Variant)

	body = serve(h.Sync, tab.Request("/session/sync?url=%2Fdeals"))
	assert.NotContains(t, body, "board__column")
	assert.Equal(t, "table", tab.Doc.Route().Variant)
}

func TestVariant_Unknown(t *testing.T) {
	h, app := setupTestHandlers(t)
	tab := features.OpenTab(t, app, "/deals")

	body := serve(h.Variant, tab.Request("/session/variant?value=kanban"))

	assert.Contains(t, body, "console.error")
	assert.Equal(t, "/deals", tab.Doc.URL())
}

func TestVariant_MeetingsDropsPanel(t *testing.T) {
	h, app := setupTestHandlers(t)
	tab := features.OpenTab(t, app, "/meetings?meeting=m1")

	body := serve(h.Variant, tab.Request("/session/variant?value=past"))

	assert.Contains(t, body, `"/meetings/past"`)
	assert.Equal(t, 0, panels(body))
	assert.False(t, tab.Doc.ScrollLocked())
}

// =============================================================================
// List Actions
// =============================================================================

func TestList_SortToggle(t *testing.T) {
	h, app := setupTestHandlers(t)
	tab := features.OpenTab(t, app, "/deals")

	serve(h.List, tab.Request("/session/list?action=sort&field=category"))
	st := tab.Doc.List(viewstate.PageDeals)
	assert.Equal(t, "category", st.SortField)
	assert.False(t, st.SortDesc)

	body := serve(h.List, tab.Request("/session/list?action=sort&field=category"))
	st = tab.Doc.List(viewstate.PageDeals)
	assert.True(t, st.SortDesc)
	assert.Contains(t, body, `aria-sort="descending"`)
}

func TestList_FilterAndClear(t *testing.T) {
	h, app := setupTestHandlers(t)
	tab := features.OpenTab(t, app, "/deals")

	body := serve(h.List, tab.Request("/session/list?action=filter&field=stage&value=Discovery"))
	assert.Contains(t, body, "Hooli Pilot")
	assert.NotContains(t, body, "Acme Platform Rollout")

	body = serve(h.List, tab.Request("/session/list?action=clear"))
	assert.Contains(t, body, "Acme Platform Rollout")
	assert.Contains(t, body, "datastar-patch-signals")
	assert.Empty(t, tab.Doc.List(viewstate.PageDeals).Filters)
}

func TestList_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unknown action", "/session/list?action=shuffle"},
		{"bad page", "/session/list?action=page&value=two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, app := setupTestHandlers(t)
			tab := features.OpenTab(t, app, "/deals")

			body := serve(h.List, tab.Request(tt.target))

			assert.Contains(t, body, "console.error")
		})
	}
}

// =============================================================================
// Unknown Tabs
// =============================================================================

func TestUnknownTab_Reloads(t *testing.T) {
	h, app := setupTestHandlers(t)
	tab := features.OpenTab(t, app, "/deals")

	t.Run("unknown tab id", func(t *testing.T) {
		body := serve(h.OpenPanel, tab.RequestWithSignals("/session/panel/open?id=d1", common.Signals{Tab: "nope"}))
		assert.Contains(t, body, reloadScript)
		assert.Equal(t, "/deals", tab.Doc.URL())
	})

	t.Run("no session cookie", func(t *testing.T) {
		anon := features.Tab{Doc: tab.Doc}
		body := serve(h.OpenPanel, anon.Request("/session/panel/open?id=d1"))
		assert.Contains(t, body, reloadScript)
	})
}

// =============================================================================
// Stream
// =============================================================================

func TestStream_PatchesOnBroadcastAndTearsDown(t *testing.T) {
	h, app := setupTestHandlers(t)
	tab := features.OpenTab(t, app, "/deals?dealId=d1")

	req := tab.Request("/session/stream")
	ctx, cancel := context.WithTimeout(req.Context(), 300*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		h.Stream(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return app.Notifier.Len() == 1 }, time.Second, 5*time.Millisecond)
	app.Notifier.Broadcast()

	<-done

	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, "event:"), "one patch per broadcast, none up front")
	assert.Contains(t, body, "Acme Platform Rollout")

	// The tab is gone once its only stream ends.
	assert.Equal(t, 0, app.Notifier.Len())
	assert.False(t, tab.Doc.ScrollLocked())
	assert.Equal(t, 0, app.Docs.Len())
}

// =============================================================================
// Unit Tests
// =============================================================================

func TestScript(t *testing.T) {
	tests := []struct {
		effect viewstate.Effect
		want   string
	}{
		{viewstate.Effect{Kind: viewstate.EffectPushURL, Value: "/deals?dealId=d1"}, `window.history.pushState(null, '', "/deals?dealId=d1")`},
		{viewstate.Effect{Kind: viewstate.EffectReplaceURL, Value: "/deals"}, `window.history.replaceState(null, '', "/deals")`},
		{viewstate.Effect{Kind: viewstate.EffectOverflow, Value: "hidden"}, `document.body.style.overflow = "hidden"`},
		{viewstate.Effect{Kind: viewstate.EffectPushURL, Value: `/x"</script>`}, `window.history.pushState(null, '', "/x\"\u003c/script\u003e")`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Script(tt.effect))
		})
	}
}

func TestListUpdate(t *testing.T) {
	t.Run("search uses the signal value", func(t *testing.T) {
		fn, err := listUpdate("search", "", "", "acme")
		require.NoError(t, err)
		assert.Equal(t, "acme", fn(listview.State{}).Search)
	})

	t.Run("clear resets search and filters", func(t *testing.T) {
		fn, err := listUpdate("clear", "", "", "")
		require.NoError(t, err)
		st := fn(listview.State{Search: "x"}.ToggleFilter("stage", "Discovery"))
		assert.Empty(t, st.Search)
		assert.Empty(t, st.Filters)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := listUpdate("shuffle", "", "", "")
		assert.ErrorIs(t, err, ErrUnknownListAction)
	})
}
