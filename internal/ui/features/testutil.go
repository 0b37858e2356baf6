// Package features provides shared test utilities for UI feature tests.
package features

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/leapstack-labs/acronym/internal/catalog"
	"github.com/leapstack-labs/acronym/internal/testutil"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
	"github.com/leapstack-labs/acronym/internal/ui/notifier"
	"github.com/leapstack-labs/acronym/internal/viewstate"
)

// NewTestApp builds an App over the embedded demo catalog. Each register
// func adds a feature's pages.
func NewTestApp(t *testing.T, register ...func(common.Pages)) *common.App {
	t.Helper()

	c, err := catalog.Demo()
	require.NoError(t, err)

	pages := common.Pages{}
	for _, fn := range register {
		fn(pages)
	}

	return &common.App{
		Store:    catalog.NewStaticStore(c),
		Docs:     viewstate.NewRegistry(),
		Sessions: NewTestSessionStore(),
		Notifier: NewTestNotifier(),
		Pages:    pages,
		PageSize: 25,
		IsDev:    false,
		Logger:   testutil.NewTestLogger(t),
	}
}

// Tab is a browser tab opened against a test App.
type Tab struct {
	App    *common.App
	Cookie *http.Cookie
	Doc    *viewstate.Document
	Body   string
}

// OpenTab loads target as a full page, the way a browser opens a new tab.
func OpenTab(t *testing.T, app *common.App, target string) Tab {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	app.ServePage(rec, req)

	res := rec.Result()
	defer func() { _ = res.Body.Close() }()
	require.NotEqual(t, http.StatusFound, res.StatusCode, "target %q redirects", target)

	var cookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == common.SessionName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "page should set the session cookie")

	body := rec.Body.String()
	signals := PageSignals(t, body)

	probe := httptest.NewRequest(http.MethodGet, "/", nil)
	probe.AddCookie(cookie)
	client, err := common.ClientID(app.Sessions, probe)
	require.NoError(t, err)

	doc, err := app.Docs.Get(client, signals.Tab)
	require.NoError(t, err)

	return Tab{App: app, Cookie: cookie, Doc: doc, Body: body}
}

// Request builds a datastar GET for target carrying the tab's signals.
func (tab Tab) Request(target string) *http.Request {
	return tab.RequestWithSignals(target, common.Signals{Tab: tab.Doc.ID()})
}

// RequestWithSignals builds a datastar GET for target with explicit signals.
func (tab Tab) RequestWithSignals(target string, s common.Signals) *http.Request {
	b, _ := json.Marshal(s)
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	req := httptest.NewRequest(http.MethodGet, target+sep+"datastar="+url.QueryEscape(string(b)), nil)
	if tab.Cookie != nil {
		req.AddCookie(tab.Cookie)
	}
	return req
}

// PageSignals extracts the initial datastar signals from a rendered page.
func PageSignals(t *testing.T, body string) common.Signals {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)

	var raw string
	for n := range doc.Descendants() {
		if n.Type == html.ElementNode && n.Data == "body" {
			raw = Attr(n, "data-signals")
			break
		}
	}
	require.NotEmpty(t, raw, "page should declare signals on <body>")

	var s common.Signals
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return s
}

// CountElements counts elements in body matching id (when set) or class.
func CountElements(t *testing.T, body, id, class string) int {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)

	n := 0
	for node := range doc.Descendants() {
		if node.Type != html.ElementNode {
			continue
		}
		if id != "" && Attr(node, "id") == id {
			n++
			continue
		}
		if class != "" && hasClass(node, class) {
			n++
		}
	}
	return n
}

// Attr returns the value of the named attribute of n.
func Attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// NewTestNotifier creates a notifier for testing.
func NewTestNotifier() *notifier.Notifier {
	return notifier.New()
}

// NewTestSessionStore creates a session store for testing.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
}
