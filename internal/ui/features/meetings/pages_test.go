package meetings

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/acronym/internal/ui/features"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

func setupTestApp(t *testing.T) *common.App {
	t.Helper()
	return features.NewTestApp(t, Register)
}

func get(t *testing.T, app *common.App, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	app.ServePage(rec, req)
	return rec
}

// =============================================================================
// List Page Tests
// =============================================================================

func TestListPage(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantBody   []string
		rejectBody []string
		wantPanels int
	}{
		{
			name:       "upcoming lists only upcoming meetings",
			target:     "/meetings",
			wantBody:   []string{"<title>Upcoming meetings - ACRONYM</title>", "Acme executive alignment", "Hooli pilot check-in"},
			rejectBody: []string{"Stark order review"},
		},
		{
			name:       "past lists only past meetings",
			target:     "/meetings/past",
			wantBody:   []string{"<title>Past meetings - ACRONYM</title>", "Stark order review", "Globex expansion kickoff"},
			rejectBody: []string{"Hooli pilot check-in"},
		},
		{
			name:       "upcoming panel shows the first-call view",
			target:     "/meetings?meeting=m1",
			wantBody:   []string{"Suggested discovery questions", "Open full page", `href="/meetings/m1"`},
			wantPanels: 1,
		},
		{
			name:       "past panel shows the recap and escalates to the recap page",
			target:     "/meetings/past?meeting=m5",
			wantBody:   []string{"Strong interest from operations", `href="/meetings/past/m5"`},
			wantPanels: 1,
		},
		{
			name:       "stale panel key renders not found",
			target:     "/meetings?meeting=m404",
			wantBody:   []string{"Meeting not found", "m404"},
			wantPanels: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(t)

			rec := get(t, app, tt.target)

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want)
			}
			for _, reject := range tt.rejectBody {
				assert.NotContains(t, body, reject)
			}
			assert.Equal(t, tt.wantPanels, features.CountElements(t, body, "side-panel", ""))
		})
	}
}

// =============================================================================
// Detail Page Tests
// =============================================================================

func TestDetailPage(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantBody   []string
		rejectBody []string
	}{
		{
			name:       "first call shows agenda, attendees and persona questions",
			target:     "/meetings/m1",
			wantBody:   []string{"Confirm business case and success metrics", "Maria Chen", "How is this initiative funded today?", "Acme Platform Rollout"},
			rejectBody: []string{"Deal signals"},
		},
		{
			name:       "post-call version shows recap and signals",
			target:     "/meetings/m5/post-call-1",
			wantBody:   []string{"Recap", "Invite finance to the next call", "Clear pain quantified", "Single-threaded"},
			rejectBody: []string{"Suggested discovery questions"},
		},
		{
			name:     "post-call version of an upcoming meeting has no recap yet",
			target:   "/meetings/m1/post-call-1",
			wantBody: []string{"No recap yet."},
		},
		{
			name:     "past recap",
			target:   "/meetings/past/m4",
			wantBody: []string{"IT confirmed the security requirements are met.", "Technical validation passed", "Attendees"},
		},
		{
			name:     "unknown meeting renders inline not found",
			target:   "/meetings/m404",
			wantBody: []string{"Meeting not found", "<code>m404</code>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(t)

			rec := get(t, app, tt.target)

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want)
			}
			for _, reject := range tt.rejectBody {
				assert.NotContains(t, body, reject)
			}
		})
	}
}

func TestDetailPage_EveryMeetingResolves(t *testing.T) {
	app := setupTestApp(t)

	for _, m := range app.Store.Catalog().Meetings.All() {
		for _, target := range []string{
			"/meetings/" + m.ID,
			"/meetings/" + m.ID + "/" + string(VersionPostCall),
			"/meetings/past/" + m.ID,
		} {
			rec := get(t, app, target)
			assert.Equal(t, http.StatusOK, rec.Code, target)
			assert.NotContains(t, rec.Body.String(), "Meeting not found", target)
		}
	}
}

func TestRedirects(t *testing.T) {
	tests := []struct {
		target       string
		wantLocation string
	}{
		{"/meetings/1st-call", "/meetings"},
		{"/meetings/upcoming", "/meetings"},
		{"/meetings/past/upcoming", "/meetings/past"},
		{"/meetings/m1/bogus", "/meetings/m1"},
		{"/meetings/m1/1st-call", "/meetings/m1"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			app := setupTestApp(t)

			rec := get(t, app, tt.target)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}
