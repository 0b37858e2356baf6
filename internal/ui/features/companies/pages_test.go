package companies

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/acronym/internal/ui/features"
)

func TestCompanyPages(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantBody   []string
		rejectBody []string
	}{
		{
			name:     "list shows every company",
			target:   "/companies",
			wantBody: []string{"<title>Companies - ACRONYM</title>", "Acme Corporation", "Stark Industries", `href="/companies/co-hooli"`},
		},
		{
			name:   "detail links contacts, deals and meetings",
			target: "/companies/co-acme",
			wantBody: []string{
				"Diversified manufacturer",
				`href="/contacts/c1"`, "Robert Hale",
				`href="/deals/d1"`,
				`href="/meetings/m1"`, `href="/meetings/past/m4"`,
				"$240,000",
			},
		},
		{
			name:     "closed deals are left out of the open pipeline",
			target:   "/companies/co-stark",
			wantBody: []string{"Stark Industries Seat Expansion", "$0", "Pepper Lane"},
		},
		{
			name:       "unknown company renders inline not found",
			target:     "/companies/co-nope",
			wantBody:   []string{"Company not found", "<code>co-nope</code>"},
			rejectBody: []string{"Open pipeline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := features.NewTestApp(t, Register)
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			app.ServePage(rec, req)

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

func TestCompanyPages_EveryCompanyResolves(t *testing.T) {
	app := features.NewTestApp(t, Register)

	for _, co := range app.Store.Catalog().Companies.All() {
		req := httptest.NewRequest(http.MethodGet, "/companies/"+co.ID, nil)
		rec := httptest.NewRecorder()

		app.ServePage(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, co.ID)
		assert.NotContains(t, rec.Body.String(), "Company not found", co.ID)
	}
}
