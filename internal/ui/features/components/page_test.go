package components

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/acronym/internal/ui/features"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
)

func TestPage(t *testing.T) {
	app := features.NewTestApp(t, Register)
	req := httptest.NewRequest(http.MethodGet, "/components", nil)
	rec := httptest.NewRecorder()

	app.ServePage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, want := range []string{"pill--amber", "badge--green", "$1,250,000", "MC", "Deal not found"} {
		assert.Contains(t, body, want)
	}
	assert.Equal(t, len(common.StyleFamilies()), features.CountElements(t, body, "", "swatches")-1)
}

func TestFamilies(t *testing.T) {
	fams := Families()

	assert.Len(t, fams, len(common.StyleFamilies()))
	for _, f := range fams {
		assert.NotEmpty(t, f.Tags, f.Name)
		last := f.Tags[len(f.Tags)-1]
		assert.Equal(t, "unknown", last.Label)
		assert.Equal(t, common.IsBadge(f.Name), last.Badge)
	}
}
