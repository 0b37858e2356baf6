// Package session provides the per-tab endpoints that move view state.
//
// Every endpoint is a datastar SSE request carrying the tab id as a signal.
// Handlers mutate the tab's document, patch the #app container and replay
// the history and scroll effects the browser has to apply.
package session

import (
	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/acronym/internal/ui/features/common"
)

// SetupRoutes registers the session endpoints on the router.
func SetupRoutes(router chi.Router, app *common.App) error {
	handlers := NewHandlers(app)

	// Long-lived stream; its end tears the tab down.
	router.Get(common.StreamPath, handlers.Stream)

	// One-shot transitions
	router.Get(common.SyncPath, handlers.Sync)
	router.Get(common.NavigatePath, handlers.Navigate)
	router.Get(common.PanelOpenPath, handlers.OpenPanel)
	router.Get(common.PanelClosePath, handlers.ClosePanel)
	router.Get(common.VariantPath, handlers.Variant)
	router.Get(common.ListPath, handlers.List)

	return nil
}
