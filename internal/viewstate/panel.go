package viewstate

import "errors"

// ErrNoPanel is returned when a panel action targets a page without a panel.
var ErrNoPanel = errors.New("page has no side panel")

// CloseReason records how a panel was dismissed.
type CloseReason string

// Close reasons.
const (
	CloseButton     CloseReason = "button"
	CloseBackdrop   CloseReason = "backdrop"
	CloseEscape     CloseReason = "escape"
	CloseNavigation CloseReason = "navigation"
)

// ParseCloseReason maps unknown values to CloseButton.
func ParseCloseReason(s string) CloseReason {
	switch r := CloseReason(s); r {
	case CloseButton, CloseBackdrop, CloseEscape, CloseNavigation:
		return r
	default:
		return CloseButton
	}
}

// PanelController mounts and unmounts the side panel of one document.
//
// Visibility is never stored: Reconcile compares what is mounted with what the
// route demands and moves the scroll lock to match. Every close path (button,
// backdrop, Escape, navigation, back) ends in unmount.
type PanelController struct {
	lock    *ScrollLock
	mounted string
}

// NewPanelController binds a controller to the document's scroll lock.
func NewPanelController(lock *ScrollLock) *PanelController {
	return &PanelController{lock: lock}
}

// Mounted returns the id of the entity currently shown, empty when closed.
func (p *PanelController) Mounted() string {
	return p.mounted
}

// Reconcile aligns the mounted panel with r. It reports whether the body
// overflow changed.
func (p *PanelController) Reconcile(r Route) bool {
	id := PanelID(r)
	if id == "" {
		return p.Unmount()
	}
	p.mounted = id
	return p.lock.Acquire()
}

// Unmount drops the panel content and releases the scroll lock.
func (p *PanelController) Unmount() bool {
	p.mounted = ""
	return p.lock.Release()
}
