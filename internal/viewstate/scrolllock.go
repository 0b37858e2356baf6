package viewstate

// ScrollLock owns the document body's overflow style while a panel is open.
//
// Acquire records the overflow in effect and hides it; Release restores the
// recorded value. Both are idempotent. ScrollLock is not safe for concurrent
// use; its Document serializes access.
type ScrollLock struct {
	overflow string
	saved    string
	held     bool
}

// NewScrollLock starts with the page's current overflow value.
func NewScrollLock(overflow string) *ScrollLock {
	return &ScrollLock{overflow: overflow}
}

// Acquire hides body overflow. It reports whether the value changed hands.
func (l *ScrollLock) Acquire() bool {
	if l.held {
		return false
	}
	l.saved = l.overflow
	l.overflow = "hidden"
	l.held = true
	return true
}

// Release restores the overflow captured by Acquire.
func (l *ScrollLock) Release() bool {
	if !l.held {
		return false
	}
	l.overflow = l.saved
	l.saved = ""
	l.held = false
	return true
}

// Held reports whether the lock is currently acquired.
func (l *ScrollLock) Held() bool {
	return l.held
}

// Overflow returns the overflow style the body should carry.
func (l *ScrollLock) Overflow() string {
	return l.overflow
}
