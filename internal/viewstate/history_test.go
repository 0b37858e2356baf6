package viewstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	h := NewHistory("/deals")
	h.Push("/deals?dealId=d1")
	h.Push("/deals?dealId=d1")
	h.Push("/deals?dealId=d2")
	assert.Equal(t, 3, h.Len())

	u, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, "/deals?dealId=d1", u)

	h.Push("/companies")
	assert.Equal(t, 3, h.Len(), "push drops forward entries")
	_, ok = h.Forward()
	assert.False(t, ok)

	h.Back()
	h.Back()
	_, ok = h.Back()
	assert.False(t, ok)
	assert.Equal(t, "/deals", h.Current())
}

func TestHistory_Sync(t *testing.T) {
	h := NewHistory("/a")
	h.Push("/b")
	h.Push("/c")

	h.Sync("/b")
	assert.Equal(t, "/b", h.Current())
	h.Sync("/c")
	assert.Equal(t, "/c", h.Current())
	h.Sync("/a")
	assert.Equal(t, "/a", h.Current())

	h.Sync("/elsewhere")
	assert.Equal(t, "/elsewhere", h.Current())
	assert.Equal(t, 3, h.Len())
}

func TestScrollLock(t *testing.T) {
	l := NewScrollLock("auto")

	assert.True(t, l.Acquire())
	assert.False(t, l.Acquire())
	assert.Equal(t, "hidden", l.Overflow())

	assert.True(t, l.Release())
	assert.False(t, l.Release())
	assert.Equal(t, "auto", l.Overflow())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	d := r.Mount("client", "/deals?dealId=d1", "")
	require.NotEmpty(t, d.ID())

	got, err := r.Get("client", d.ID())
	require.NoError(t, err)
	assert.Same(t, d, got)

	_, err = r.Get("other", d.ID())
	assert.ErrorIs(t, err, ErrUnknownDocument)

	r.Release("client", d.ID())
	assert.False(t, d.ScrollLocked(), "release tears the document down")
	_, err = r.Get("client", d.ID())
	assert.ErrorIs(t, err, ErrUnknownDocument)
}

func TestRegistry_Prune(t *testing.T) {
	r := NewRegistry()
	live := r.Mount("client", "/deals", "")
	live.Attach()
	r.Mount("client", "/contacts", "")

	assert.Equal(t, 0, r.Prune(time.Hour))
	assert.Equal(t, 1, r.Prune(-time.Second))
	assert.Equal(t, 1, r.Len())

	_, err := r.Get("client", live.ID())
	assert.NoError(t, err)
}
