package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleHelpers(t *testing.T) {
	assert.Equal(t, "Unrated", EffectivenessLabel(""))
	assert.Equal(t, "Strong", EffectivenessLabel("Strong"))
	assert.Equal(t, "badge--slate", StyleClass(StyleEffectiveness, "no-such-rating"))
	assert.Equal(t, "pill--slate", StyleClass("no-such-family", "x"))
	assert.True(t, IsBadge(StyleEffectiveness))

	for _, family := range StyleFamilies() {
		assert.NotEmpty(t, StyleValues(family), "family %s has no values", family)
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{240000, "$240,000"},
		{1250000, "$1,250,000"},
		{-4500, "-$4,500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.in))
		})
	}
}
