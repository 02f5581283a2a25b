package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveVariationsNavy(t *testing.T) {
	navy := MustColor("#043666")
	v := DeriveVariations(navy)

	assert.Equal(t, navy, v.Base)
	assert.Equal(t, White, v.ContrastText)
	assert.Equal(t, 0.5, v.Transparent.A)
	assert.Equal(t, 0.8, v.SemiTransparent.A)
	assert.Equal(t, navy.Hex(), v.Transparent.Hex())
}

func TestDeriveVariationsLightnessOrdering(t *testing.T) {
	v := DeriveVariations(MustColor("#4A7A3C"))

	chain := []Color{v.Darkest, v.Darker, v.Dark, v.Base, v.Light, v.Lighter, v.Lightest}
	for i := 1; i < len(chain); i++ {
		assert.Greater(t, chain[i].Luminance(), chain[i-1].Luminance(), "step %d", i)
	}
}

func TestDeriveVariationsHueAndSaturation(t *testing.T) {
	base := MustColor("#B03A2E")
	v := DeriveVariations(base)

	bh, bs, _ := base.HSL()
	ah, _, _ := v.Accent.HSL()
	assert.InDelta(t, normalizeHue(bh+30), ah, 2)

	_, ss, _ := v.Saturated.HSL()
	_, ds, _ := v.Desaturated.HSL()
	_, ms, _ := v.Muted.HSL()
	assert.Greater(t, ss, bs)
	assert.Less(t, ds, bs)
	assert.Less(t, ms, ds)
}

func TestDeriveVariationsDeterministic(t *testing.T) {
	c := MustColor("#8B3A2B")
	assert.Equal(t, DeriveVariations(c), DeriveVariations(c))
}
