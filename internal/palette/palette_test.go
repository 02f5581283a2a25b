package palette

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetBuildsEveryKind(t *testing.T) {
	set := NewSet("#043666", "#F5B700")

	require.Len(t, set.Palettes, len(Kinds))
	for _, k := range Kinds {
		assert.Equal(t, k, set.Palette(k).Name)
	}
	assert.Equal(t, KindPrimary, set.Palette(Kind("neon")).Name)
}

func TestNewSetIsDeterministic(t *testing.T) {
	a, err := json.Marshal(NewSet("#043666", "#F5B700"))
	require.NoError(t, err)
	b, err := json.Marshal(NewSet("#043666", "#F5B700"))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	fa, err := NewSet("#043666", "#F5B700").Fingerprint()
	require.NoError(t, err)
	fb, err := NewSet("#043666", "#F5B700").Fingerprint()
	require.NoError(t, err)
	fc, err := NewSet("#7A0019", "#FFD100").Fingerprint()
	require.NoError(t, err)

	assert.Equal(t, fa, fb)
	assert.NotEqual(t, fa, fc)
	assert.Len(t, fa, 16)
}

func TestNewSetFallsBackOnBadInput(t *testing.T) {
	set := NewSet("definitely-not-a-colour", "#FFFFFF")
	assert.Equal(t, FallbackColor, set.Primary.Base)
	assert.Equal(t, White, set.Secondary.Base)
}

func TestBuildPaletteRoles(t *testing.T) {
	primary, secondary := MustColor("#043666"), MustColor("#F5B700")
	in := NewInputs(primary, secondary, DefaultTextColors)

	p := BuildPalette(KindPrimary, in)
	assert.Equal(t, primary, p.Background.Main)
	assert.Equal(t, secondary, p.Background.Accent)
	assert.Equal(t, secondary, p.Container.Highlight)
	assert.Equal(t, White, p.Text.Primary)
	assert.Equal(t, secondary, p.Text.Title, "gold reads on navy")

	s := BuildPalette(KindSecondary, in)
	assert.Equal(t, secondary, s.Background.Main)
	assert.Equal(t, primary, s.Background.Accent)
	assert.Equal(t, DefaultTextColors.Dark, s.Text.Primary)

	d := BuildPalette(KindDark, in)
	assert.Less(t, d.Background.Main.Luminance(), primary.Luminance())

	l := BuildPalette(KindLight, in)
	assert.Greater(t, l.Background.Main.Luminance(), primary.Luminance())
}

func TestBuildPaletteHueRules(t *testing.T) {
	primary := MustColor("#B03A2E")
	in := NewInputs(primary, White, DefaultTextColors)
	ph, _, _ := primary.HSL()

	comp := BuildPalette(KindComplementary, in)
	h, _, _ := comp.Background.Main.HSL()
	assert.InDelta(t, normalizeHue(ph+180), h, 2)

	tri := BuildPalette(KindTriadic, in)
	h1, _, _ := tri.Background.Accent.HSL()
	h2, _, _ := tri.Container.Highlight.HSL()
	assert.InDelta(t, normalizeHue(ph+120), h1, 2)
	assert.InDelta(t, normalizeHue(ph+240), h2, 2)
	assert.Equal(t, primary, tri.Background.Main)

	mono := BuildPalette(KindMonochromatic, in)
	for _, c := range []Color{mono.Background.Main, mono.Background.Light, mono.Background.Accent, mono.Container.Light} {
		h, _, _ := c.HSL()
		assert.InDelta(t, ph, h, 2, "colour %s", c)
	}
}

func TestPalettesKeepTextReadable(t *testing.T) {
	pairs := [][2]string{
		{"#043666", "#F5B700"},
		{"#7A0019", "#FFD100"},
		{"#FFFFFF", "#000000"},
		{"#87CEEB", "#00205B"},
	}

	for _, pair := range pairs {
		set := NewSet(pair[0], pair[1])
		for _, k := range Kinds {
			p := set.Palette(k)
			assert.GreaterOrEqual(t, ContrastRatio(p.Background.Main, p.Text.Primary), ContrastAA, "%v %s primary", pair, k)
			assert.GreaterOrEqual(t, ContrastRatio(p.Background.Main, p.Text.Title), ContrastAA, "%v %s title", pair, k)
			assert.GreaterOrEqual(t, ContrastRatio(p.Container.Primary, p.Text.OnContainer), ContrastAA, "%v %s container", pair, k)
			assert.GreaterOrEqual(t, ContrastRatio(p.Container.Highlight, p.Text.OnHighlight), ContrastAA, "%v %s highlight", pair, k)
		}
	}
}

func TestShadowAndGradient(t *testing.T) {
	p := NewSet("#043666", "#F5B700").Palette(KindPrimary)

	assert.Contains(t, p.Shadow.Small, "rgba(")
	assert.Contains(t, p.Background.Gradient, "linear-gradient(135deg, #043666 0%")
	assert.Equal(t, "linear-gradient(90deg, #000000 0%, #FFFFFF 100%)", LinearGradient(90, Black, White))
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("Triadic")
	assert.True(t, ok)
	assert.Equal(t, KindTriadic, k)

	_, ok = ParseKind("neon")
	assert.False(t, ok)
}
