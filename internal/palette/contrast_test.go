package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio(Black, White), 1e-9)
	assert.InDelta(t, 21.0, ContrastRatio(White, Black), 1e-9)
	assert.InDelta(t, 1.0, ContrastRatio(White, White), 1e-9)
	assert.InDelta(t, 4.54, ContrastRatio(RGB(0x76, 0x76, 0x76), White), 0.01)
}

func TestReadableOn(t *testing.T) {
	assert.Equal(t, Black, ReadableOn(White))
	assert.Equal(t, White, ReadableOn(Black))
	assert.Equal(t, White, ReadableOn(MustColor("#043666")))
	assert.Equal(t, Black, ReadableOn(MustColor("#F5B700")))
}

func TestResolveContrastSafeText(t *testing.T) {
	got := ResolveContrastSafeText(White, RGB(0xCC, 0xCC, 0xCC))
	assert.Equal(t, Black, got)
	assert.GreaterOrEqual(t, ContrastRatio(White, got), ContrastAA)

	navy := MustColor("#043666")
	assert.Equal(t, White, ResolveContrastSafeText(navy, White))

	gold := MustColor("#F5B700")
	assert.Equal(t, gold, ResolveContrastSafeText(navy, gold), "readable preferred colour is kept")
}

func TestResolveContrastSafeTextAlwaysReadable(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				bg := RGB(uint8(r), uint8(g), uint8(b))
				text := ResolveContrastSafeText(bg, RGB(0x80, 0x80, 0x80))
				require.GreaterOrEqual(t, ContrastRatio(bg, text), ContrastAA, "bg %s", bg)
			}
		}
	}
}

func TestCalculateContrastSafetyBlack(t *testing.T) {
	got := CalculateContrastSafety(Black)

	assert.Equal(t, White, got.SafeColor)
	assert.Equal(t, 21.0, got.ContrastRatio)
	assert.True(t, got.IsAccessible)
	assert.True(t, got.IsLargeTextAccessible)
	assert.Nil(t, got.AdjustedColor)
}

func TestCalculateContrastSafetyWhite(t *testing.T) {
	got := CalculateContrastSafety(White)
	assert.Equal(t, Black, got.SafeColor)
	assert.Equal(t, 21.0, got.ContrastRatio)
}

func TestCalculateContrastSafetyForAdjusts(t *testing.T) {
	grey := RGB(0x77, 0x77, 0x77)
	got := CalculateContrastSafetyFor(grey, ContrastAAA)

	assert.Equal(t, Black, got.SafeColor)
	assert.False(t, got.IsAccessible)
	assert.True(t, got.IsLargeTextAccessible)
	require.NotNil(t, got.AdjustedColor)
	assert.GreaterOrEqual(t, ContrastRatio(*got.AdjustedColor, Black), ContrastAAA)
	assert.Greater(t, got.AdjustedColor.Luminance(), grey.Luminance(), "lightened away from black")
}

func TestCalculateContrastSafetyForDarkensAgainstWhite(t *testing.T) {
	blue := MustColor("#3A6EA5")
	got := CalculateContrastSafetyFor(blue, ContrastAAA)

	require.Equal(t, White, got.SafeColor)
	require.NotNil(t, got.AdjustedColor)
	assert.Less(t, got.AdjustedColor.Luminance(), blue.Luminance())
	assert.GreaterOrEqual(t, ContrastRatio(*got.AdjustedColor, White), ContrastAAA)
}

func TestCalculateContrastSafetyForUnreachableTarget(t *testing.T) {
	got := CalculateContrastSafetyFor(RGB(0x77, 0x77, 0x77), 30)

	assert.False(t, got.IsAccessible)
	require.NotNil(t, got.AdjustedColor)
	assert.Equal(t, White, *got.AdjustedColor, "best candidate is returned once the cap is hit")
}
