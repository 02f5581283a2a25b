package palette

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#FFFFFF", White},
		{"#fff", White},
		{"043666", RGB(0x04, 0x36, 0x66)},
		{"  #043666 ", RGB(0x04, 0x36, 0x66)},
		{"#04366680", Color{R: 0x04, G: 0x36, B: 0x66, A: 0.502}},
		{"rgb(10, 20, 30)", RGB(10, 20, 30)},
		{"rgba(10,20,30,0.25)", Color{R: 10, G: 20, B: 30, A: 0.25}},
		{"Black", Black},
		{"transparent", Color{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, input := range []string{"", "#12", "#zzzzzz", "navy-ish", "rgb(300, 0, 0)", "rgba(1,2,3,4)", "rgb(1,2)"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseColor(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidColor))
		})
	}
}

func TestMustColorFallsBack(t *testing.T) {
	assert.Equal(t, FallbackColor, MustColor("not a colour"))
	assert.Equal(t, White, ColorOr("???", White))
	assert.Equal(t, RGB(1, 2, 3), ColorOr("#010203", White))
}

func TestColorCSS(t *testing.T) {
	navy := RGB(0x04, 0x36, 0x66)
	assert.Equal(t, "#043666", navy.Hex())
	assert.Equal(t, "#043666", navy.CSS())
	assert.Equal(t, "rgba(4, 54, 102, 0.5)", navy.WithAlpha(0.5).CSS())
	assert.Equal(t, "#043666", navy.WithAlpha(0.5).Hex())
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Color{"bg": RGB(0x04, 0x36, 0x66)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"bg":"#043666"}`, string(data))

	var decoded map[string]Color
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, RGB(0x04, 0x36, 0x66), decoded["bg"])

	assert.Error(t, json.Unmarshal([]byte(`{"bg":"mauve-ish"}`), &decoded))
}

func TestLightenDarkenClamp(t *testing.T) {
	assert.Equal(t, White, White.Lighten(30))
	assert.Equal(t, Black, Black.Darken(30))
	assert.Equal(t, White, Black.Lighten(100))
}

func TestRotateHue(t *testing.T) {
	red := RGB(255, 0, 0)
	h, _, _ := red.RotateHue(120).HSL()
	assert.InDelta(t, 120, h, 1)

	h, _, _ = red.RotateHue(-120).HSL()
	assert.InDelta(t, 240, h, 1)
}

func TestMix(t *testing.T) {
	assert.Equal(t, Black, Black.Mix(White, 0))
	assert.Equal(t, White, Black.Mix(White, 1))
	assert.Equal(t, RGB(128, 128, 128), Black.Mix(White, 0.5))
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 1.0, White.Luminance(), 1e-9)
	assert.InDelta(t, 0.0, Black.Luminance(), 1e-9)
}
