// Package palette derives design palettes from a primary/secondary colour
// pair and resolves readable text colours for arbitrary backgrounds.
package palette

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/logging"
)

// ErrInvalidColor is returned by ParseColor for input it cannot read.
var ErrInvalidColor = errors.New("invalid color")

// Color is an sRGB colour with an alpha channel in [0,1].
// It encodes to and from CSS text.
type Color struct {
	R, G, B uint8
	A       float64
}

var (
	White = Color{R: 255, G: 255, B: 255, A: 1}
	Black = Color{A: 1}

	// FallbackColor replaces any colour that cannot be parsed.
	FallbackColor = Black
)

// RGB builds an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ParseColor reads "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)",
// "rgba(r, g, b, a)", "white", "black" and "transparent". A missing leading
// '#' is tolerated.
func ParseColor(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	switch in {
	case "":
		return Color{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	case "white":
		return White, nil
	case "black":
		return Black, nil
	case "transparent":
		return Color{}, nil
	}

	if strings.HasPrefix(in, "rgb") {
		return parseFunctional(in)
	}

	hex := strings.TrimPrefix(in, "#")
	switch len(hex) {
	case 3, 6:
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return fromColorful(c, 1), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return Color{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: roundTo(float64(uint8(v))/255, 3),
		}, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseFunctional(in string) (Color, error) {
	open := strings.IndexByte(in, '(')
	if open < 0 || !strings.HasSuffix(in, ")") {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, in)
	}
	fields := strings.Split(in[open+1:len(in)-1], ",")
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, in)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, in)
		}
		channels[i] = uint8(v)
	}

	alpha := 1.0
	if len(fields) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil || v < 0 || v > 1 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, in)
		}
		alpha = v
	}
	return Color{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

// ColorOr parses s, returning fallback when s cannot be read.
func ColorOr(s string, fallback Color) Color {
	c, err := ParseColor(s)
	if err != nil {
		logger := logging.Component("palette")
		logger.Debug().Str("input", s).Str("fallback", fallback.CSS()).Msg("unparseable color, using fallback")
		return fallback
	}
	return c
}

// MustColor parses s, substituting FallbackColor on failure.
func MustColor(s string) Color {
	return ColorOr(s, FallbackColor)
}

func fromColorful(c colorful.Color, alpha float64) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns "#RRGGBB", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// CSS returns Hex for opaque colours and rgba() otherwise.
func (c Color) CSS() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(roundTo(c.A, 3), 'f', -1, 64))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.CSS()
}

// Opaque returns c with full alpha.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// WithAlpha returns c with alpha a, clamped to [0,1].
func (c Color) WithAlpha(a float64) Color {
	c.A = math.Max(0, math.Min(1, a))
	return c
}

// HSL returns hue in degrees and saturation/lightness in [0,1].
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

func fromHSL(h, s, l, alpha float64) Color {
	return fromColorful(colorful.Hsl(normalizeHue(h), clampUnit(s), clampUnit(l)), alpha)
}

// Lighten moves HSL lightness up by points (0–100). Negative darkens.
func (c Color) Lighten(points float64) Color {
	h, s, l := c.HSL()
	return fromHSL(h, s, l+points/100, c.A)
}

// Darken moves HSL lightness down by points.
func (c Color) Darken(points float64) Color {
	return c.Lighten(-points)
}

// Saturate moves HSL saturation up by points. Negative desaturates.
func (c Color) Saturate(points float64) Color {
	h, s, l := c.HSL()
	return fromHSL(h, s+points/100, l, c.A)
}

// RotateHue shifts the hue by degrees.
func (c Color) RotateHue(degrees float64) Color {
	h, s, l := c.HSL()
	return fromHSL(h+degrees, s, l, c.A)
}

// Mix blends c toward o by t in [0,1], in RGB space. Alpha is interpolated.
func (c Color) Mix(o Color, t float64) Color {
	t = clampUnit(t)
	mixed := c.colorful().BlendRgb(o.colorful(), t)
	return fromColorful(mixed, c.A+(o.A-c.A)*t)
}

// Luminance is the WCAG relative luminance of the colour, ignoring alpha.
func (c Color) Luminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// MarshalText encodes the colour in CSS form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.CSS()), nil
}

// UnmarshalText parses CSS colour text strictly.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
