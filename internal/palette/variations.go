package palette

// Variations is the family of shades derived from one base colour.
type Variations struct {
	Base            Color `json:"base"`
	Light           Color `json:"light"`
	Lighter         Color `json:"lighter"`
	Lightest        Color `json:"lightest"`
	Dark            Color `json:"dark"`
	Darker          Color `json:"darker"`
	Darkest         Color `json:"darkest"`
	Transparent     Color `json:"transparent"`
	SemiTransparent Color `json:"semi_transparent"`
	ContrastText    Color `json:"contrast_text"`
	Saturated       Color `json:"saturated"`
	Desaturated     Color `json:"desaturated"`
	Muted           Color `json:"muted"`
	Accent          Color `json:"accent"`
}

// Derivation steps. Lightness and saturation are in HSL percentage points.
const (
	lightnessStep    = 10.0
	saturationStep   = 20.0
	mutedDesaturate  = 40.0
	accentHueShift   = 30.0
	transparentAlpha = 0.5
	semiTransparent  = 0.8
)

// DeriveVariations computes the shade family of base.
func DeriveVariations(base Color) Variations {
	return Variations{
		Base:            base,
		Light:           base.Lighten(lightnessStep),
		Lighter:         base.Lighten(2 * lightnessStep),
		Lightest:        base.Lighten(3 * lightnessStep),
		Dark:            base.Darken(lightnessStep),
		Darker:          base.Darken(2 * lightnessStep),
		Darkest:         base.Darken(3 * lightnessStep),
		Transparent:     base.WithAlpha(transparentAlpha),
		SemiTransparent: base.WithAlpha(semiTransparent),
		ContrastText:    ReadableOn(base),
		Saturated:       base.Saturate(saturationStep),
		Desaturated:     base.Saturate(-saturationStep),
		Muted:           base.Saturate(-mutedDesaturate),
		Accent:          base.RotateHue(accentHueShift),
	}
}
