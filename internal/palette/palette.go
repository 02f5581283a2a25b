package palette

import (
	"fmt"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

// Kind names one of the derived palettes.
type Kind string

const (
	KindPrimary       Kind = "primary"
	KindSecondary     Kind = "secondary"
	KindDark          Kind = "dark"
	KindLight         Kind = "light"
	KindAccent        Kind = "accent"
	KindComplementary Kind = "complementary"
	KindTriadic       Kind = "triadic"
	KindMonochromatic Kind = "monochromatic"
)

// Kinds lists every palette kind in display order.
var Kinds = []Kind{
	KindPrimary,
	KindSecondary,
	KindDark,
	KindLight,
	KindAccent,
	KindComplementary,
	KindTriadic,
	KindMonochromatic,
}

// ParseKind normalizes a palette kind name.
func ParseKind(name string) (Kind, bool) {
	key := Kind(strings.ToLower(strings.TrimSpace(name)))
	if key == "" {
		return KindPrimary, true
	}
	for _, k := range Kinds {
		if k == key {
			return k, true
		}
	}
	return KindPrimary, false
}

// Background colours of a palette.
type Background struct {
	Main     Color  `json:"main"`
	Light    Color  `json:"light"`
	Dark     Color  `json:"dark"`
	Accent   Color  `json:"accent"`
	Gradient string `json:"gradient"`
}

// Container colours for cards, rows and panels.
type Container struct {
	Primary     Color `json:"primary"`
	Secondary   Color `json:"secondary"`
	Light       Color `json:"light"`
	Dark        Color `json:"dark"`
	Transparent Color `json:"transparent"`
	Highlight   Color `json:"highlight"`
}

// Text colours, each readable on the surface it is meant for.
type Text struct {
	Primary     Color `json:"primary"`
	Secondary   Color `json:"secondary"`
	Muted       Color `json:"muted"`
	Title       Color `json:"title"`
	OnContainer Color `json:"on_container"`
	OnHighlight Color `json:"on_highlight"`
}

// Shadow holds box-shadow declarations built from one shadow colour.
type Shadow struct {
	Color  Color  `json:"color"`
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// DesignPalette is one complete named palette.
type DesignPalette struct {
	Name       Kind       `json:"name"`
	Background Background `json:"background"`
	Container  Container  `json:"container"`
	Text       Text       `json:"text"`
	Shadow     Shadow     `json:"shadow"`
}

// TextColors are the preferred text colours; they are used wherever they stay
// readable.
type TextColors struct {
	Light Color `json:"light"`
	Dark  Color `json:"dark"`
	Muted Color `json:"muted"`
}

// DefaultTextColors is used when a theme does not name its own.
var DefaultTextColors = TextColors{
	Light: White,
	Dark:  RGB(0x1A, 0x1A, 0x1A),
	Muted: RGB(0x6B, 0x72, 0x80),
}

// Inputs carry everything BuildPalette reads.
type Inputs struct {
	Primary   Variations
	Secondary Variations
	Text      TextColors
}

// NewInputs derives variations for both root colours.
func NewInputs(primary, secondary Color, text TextColors) Inputs {
	return Inputs{
		Primary:   DeriveVariations(primary),
		Secondary: DeriveVariations(secondary),
		Text:      text,
	}
}

// BuildPalette assembles the palette of the given kind:
//
//	primary        primary surfaces, secondary accent
//	secondary      secondary surfaces, primary accent
//	dark           surfaces from the darkest primary shade, secondary accent
//	light          surfaces from the lightest primary shade, primary accent
//	accent         surfaces from the hue-shifted primary accent, secondary accent
//	complementary  primary hue +180°, primary accent
//	triadic        primary surfaces, accents at primary hue +120° and +240°
//	monochromatic  primary surfaces and primary shades only
//
// Unknown kinds build the primary palette.
func BuildPalette(kind Kind, in Inputs) DesignPalette {
	p, s := in.Primary, in.Secondary

	switch kind {
	case KindSecondary:
		return assemble(kind, s, p.Base, in.Text)
	case KindDark:
		return assemble(kind, DeriveVariations(p.Darkest), s.Base, in.Text)
	case KindLight:
		return assemble(kind, DeriveVariations(p.Lightest), p.Base, in.Text)
	case KindAccent:
		return assemble(kind, DeriveVariations(p.Accent), s.Base, in.Text)
	case KindComplementary:
		return assemble(kind, DeriveVariations(p.Base.RotateHue(180)), p.Base, in.Text)
	case KindTriadic:
		dp := assemble(kind, p, p.Base.RotateHue(120), in.Text)
		dp.Container.Highlight = p.Base.RotateHue(240)
		dp.Text.OnHighlight = ResolveContrastSafeText(dp.Container.Highlight, preferredText(dp.Container.Highlight, in.Text))
		return dp
	case KindMonochromatic:
		return assemble(kind, p, p.Lightest, in.Text)
	default:
		return assemble(KindPrimary, p, s.Base, in.Text)
	}
}

func assemble(kind Kind, bg Variations, accent Color, text TextColors) DesignPalette {
	container := Container{
		Primary:     bg.Dark,
		Secondary:   bg.Darker,
		Light:       bg.Lighter,
		Dark:        bg.Darkest,
		Transparent: bg.Transparent,
		Highlight:   accent,
	}

	return DesignPalette{
		Name: kind,
		Background: Background{
			Main:     bg.Base,
			Light:    bg.Light,
			Dark:     bg.Dark,
			Accent:   accent,
			Gradient: LinearGradient(135, bg.Base, bg.Darker),
		},
		Container: container,
		Text: Text{
			Primary:     ResolveContrastSafeText(bg.Base, preferredText(bg.Base, text)),
			Secondary:   ResolveContrastSafeText(bg.Base, accent),
			Muted:       ResolveContrastSafeText(bg.Base, text.Muted),
			Title:       ResolveContrastSafeText(bg.Base, accent),
			OnContainer: ResolveContrastSafeText(container.Primary, preferredText(container.Primary, text)),
			OnHighlight: ResolveContrastSafeText(accent, preferredText(accent, text)),
		},
		Shadow: newShadow(bg.Darkest),
	}
}

// preferredText picks the theme's light or dark text to match the surface.
func preferredText(bg Color, text TextColors) Color {
	if ReadableOn(bg) == White {
		return text.Light
	}
	return text.Dark
}

func newShadow(base Color) Shadow {
	c := base.Opaque()
	return Shadow{
		Color:  c,
		Small:  fmt.Sprintf("0 1px 3px %s", c.WithAlpha(0.12).CSS()),
		Medium: fmt.Sprintf("0 4px 6px %s", c.WithAlpha(0.2).CSS()),
		Large:  fmt.Sprintf("0 10px 25px %s", c.WithAlpha(0.3).CSS()),
	}
}

// LinearGradient renders a two-stop CSS linear gradient.
func LinearGradient(angle int, from, to Color) string {
	return fmt.Sprintf("linear-gradient(%ddeg, %s 0%%, %s 100%%)", angle, from.CSS(), to.CSS())
}

// Set is every palette derived from one primary/secondary pair.
type Set struct {
	Primary   Variations             `json:"primary"`
	Secondary Variations             `json:"secondary"`
	Palettes  map[Kind]DesignPalette `json:"palettes"`
}

// NewSet parses both colours, substituting FallbackColor for bad input, and
// builds all palettes with DefaultTextColors.
func NewSet(primary, secondary string) Set {
	return NewSetFromColors(MustColor(primary), MustColor(secondary), DefaultTextColors)
}

// NewSetFromColors builds all palettes from parsed colours.
func NewSetFromColors(primary, secondary Color, text TextColors) Set {
	in := NewInputs(primary, secondary, text)
	palettes := make(map[Kind]DesignPalette, len(Kinds))
	for _, k := range Kinds {
		palettes[k] = BuildPalette(k, in)
	}
	return Set{
		Primary:   in.Primary,
		Secondary: in.Secondary,
		Palettes:  palettes,
	}
}

// Palette returns the palette of kind, or the primary palette if absent.
func (s Set) Palette(kind Kind) DesignPalette {
	if p, ok := s.Palettes[kind]; ok {
		return p
	}
	return s.Palettes[KindPrimary]
}

// Fingerprint hashes the whole set. Equal inputs give equal fingerprints.
func (s Set) Fingerprint() (string, error) {
	h, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("hash palette set: %w", err)
	}
	return fmt.Sprintf("%016x", h), nil
}
