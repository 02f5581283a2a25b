// Package theme loads club theme variants and resolves them into palettes.
package theme

import (
	"strings"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
)

// DefaultFontFamily ends the font fallback chain.
const DefaultFontFamily = "sans-serif"

// Variant is a named visual theme built from two root colours.
type Variant struct {
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description" json:"description"`
	Primary     string     `yaml:"primary" json:"primary"`
	Secondary   string     `yaml:"secondary" json:"secondary"`
	Palette     string     `yaml:"palette,omitempty" json:"palette,omitempty"`
	Fonts       Fonts      `yaml:"fonts,omitempty" json:"fonts,omitempty"`
	Text        TextTokens `yaml:"text,omitempty" json:"text,omitempty"`
	Tags        []string   `yaml:"tags,omitempty" json:"tags,omitempty"`
	Source      string     `yaml:"-" json:"source"` // file path or "builtin"
}

// Fonts names the title and body font families.
type Fonts struct {
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	Body  string `yaml:"body,omitempty" json:"body,omitempty"`
}

// TextTokens override the preferred text colours.
type TextTokens struct {
	Light string `yaml:"light,omitempty" json:"light,omitempty"`
	Dark  string `yaml:"dark,omitempty" json:"dark,omitempty"`
	Muted string `yaml:"muted,omitempty" json:"muted,omitempty"`
}

// Resolved is a variant with its derived palettes.
type Resolved struct {
	Variant Variant
	Kind    palette.Kind
	Set     palette.Set
}

// Palette returns the variant's default palette.
func (r Resolved) Palette() palette.DesignPalette {
	return r.Set.Palette(r.Kind)
}

// TextColors returns the preferred text colours with defaults filled in.
func (v Variant) TextColors() palette.TextColors {
	d := palette.DefaultTextColors
	return palette.TextColors{
		Light: colorOr(v.Text.Light, d.Light),
		Dark:  colorOr(v.Text.Dark, d.Dark),
		Muted: colorOr(v.Text.Muted, d.Muted),
	}
}

func colorOr(s string, fallback palette.Color) palette.Color {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return palette.ColorOr(s, fallback)
}

// PaletteKind returns the configured default palette, or primary.
func (v Variant) PaletteKind() palette.Kind {
	kind, _ := palette.ParseKind(v.Palette)
	return kind
}

// Resolve derives the variant's palettes. Unreadable colours fall back to
// palette.FallbackColor.
func (v Variant) Resolve() Resolved {
	set := palette.NewSetFromColors(
		palette.MustColor(v.Primary),
		palette.MustColor(v.Secondary),
		v.TextColors(),
	)
	return Resolved{Variant: v, Kind: v.PaletteKind(), Set: set}
}

// TitleFont resolves the title font: override, then the variant's title and
// body fonts, then configDefault, then DefaultFontFamily.
func (v Variant) TitleFont(override, configDefault string) string {
	return firstFont(override, v.Fonts.Title, v.Fonts.Body, configDefault)
}

// BodyFont resolves the body font the same way, skipping the title font.
func (v Variant) BodyFont(override, configDefault string) string {
	return firstFont(override, v.Fonts.Body, configDefault)
}

func firstFont(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return DefaultFontFamily
}
