package theme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
)

func writeTheme(t *testing.T, dir, file, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadVariant(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "club.yaml", `name: Club
description: Test club
primary: "#123456"
secondary: "#abcdef"
palette: Triadic
fonts:
  title: Oswald
`)

	v, err := LoadVariant(path)
	require.NoError(t, err)
	assert.Equal(t, "Club", v.Name)
	assert.Equal(t, path, v.Source)
	assert.Equal(t, "triadic", v.Palette)
	assert.Equal(t, palette.KindTriadic, v.PaletteKind())
}

func TestParseVariantErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", "primary: '#000000'"},
		{"missing primary", "name: x"},
		{"unknown palette", "name: x\nprimary: '#000000'\npalette: neon"},
		{"bad yaml", "name: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseVariant([]byte(tt.body))
			require.Error(t, err)
		})
	}
}

func TestParseVariantDefaultsSecondary(t *testing.T) {
	v, err := parseVariant([]byte("name: Solo\nprimary: '#043666'"))
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF", v.Secondary)
	assert.Equal(t, palette.KindPrimary, v.PaletteKind())
}

func TestLoadBuiltinVariants(t *testing.T) {
	variants, err := LoadBuiltinVariants()
	require.NoError(t, err)
	require.Len(t, variants, 4)

	names := make([]string, 0, len(variants))
	for _, v := range variants {
		assert.Equal(t, "builtin", v.Source)
		names = append(names, v.Name)

		_, err := palette.ParseColor(v.Primary)
		assert.NoError(t, err, v.Name)
		_, err = palette.ParseColor(v.Secondary)
		assert.NoError(t, err, v.Name)
	}
	assert.ElementsMatch(t, []string{"Basic", "BrickWork", "CNSW", "Mudgeeraba"}, names)
}

func TestLoadFromSearchPathsPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	project := t.TempDir()
	writeTheme(t, filepath.Join(project, ".fixtura", "themes"), "basic.yaml", `name: basic
primary: "#111111"
`)
	writeTheme(t, filepath.Join(project, ".fixtura", "themes"), "notes.txt", "ignored")

	variants, err := LoadFromSearchPaths(project)
	require.NoError(t, err)

	reg := NewRegistry(variants, zerolog.Nop())
	basic, err := reg.Find("BASIC")
	require.NoError(t, err)
	assert.Equal(t, "#111111", basic.Primary)
	assert.True(t, strings.HasSuffix(basic.Source, "basic.yaml"))

	cnsw, err := reg.Find("cnsw")
	require.NoError(t, err)
	assert.Equal(t, "builtin", cnsw.Source)
	assert.Len(t, reg.List(), 4)
}

func TestRegistryFindMissing(t *testing.T) {
	reg := NewRegistry(nil, zerolog.Nop())
	_, err := reg.Find("nope")
	assert.True(t, errors.Is(err, ErrThemeNotFound))
}

func TestResolve(t *testing.T) {
	v := Variant{Name: "Basic", Primary: "#043666", Secondary: "#F5B700", Palette: "dark"}
	r := v.Resolve()

	assert.Equal(t, palette.KindDark, r.Kind)
	assert.Equal(t, palette.KindDark, r.Palette().Name)
	assert.Equal(t, palette.MustColor("#043666"), r.Set.Primary.Base)

	again := v.Resolve()
	assert.Equal(t, r.Set, again.Set)
}

func TestResolveFallsBackOnBadColors(t *testing.T) {
	v := Variant{Name: "Broken", Primary: "tomato soup", Secondary: "#FFF", Text: TextTokens{Light: "glow"}}
	r := v.Resolve()

	assert.Equal(t, palette.FallbackColor, r.Set.Primary.Base)
	assert.Equal(t, palette.DefaultTextColors.Light, v.TextColors().Light)
}

func TestFontFallbackChain(t *testing.T) {
	v := Variant{Fonts: Fonts{Title: "Oswald", Body: "Roboto"}}
	assert.Equal(t, "Anton", v.TitleFont("Anton", "Inter"))
	assert.Equal(t, "Oswald", v.TitleFont("", "Inter"))
	assert.Equal(t, "Roboto", v.BodyFont(" ", "Inter"))

	bare := Variant{Fonts: Fonts{Body: "Roboto"}}
	assert.Equal(t, "Roboto", bare.TitleFont("", "Inter"))
	assert.Equal(t, "Inter", Variant{}.BodyFont("", "Inter"))
	assert.Equal(t, DefaultFontFamily, Variant{}.TitleFont("", ""))
}

func TestMarshalRoundTrip(t *testing.T) {
	v := &Variant{Name: "Club", Primary: "#123456", Secondary: "#ABCDEF", Palette: "light", Source: "somewhere"}
	data, err := Marshal(v)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "somewhere")

	parsed, err := parseVariant(data)
	require.NoError(t, err)
	assert.Equal(t, v.Name, parsed.Name)
	assert.Equal(t, v.Palette, parsed.Palette)
}

func TestBuildStyles(t *testing.T) {
	p := Variant{Name: "Basic", Primary: "#043666", Secondary: "#F5B700"}.Resolve().Palette()
	s := BuildStyles(p)

	assert.Equal(t, p, s.Palette)
	assert.Contains(t, s.Title.Render("LADDER"), "LADDER")
	assert.Contains(t, Swatch(palette.MustColor("#043666"), 10), "#043666")
}
