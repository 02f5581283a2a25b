// Package cli provides palette and contrast commands.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
)

var (
	paletteTheme      string
	paletteKind       string
	paletteVariations bool

	contrastTarget    float64
	contrastOn        string
	contrastPreferred string
)

func init() {
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(contrastCmd)

	paletteCmd.Flags().StringVar(&paletteTheme, "theme", "", "take colours from a theme instead of arguments")
	paletteCmd.Flags().StringVar(&paletteKind, "kind", "", "show a single palette kind in full")
	paletteCmd.Flags().BoolVar(&paletteVariations, "variations", false, "show the derived shades of both colours")

	contrastCmd.Flags().Float64Var(&contrastTarget, "target", palette.ContrastAA, "contrast ratio to adjust towards (AA 4.5, AAA 7)")
	contrastCmd.Flags().StringVar(&contrastOn, "on", "", "resolve readable text on this background instead")
	contrastCmd.Flags().StringVar(&contrastPreferred, "preferred", "#FFFFFF", "preferred text colour for --on")
}

var paletteCmd = &cobra.Command{
	Use:   "palette [primary] [secondary]",
	Short: "Derive design palettes from two club colours",
	Long: `Derive the eight design palettes (primary, secondary, dark, light, accent,
complementary, triadic, monochromatic) from a primary and secondary colour.

Colours come from the arguments or from --theme. Invalid colours fall back to
black.`,
	Example: `  fixtura palette "#043666" "#F5B700"
  fixtura palette --theme mudgeeraba --kind dark
  fixtura palette "#7A0019" "#FFD100" --variations`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, source, err := paletteSetFromArgs(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if paletteVariations {
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(out, map[string]palette.Variations{
					"primary":   set.Primary,
					"secondary": set.Secondary,
				})
			}
			renderVariations(out, set)
			return nil
		}

		if paletteKind != "" {
			kind, ok := palette.ParseKind(paletteKind)
			if !ok {
				return fmt.Errorf("unknown palette kind %q (expected one of %v)", paletteKind, palette.Kinds)
			}
			p := set.Palette(kind)
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(out, p)
			}
			renderPalette(out, p, source)
			return nil
		}

		if IsJSONOutput() || IsJSONLOutput() {
			fingerprint, err := set.Fingerprint()
			if err != nil {
				return err
			}
			return WriteOutput(out, map[string]any{
				"source":      source,
				"fingerprint": fingerprint,
				"palettes":    set.Palettes,
			})
		}

		tw := newTable(out, "palette", "background", "container", "text", "highlight", "contrast")
		for _, kind := range palette.Kinds {
			p := set.Palette(kind)
			tw.AppendRow([]any{
				kind,
				swatch(p.Background.Main),
				swatch(p.Container.Primary),
				swatch(p.Text.Primary),
				swatch(p.Container.Highlight),
				formatRatio(palette.ContrastRatio(p.Text.Primary, p.Background.Main)),
			})
		}
		tw.SetCaption("%s", source)
		tw.Render()
		return nil
	},
}

func paletteSetFromArgs(args []string) (palette.Set, string, error) {
	if paletteTheme != "" || len(args) == 0 {
		variant, err := findTheme(paletteTheme)
		if err != nil {
			return palette.Set{}, "", err
		}
		resolved := variant.Resolve()
		return resolved.Set, "theme " + variant.Name, nil
	}

	primary, err := parseColorArg("primary", args[0])
	if err != nil {
		return palette.Set{}, "", err
	}
	secondary := palette.White
	if len(args) > 1 {
		secondary, err = parseColorArg("secondary", args[1])
		if err != nil {
			return palette.Set{}, "", err
		}
	}
	set := palette.NewSetFromColors(primary, secondary, palette.DefaultTextColors)
	return set, fmt.Sprintf("%s / %s", primary.Hex(), secondary.Hex()), nil
}

func renderPalette(out io.Writer, p palette.DesignPalette, source string) {
	tw := newTable(out, "role", "colour", "value")
	rows := []struct {
		role  string
		color palette.Color
	}{
		{"background.main", p.Background.Main},
		{"background.light", p.Background.Light},
		{"background.dark", p.Background.Dark},
		{"background.accent", p.Background.Accent},
		{"container.primary", p.Container.Primary},
		{"container.secondary", p.Container.Secondary},
		{"container.light", p.Container.Light},
		{"container.dark", p.Container.Dark},
		{"container.transparent", p.Container.Transparent},
		{"container.highlight", p.Container.Highlight},
		{"text.primary", p.Text.Primary},
		{"text.secondary", p.Text.Secondary},
		{"text.muted", p.Text.Muted},
		{"text.title", p.Text.Title},
		{"text.on_container", p.Text.OnContainer},
		{"text.on_highlight", p.Text.OnHighlight},
		{"shadow.color", p.Shadow.Color},
	}
	for _, r := range rows {
		tw.AppendRow([]any{r.role, swatch(r.color), r.color.CSS()})
	}
	tw.AppendFooter([]any{"gradient", "", p.Background.Gradient})
	tw.SetCaption("%s palette, %s", p.Name, source)
	tw.Render()
}

func renderVariations(out io.Writer, set palette.Set) {
	tw := newTable(out, "shade", "primary", "secondary")
	shades := []struct {
		name string
		get  func(palette.Variations) palette.Color
	}{
		{"base", func(v palette.Variations) palette.Color { return v.Base }},
		{"light", func(v palette.Variations) palette.Color { return v.Light }},
		{"lighter", func(v palette.Variations) palette.Color { return v.Lighter }},
		{"lightest", func(v palette.Variations) palette.Color { return v.Lightest }},
		{"dark", func(v palette.Variations) palette.Color { return v.Dark }},
		{"darker", func(v palette.Variations) palette.Color { return v.Darker }},
		{"darkest", func(v palette.Variations) palette.Color { return v.Darkest }},
		{"transparent", func(v palette.Variations) palette.Color { return v.Transparent }},
		{"semi_transparent", func(v palette.Variations) palette.Color { return v.SemiTransparent }},
		{"saturated", func(v palette.Variations) palette.Color { return v.Saturated }},
		{"desaturated", func(v palette.Variations) palette.Color { return v.Desaturated }},
		{"muted", func(v palette.Variations) palette.Color { return v.Muted }},
		{"accent", func(v palette.Variations) palette.Color { return v.Accent }},
		{"contrast_text", func(v palette.Variations) palette.Color { return v.ContrastText }},
	}
	for _, s := range shades {
		tw.AppendRow([]any{s.name, swatch(s.get(set.Primary)), swatch(s.get(set.Secondary))})
	}
	tw.Render()
}

var contrastCmd = &cobra.Command{
	Use:   "contrast <colour...>",
	Short: "Check WCAG contrast of colours against black and white",
	Long: `Report the best text colour for each background, its contrast ratio and
whether it passes WCAG AA (4.5:1) and AA large text (3:1). When a colour misses
--target, its lightness is stepped away from the text colour until it passes.

With --on, resolve the --preferred text colour against one background instead.`,
	Example: `  fixtura contrast "#043666" "#F5B700" "#808080"
  fixtura contrast "#808080" --target 7
  fixtura contrast --on "#F5B700" --preferred "#FFFFFF"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if contrastOn != "" {
			bg, err := parseColorArg("--on", contrastOn)
			if err != nil {
				return err
			}
			preferred, err := parseColorArg("--preferred", contrastPreferred)
			if err != nil {
				return err
			}
			text := palette.ResolveContrastSafeText(bg, preferred)
			result := map[string]any{
				"background": bg,
				"preferred":  preferred,
				"text":       text,
				"ratio":      palette.ContrastRatio(text, bg),
				"kept":       text == preferred,
			}
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(out, result)
			}
			verdict := "kept"
			if text != preferred {
				verdict = "replaced"
			}
			fmt.Fprintf(out, "text %s on %s: %s (preferred %s %s)\n",
				text.Hex(), bg.Hex(), formatRatio(palette.ContrastRatio(text, bg)), preferred.Hex(), verdict)
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("at least one colour is required")
		}
		if contrastTarget < 1 || contrastTarget > 21 {
			return fmt.Errorf("--target must be between 1 and 21")
		}

		results := make([]palette.ContrastSafety, 0, len(args))
		for _, arg := range args {
			c, err := parseColorArg("colour", arg)
			if err != nil {
				return err
			}
			results = append(results, palette.CalculateContrastSafetyFor(c, contrastTarget))
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, results)
		}

		tw := newTable(out, "colour", "text", "ratio", "aa", "aa large", "adjusted")
		alignRight(tw, 3)
		for _, r := range results {
			adjusted := ""
			if r.AdjustedColor != nil {
				adjusted = swatch(*r.AdjustedColor)
			}
			tw.AppendRow([]any{
				swatch(r.Color),
				r.SafeColor.Hex(),
				formatRatio(r.ContrastRatio),
				formatPass(r.IsAccessible),
				formatPass(r.IsLargeTextAccessible),
				adjusted,
			})
		}
		if contrastTarget != palette.ContrastAA {
			tw.SetCaption("adjusted towards %.1f:1", contrastTarget)
		}
		tw.Render()
		return nil
	},
}
