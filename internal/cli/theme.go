// Package cli provides theme commands.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/config"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/theme"
)

var (
	themeInitName      string
	themeInitPrimary   string
	themeInitSecondary string
	themeInitPalette   string
	themeInitFont      string
	themeInitUser      bool
	themeInitForce     bool
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeInitCmd)

	themeInitCmd.Flags().StringVar(&themeInitName, "name", "", "theme name")
	themeInitCmd.Flags().StringVar(&themeInitPrimary, "primary", "", "primary colour")
	themeInitCmd.Flags().StringVar(&themeInitSecondary, "secondary", "", "secondary colour (default white)")
	themeInitCmd.Flags().StringVar(&themeInitPalette, "palette", "", "default palette kind")
	themeInitCmd.Flags().StringVar(&themeInitFont, "font", "", "font family for titles and body")
	themeInitCmd.Flags().BoolVar(&themeInitUser, "user", false, "write to the user theme directory instead of the project")
	themeInitCmd.Flags().BoolVar(&themeInitForce, "force", false, "overwrite an existing theme file")
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage club themes",
	Long: `Themes name a primary and secondary colour, a default palette and fonts.

Themes are loaded from <project>/.fixtura/themes, ~/.config/fixtura/themes and
/usr/share/fixtura/themes, then the built-in themes. The first theme with a
given name wins.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadThemes()
		if err != nil {
			return err
		}
		variants := registry.List()

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, variants)
		}

		if len(variants) == 0 {
			fmt.Fprintln(out, "No themes found.")
			return nil
		}

		tw := newTable(out, "name", "primary", "secondary", "palette", "source")
		for _, v := range variants {
			resolved := v.Resolve()
			tw.AppendRow([]any{
				v.Name,
				swatch(resolved.Set.Primary.Base),
				swatch(resolved.Set.Secondary.Base),
				resolved.Kind,
				v.Source,
			})
		}
		tw.Render()
		return nil
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a theme and its default palette",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		variant, err := findTheme(name)
		if err != nil {
			return err
		}
		resolved := variant.Resolve()
		cfg := resolvedConfig()

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			fingerprint, err := resolved.Set.Fingerprint()
			if err != nil {
				return err
			}
			return WriteOutput(out, map[string]any{
				"theme":       variant,
				"palette":     resolved.Palette(),
				"title_font":  variant.TitleFont("", cfg.Render.FontFamily),
				"body_font":   variant.BodyFont("", cfg.Render.FontFamily),
				"fingerprint": fingerprint,
			})
		}

		fmt.Fprintf(out, "%s", variant.Name)
		if variant.Description != "" {
			fmt.Fprintf(out, " - %s", variant.Description)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Source: %s\n", variant.Source)
		fmt.Fprintf(out, "Fonts:  %s / %s\n\n",
			variant.TitleFont("", cfg.Render.FontFamily),
			variant.BodyFont("", cfg.Render.FontFamily))
		renderPalette(out, resolved.Palette(), "theme "+variant.Name)
		return nil
	},
}

var themeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new theme file",
	Long: `Create a theme YAML file in <project>/.fixtura/themes (or the user theme
directory with --user). Missing values are prompted for when running in a
terminal.`,
	Example: `  fixtura theme init
  fixtura theme init --name burleigh --primary "#00205B" --secondary "#FFC72C" --palette dark`,
	RunE: func(cmd *cobra.Command, args []string) error {
		variant := &theme.Variant{
			Name:      strings.TrimSpace(themeInitName),
			Primary:   strings.TrimSpace(themeInitPrimary),
			Secondary: strings.TrimSpace(themeInitSecondary),
			Palette:   strings.TrimSpace(themeInitPalette),
			Fonts:     theme.Fonts{Title: themeInitFont, Body: themeInitFont},
		}

		if variant.Name == "" || variant.Primary == "" {
			if IsNonInteractive() {
				return &PreflightError{
					Message:  "theme name and primary colour are required",
					Hint:     "pass --name and --primary, or run in a terminal to be prompted",
					NextStep: `fixtura theme init --name mytheme --primary "#043666"`,
				}
			}
			if err := promptTheme(variant); err != nil {
				return err
			}
		}

		if err := validateThemeInput(variant); err != nil {
			return err
		}

		dir := filepath.Join(resolvedProjectDir(), ".fixtura", "themes")
		if themeInitUser {
			dir = filepath.Join(config.ConfigDir(), "themes")
		}
		path, err := writeTheme(dir, variant, themeInitForce)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, map[string]string{"name": variant.Name, "path": path})
		}
		fmt.Fprintf(out, "Created theme %s at %s\n", variant.Name, path)
		return nil
	},
}

func promptTheme(v *theme.Variant) error {
	kindOptions := make([]huh.Option[string], 0, len(palette.Kinds))
	for _, k := range palette.Kinds {
		kindOptions = append(kindOptions, huh.NewOption(string(k), string(k)))
	}
	if v.Palette == "" {
		v.Palette = string(palette.KindPrimary)
	}

	colorValidator := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		_, err := palette.ParseColor(s)
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Theme name").
				Placeholder("burleigh").
				Value(&v.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Primary colour").
				Description("Hex or rgb(), e.g. #043666").
				Value(&v.Primary).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("primary colour is required")
					}
					return colorValidator(s)
				}),
			huh.NewInput().
				Title("Secondary colour").
				Description("Leave empty for white.").
				Value(&v.Secondary).
				Validate(colorValidator),
			huh.NewSelect[string]().
				Title("Default palette").
				Options(kindOptions...).
				Value(&v.Palette),
			huh.NewInput().
				Title("Font family").
				Description("Leave empty to use the configured default.").
				Value(&v.Fonts.Title),
		),
	)
	if os.Getenv("ACCESSIBLE") != "" {
		form.WithAccessible(true)
	}
	if err := form.Run(); err != nil {
		return err
	}
	v.Fonts.Body = v.Fonts.Title
	return nil
}

func validateThemeInput(v *theme.Variant) error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("theme name is required")
	}
	if strings.ContainsAny(v.Name, `/\`) {
		return fmt.Errorf("theme name %q must not contain path separators", v.Name)
	}
	if _, err := parseColorArg("primary", v.Primary); err != nil {
		return err
	}
	if v.Secondary != "" {
		if _, err := parseColorArg("secondary", v.Secondary); err != nil {
			return err
		}
	}
	if v.Palette != "" {
		kind, ok := palette.ParseKind(v.Palette)
		if !ok {
			return fmt.Errorf("unknown palette %q", v.Palette)
		}
		v.Palette = string(kind)
	}
	return nil
}

func writeTheme(dir string, v *theme.Variant, force bool) (string, error) {
	data, err := theme.Marshal(v)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, strings.ToLower(v.Name)+".yaml")
	if _, err := os.Stat(path); err == nil && !force {
		return "", &PreflightError{
			Message:  fmt.Sprintf("theme file %s already exists", path),
			Hint:     "use --force to overwrite",
			NextStep: "fixtura theme show " + v.Name,
		}
	}

	step := startProgress("Writing theme")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		step.Fail(err)
		return "", fmt.Errorf("failed to create theme directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		step.Fail(err)
		return "", fmt.Errorf("failed to write theme: %w", err)
	}
	step.Done()
	return path, nil
}
