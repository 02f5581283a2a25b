// Package cli provides lookups shared by commands.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/composition"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/db"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/logging"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/theme"
)

func loadThemes() (*theme.Registry, error) {
	registry, err := theme.LoadRegistry(resolvedProjectDir(), logging.Component("theme"))
	if err != nil {
		return nil, fmt.Errorf("failed to load themes: %w", err)
	}
	return registry, nil
}

// findTheme returns the named theme, or the configured default when name is
// empty.
func findTheme(name string) (*theme.Variant, error) {
	if strings.TrimSpace(name) == "" {
		name = resolvedConfig().Render.Theme
	}
	registry, err := loadThemes()
	if err != nil {
		return nil, err
	}
	variant, err := registry.Find(name)
	if err != nil {
		return nil, &PreflightError{
			Message:  err.Error(),
			Hint:     "available themes: " + strings.Join(registry.Names(), ", "),
			NextStep: "fixtura theme list",
		}
	}
	return variant, nil
}

func loadCompositions() ([]*composition.Composition, error) {
	comps, err := composition.LoadFromSearchPaths(resolvedProjectDir())
	if err != nil {
		return nil, fmt.Errorf("failed to load compositions: %w", err)
	}
	fps := resolvedConfig().Render.FPS
	for _, c := range comps {
		c.UseDefaultFPS(fps)
	}
	return comps, nil
}

func findComposition(name string) (*composition.Composition, error) {
	comps, err := loadCompositions()
	if err != nil {
		return nil, err
	}
	comp, err := composition.Find(comps, name)
	if err != nil {
		names := make([]string, 0, len(comps))
		for _, c := range comps {
			names = append(names, c.Name)
		}
		return nil, &PreflightError{
			Message:  err.Error(),
			Hint:     "available compositions: " + strings.Join(names, ", "),
			NextStep: "fixtura composition list",
		}
	}
	return comp, nil
}

// choosePaletteKind picks the first set value: flag, composition, theme,
// config.
func choosePaletteKind(flag string, comp *composition.Composition, variant *theme.Variant) (palette.Kind, error) {
	candidates := []string{flag}
	if comp != nil {
		candidates = append(candidates, comp.Palette)
	}
	if variant != nil {
		candidates = append(candidates, variant.Palette)
	}
	candidates = append(candidates, resolvedConfig().Render.Palette)

	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		kind, ok := palette.ParseKind(c)
		if !ok {
			return "", fmt.Errorf("unknown palette %q", c)
		}
		return kind, nil
	}
	return palette.KindPrimary, nil
}

func parseColorArg(name, value string) (palette.Color, error) {
	c, err := palette.ParseColor(value)
	if err != nil {
		return palette.Color{}, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

func openDatabase() (*db.DB, error) {
	cfg := resolvedConfig()
	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}
