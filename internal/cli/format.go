// Package cli provides display formatting helpers.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/theme"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

func formatPass(ok bool) string {
	if ok {
		return passStyle.Render("PASS")
	}
	return failStyle.Render("FAIL")
}

func formatRatio(r float64) string {
	return fmt.Sprintf("%.2f:1", r)
}

// swatch renders a coloured block unless output is plain.
func swatch(c palette.Color) string {
	if noColor {
		return c.CSS()
	}
	return theme.Swatch(c, 24)
}

func formatFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
