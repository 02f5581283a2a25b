package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
)

// Styles contains lipgloss styles derived from a design palette, for
// terminal previews.
type Styles struct {
	Palette   palette.DesignPalette
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Screen    lipgloss.Style
	Row       lipgloss.Style
	RowAlt    lipgloss.Style
	Highlight lipgloss.Style
}

func lg(c palette.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// BuildStyles converts a palette into lipgloss styles.
func BuildStyles(p palette.DesignPalette) Styles {
	bg := p.Background
	return Styles{
		Palette:   p,
		Title:     lipgloss.NewStyle().Foreground(lg(p.Text.Title)).Background(lg(bg.Main)).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lg(p.Text.Primary)).Background(lg(bg.Main)),
		Muted:     lipgloss.NewStyle().Foreground(lg(p.Text.Muted)).Background(lg(bg.Main)),
		Accent:    lipgloss.NewStyle().Foreground(lg(bg.Accent)),
		Screen:    lipgloss.NewStyle().Background(lg(bg.Main)).Padding(1, 2),
		Row:       lipgloss.NewStyle().Foreground(lg(p.Text.OnContainer)).Background(lg(p.Container.Primary)),
		RowAlt:    lipgloss.NewStyle().Foreground(lg(p.Text.OnContainer)).Background(lg(p.Container.Secondary)),
		Highlight: lipgloss.NewStyle().Foreground(lg(p.Text.OnHighlight)).Background(lg(p.Container.Highlight)).Bold(true),
	}
}

// Swatch renders a colour block labelled with its CSS value.
func Swatch(c palette.Color, width int) string {
	if width <= 0 {
		width = 12
	}
	return lipgloss.NewStyle().
		Background(lg(c)).
		Foreground(lg(palette.ReadableOn(c))).
		Width(width).
		Render(c.CSS())
}
