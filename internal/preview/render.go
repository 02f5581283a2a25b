package preview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/composition"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/motion"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
)

// pxPerCell converts pixel offsets to terminal columns.
const pxPerCell = 8

// fade approximates opacity by blending fg toward bg.
func fade(fg, bg palette.Color, opacity float64) palette.Color {
	return bg.Mix(fg, opacity)
}

// indent is the left padding for a horizontal offset. Offsets to the left
// are shown as no padding.
func indent(s motion.Style) int {
	cells := int(math.Round(s.TranslateX / pxPerCell))
	if cells < 0 {
		return 0
	}
	return cells
}

// clip applies the typewriter clip to text.
func clip(text string, s motion.Style) string {
	if s.ClipRight <= 0 {
		return text
	}
	return motion.VisibleText(text, 1-s.ClipRight/100)
}

func colored(fg, bg palette.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
}

// renderElement draws one planned element in a block of width cells.
func renderElement(el composition.ElementPlan, width int, bold bool) string {
	style := colored(fade(el.Color, el.Background, el.Style.Opacity), el.Background).Bold(bold)

	var body string
	if len(el.Tokens) > 0 {
		body = renderTokens(el)
	} else {
		body = style.Render(clip(el.Text, el.Style))
	}

	pad := indent(el.Style)
	line := style.Render(strings.Repeat(" ", pad)) + body
	if width > 0 {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(el.Background.Hex())).
			Width(width).
			MaxWidth(width).
			Render(line)
	}
	return line
}

// renderTokens draws each staggered token with its own opacity. Word tokens
// are joined with a space.
func renderTokens(el composition.ElementPlan) string {
	sep := ""
	if el.Split == motion.ByWord {
		sep = " "
	}

	parts := make([]string, 0, len(el.Tokens))
	for _, tok := range el.Tokens {
		s := tok.Style.Combine(el.Style)
		fg := fade(el.Color, el.Background, s.Opacity)
		parts = append(parts, colored(fg, el.Background).Bold(true).Render(clip(tok.Text, s)))
	}
	return strings.Join(parts, colored(el.Color, el.Background).Render(sep))
}

// RenderFrame draws a whole frame plan as terminal text.
func RenderFrame(plan composition.FramePlan, width int) string {
	if width <= 0 {
		width = 60
	}
	screen := lipgloss.NewStyle().
		Background(lipgloss.Color(plan.Background.Hex())).
		Padding(1, 2)

	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	lines := []string{renderElement(plan.Title, inner, true), ""}
	for _, row := range plan.Rows {
		lines = append(lines, renderElement(row, inner, row.Highlight))
	}
	return screen.Render(strings.Join(lines, "\n"))
}
