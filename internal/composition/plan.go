package composition

import (
	"fmt"
	"strings"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/labels"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/motion"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
)

// FramePlan is the resolved state of every element at one frame.
type FramePlan struct {
	Composition string        `json:"composition"`
	Frame       int           `json:"frame"`
	Palette     palette.Kind  `json:"palette"`
	Background  palette.Color `json:"background"`
	Title       ElementPlan   `json:"title"`
	Rows        []ElementPlan `json:"rows"`
}

// ElementPlan is one element's text, colours and style at a frame.
type ElementPlan struct {
	Index      int              `json:"index"`
	Text       string           `json:"text"`
	Style      motion.Style     `json:"style"`
	Background palette.Color    `json:"background"`
	Color      palette.Color    `json:"color"`
	Font       string           `json:"font,omitempty"`
	Highlight  bool             `json:"highlight,omitempty"`
	Split      motion.SplitMode `json:"split,omitempty"`
	Tokens     []TokenPlan      `json:"tokens,omitempty"`
}

// TokenPlan is one staggered piece of a split element.
type TokenPlan struct {
	Text  string       `json:"text"`
	Style motion.Style `json:"style"`
}

// Planner holds a composition with its labels rendered and colours chosen,
// so planning a frame is pure arithmetic.
type Planner struct {
	comp    *Composition
	palette palette.DesignPalette
	fps     float64

	title     string
	rows      []string
	highlight []bool

	titleFont string
	bodyFont  string
}

// NewPlanner renders the title and row labels from data.
func NewPlanner(comp *Composition, p palette.DesignPalette, data Data) (*Planner, error) {
	if comp == nil {
		return nil, fmt.Errorf("composition is required")
	}

	title, err := labels.Render(comp.Title.Text, data.Title)
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	rowTmpl, err := labels.Parse(comp.Name+"/rows", comp.Rows.Template)
	if err != nil {
		return nil, err
	}

	rows := data.Rows
	if comp.Rows.MaxRows > 0 && len(rows) > comp.Rows.MaxRows {
		rows = rows[:comp.Rows.MaxRows]
	}

	planner := &Planner{
		comp:      comp,
		palette:   p,
		fps:       float64(comp.FPS),
		title:     title,
		rows:      make([]string, 0, len(rows)),
		highlight: make([]bool, 0, len(rows)),
		titleFont: comp.Font,
		bodyFont:  comp.Font,
	}
	if planner.fps <= 0 {
		planner.fps = DefaultFPS
	}

	for i, row := range rows {
		text, err := rowTmpl.Render(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		planner.rows = append(planner.rows, text)
		planner.highlight = append(planner.highlight, truthy(row[comp.Rows.Highlight]))
	}

	return planner, nil
}

// Composition returns the planned composition.
func (p *Planner) Composition() *Composition {
	return p.comp
}

// Palette returns the palette the planner colours with.
func (p *Planner) Palette() palette.DesignPalette {
	return p.palette
}

// WithFonts sets the resolved title and body font families. Empty values
// keep the composition's own font.
func (p *Planner) WithFonts(title, body string) *Planner {
	if title = strings.TrimSpace(title); title != "" {
		p.titleFont = title
	}
	if body = strings.TrimSpace(body); body != "" {
		p.bodyFont = body
	}
	return p
}

// RowCount is the number of planned rows.
func (p *Planner) RowCount() int {
	return len(p.rows)
}

// Plan resolves every element at frame.
func (p *Planner) Plan(frame int) FramePlan {
	exit := motion.Identity
	if p.comp.Exit != nil {
		exit = p.comp.Exit.Evaluate(frame, p.fps)
	}

	bg := p.palette.Background.Main
	plan := FramePlan{
		Composition: p.comp.Name,
		Frame:       frame,
		Palette:     p.palette.Name,
		Background:  bg,
		Title:       p.planTitle(frame, exit),
		Rows:        make([]ElementPlan, len(p.rows)),
	}

	for i, text := range p.rows {
		rowBg := p.palette.Container.Primary
		if i%2 == 1 {
			rowBg = p.palette.Container.Secondary
		}
		color := palette.ResolveContrastSafeText(rowBg, p.palette.Text.OnContainer)
		if p.highlight[i] {
			rowBg = p.palette.Container.Highlight
			color = p.palette.Text.OnHighlight
		}

		plan.Rows[i] = ElementPlan{
			Index:      i,
			Text:       text,
			Style:      p.comp.Rows.Animation.ForIndex(i).Evaluate(frame, p.fps).Combine(exit),
			Background: rowBg,
			Color:      color,
			Font:       p.bodyFont,
			Highlight:  p.highlight[i],
		}
	}

	return plan
}

func (p *Planner) planTitle(frame int, exit motion.Style) ElementPlan {
	anim := p.comp.Title.Animation
	el := ElementPlan{
		Text:       p.title,
		Background: p.palette.Background.Main,
		Color:      p.palette.Text.Title,
		Font:       p.titleFont,
	}

	if p.comp.Title.Split == "" {
		el.Style = anim.Evaluate(frame, p.fps).Combine(exit)
		return el
	}

	tokens := motion.SplitTokens(p.title, p.comp.Title.Split)
	el.Style = exit
	el.Split = p.comp.Title.Split
	el.Tokens = make([]TokenPlan, len(tokens))
	for i, tok := range tokens {
		el.Tokens[i] = TokenPlan{
			Text:  tok,
			Style: anim.ForIndex(i).Evaluate(frame, p.fps),
		}
	}
	return el
}

// Frames plans frames from..to inclusive in steps of step.
func (p *Planner) Frames(from, to, step int) []FramePlan {
	if step <= 0 {
		step = 1
	}
	if to < from {
		return nil
	}
	plans := make([]FramePlan, 0, (to-from)/step+1)
	for f := from; f <= to; f += step {
		plans = append(plans, p.Plan(f))
	}
	return plans
}

// SettledFrame is the first frame at which every entrance animation has
// finished. Spring kinds are treated as settled one second after they start.
func (p *Planner) SettledFrame() int {
	end := settleFrame(p.comp.Title.Animation, p.fps)
	if p.comp.Title.Split != "" {
		n := len(motion.SplitTokens(p.title, p.comp.Title.Split))
		if n > 0 {
			end = settleFrame(p.comp.Title.Animation.ForIndex(n-1), p.fps)
		}
	}
	if n := len(p.rows); n > 0 {
		if rowEnd := settleFrame(p.comp.Rows.Animation.ForIndex(n-1), p.fps); rowEnd > end {
			end = rowEnd
		}
	}
	return end
}

func settleFrame(d motion.Descriptor, fps float64) int {
	if d.Kind.IsSpring() {
		return d.Delay + int(fps)
	}
	return d.EndFrame()
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "yes" || s == "1"
	case int:
		return t != 0
	case float64:
		return t != 0
	}
	return false
}
