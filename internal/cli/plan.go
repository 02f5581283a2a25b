// Package cli provides composition planning commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/composition"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/db"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/labels"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/models"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/theme"
)

var (
	planTheme       string
	planPalette     string
	planData        string
	planFrames      []int
	planFrom        int
	planTo          int
	planStep        int
	planRecord      bool
	planIncludePlan bool
	planCSS         bool
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVar(&planTheme, "theme", "", "theme name (default from config)")
	planCmd.Flags().StringVar(&planPalette, "palette", "", "palette kind (default from composition, theme or config)")
	planCmd.Flags().StringVar(&planData, "data", "", "JSON or YAML file with title and rows (default sample data)")
	planCmd.Flags().IntSliceVar(&planFrames, "frame", nil, "frame to plan (repeatable)")
	planCmd.Flags().IntVar(&planFrom, "from", 0, "first frame of a range")
	planCmd.Flags().IntVar(&planTo, "to", -1, "last frame of a range (default last frame)")
	planCmd.Flags().IntVar(&planStep, "step", 0, "frame step of a range (default one second)")
	planCmd.Flags().BoolVar(&planRecord, "record", false, "store this plan in render history")
	planCmd.Flags().BoolVar(&planIncludePlan, "include-plan", false, "with --record, store the frame plans too")
	planCmd.Flags().BoolVar(&planCSS, "css", false, "print inline CSS per element instead of a table")
}

// planSetup is everything needed to plan one composition.
type planSetup struct {
	comp       *composition.Composition
	variant    *theme.Variant
	kind       palette.Kind
	set        palette.Set
	planner    *composition.Planner
	dataSource string
}

func preparePlan(compName, themeName, paletteFlag, dataPath string) (*planSetup, error) {
	comp, err := findComposition(compName)
	if err != nil {
		return nil, err
	}
	variant, err := findTheme(themeName)
	if err != nil {
		return nil, err
	}
	kind, err := choosePaletteKind(paletteFlag, comp, variant)
	if err != nil {
		return nil, err
	}

	data := comp.Sample
	dataSource := "sample"
	if dataPath != "" {
		data, err = composition.LoadData(dataPath)
		if err != nil {
			return nil, err
		}
		dataSource = dataPath
	}

	set := variant.Resolve().Set
	planner, err := composition.NewPlanner(comp, set.Palette(kind), data)
	if err != nil {
		return nil, fmt.Errorf("failed to plan %s: %w", comp.Name, err)
	}
	fontDefault := resolvedConfig().Render.FontFamily
	planner.WithFonts(variant.TitleFont(comp.Font, fontDefault), variant.BodyFont(comp.Font, fontDefault))

	return &planSetup{
		comp:       comp,
		variant:    variant,
		kind:       kind,
		set:        set,
		planner:    planner,
		dataSource: dataSource,
	}, nil
}

var planCmd = &cobra.Command{
	Use:   "plan <composition>",
	Short: "Compute per-frame styles and colours for a composition",
	Long: `Plan a composition with a theme and data: every element's text, style,
background and contrast-safe text colour at the requested frames.

Without --frame or a range, one frame per second is planned.`,
	Example: `  fixtura plan ladder --theme mudgeeraba --frame 0 --frame 30 --frame 90
  fixtura plan results --data round7.json --from 0 --to 60 --step 10 --json
  fixtura plan roster --palette dark --record`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setup, err := preparePlan(args[0], planTheme, planPalette, planData)
		if err != nil {
			return err
		}

		frames, err := planFrameList(cmd, setup.comp)
		if err != nil {
			return err
		}

		plans := make([]composition.FramePlan, 0, len(frames))
		for _, f := range frames {
			plans = append(plans, setup.planner.Plan(f))
		}

		out := cmd.OutOrStdout()
		if planRecord {
			render, err := recordPlan(commandContext(cmd), setup, frames, plans)
			if err != nil {
				return err
			}
			if !IsJSONOutput() && !IsJSONLOutput() {
				defer fmt.Fprintf(out, "\nRecorded render %s\n", shortID(render.ID))
			}
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, plans)
		}

		for i, plan := range plans {
			if i > 0 {
				fmt.Fprintln(out)
			}
			if planCSS {
				writePlanCSS(out, plan)
			} else {
				writePlanTable(out, plan)
			}
		}
		return nil
	},
}

func planFrameList(cmd *cobra.Command, comp *composition.Composition) ([]int, error) {
	if len(planFrames) > 0 {
		return planFrames, nil
	}
	to := planTo
	if !cmd.Flags().Changed("to") {
		to = comp.Duration - 1
	}
	step := planStep
	if !cmd.Flags().Changed("step") {
		step = comp.FPS
	}
	return frameRange(planFrom, to, step)
}

func writePlanTable(out io.Writer, plan composition.FramePlan) {
	tw := newTable(out, "element", "text", "opacity", "x", "y", "scale", "clip", "bg", "fg")
	alignRight(tw, 3, 4, 5, 6, 7)

	appendRow := func(label string, el composition.ElementPlan) {
		tw.AppendRow([]any{
			label,
			labels.Truncate(el.Text, 32),
			formatFloat(el.Style.Opacity),
			formatFloat(el.Style.TranslateX),
			formatFloat(el.Style.TranslateY),
			formatFloat(el.Style.Scale),
			formatFloat(el.Style.ClipRight) + "%",
			el.Background.Hex(),
			el.Color.Hex(),
		})
	}

	appendRow("title", plan.Title)
	for i, tok := range plan.Title.Tokens {
		tw.AppendRow([]any{
			fmt.Sprintf("  token %d", i),
			tok.Text,
			formatFloat(tok.Style.Opacity),
			formatFloat(tok.Style.TranslateX),
			formatFloat(tok.Style.TranslateY),
			formatFloat(tok.Style.Scale),
			formatFloat(tok.Style.ClipRight) + "%",
			"",
			"",
		})
	}
	for _, row := range plan.Rows {
		label := fmt.Sprintf("row %d", row.Index+1)
		if row.Highlight {
			label += " *"
		}
		appendRow(label, row)
	}
	tw.SetCaption("%s frame %d, %s palette, background %s", plan.Composition, plan.Frame, plan.Palette, plan.Background.Hex())
	tw.Render()
}

func writePlanCSS(out io.Writer, plan composition.FramePlan) {
	fmt.Fprintf(out, "/* %s frame %d */\n", plan.Composition, plan.Frame)
	fmt.Fprintf(out, ".title { %s; color: %s%s }\n", plan.Title.Style.CSS(), plan.Title.Color.CSS(), fontCSS(plan.Title.Font))
	for i, tok := range plan.Title.Tokens {
		fmt.Fprintf(out, ".title .t%d { %s }\n", i, tok.Style.CSS())
	}
	for _, row := range plan.Rows {
		fmt.Fprintf(out, ".row-%d { %s; background: %s; color: %s%s }\n",
			row.Index+1, row.Style.CSS(), row.Background.CSS(), row.Color.CSS(), fontCSS(row.Font))
	}
}

func fontCSS(family string) string {
	if family == "" {
		return ""
	}
	if strings.Contains(family, " ") && !strings.ContainsAny(family, `,"'`) {
		family = strconv.Quote(family)
	}
	return "; font-family: " + family
}

func recordPlan(ctx context.Context, setup *planSetup, frames []int, plans []composition.FramePlan) (*models.Render, error) {
	step := startProgress("Recording render")

	fingerprint, err := setup.set.Fingerprint()
	if err != nil {
		step.Fail(err)
		return nil, err
	}

	render := &models.Render{
		Composition: setup.comp.Name,
		Theme:       setup.variant.Name,
		Palette:     string(setup.kind),
		FPS:         setup.comp.FPS,
		Frames:      len(frames),
		FirstFrame:  frames[0],
		LastFrame:   frames[len(frames)-1],
		Fingerprint: fingerprint,
		DataSource:  setup.dataSource,
	}
	for _, f := range frames {
		render.FirstFrame = min(render.FirstFrame, f)
		render.LastFrame = max(render.LastFrame, f)
	}
	if planIncludePlan {
		raw, err := json.Marshal(plans)
		if err != nil {
			step.Fail(err)
			return nil, fmt.Errorf("failed to encode plan: %w", err)
		}
		render.Plan = raw
	}

	database, err := openDatabase()
	if err != nil {
		step.Fail(err)
		return nil, err
	}
	defer database.Close()

	if err := db.NewRenderRepository(database).Create(ctx, render); err != nil {
		step.Fail(err)
		return nil, err
	}
	step.Done()
	return render, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
