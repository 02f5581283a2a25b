// Package cli provides frame interpolation commands.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/motion"
)

var (
	frameFrom int
	frameTo   int
	frameStep int

	progressStart  int
	progressEnd    int
	progressEasing string

	styleKind      string
	styleDelay     int
	styleDuration  int
	styleEasing    string
	styleDistance  float64
	styleFromScale float64
	styleFPS       float64
	styleMass      float64
	styleStiffness float64
	styleDamping   float64

	staggerSplit    string
	staggerDelay    int
	staggerDuration int
	staggerEach     int
	staggerEasing   string
	staggerFrame    int
)

func init() {
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(styleCmd)
	rootCmd.AddCommand(staggerCmd)

	for _, cmd := range []*cobra.Command{progressCmd, styleCmd} {
		cmd.Flags().IntVar(&frameFrom, "from", 0, "first frame when no frames are given")
		cmd.Flags().IntVar(&frameTo, "to", 30, "last frame when no frames are given")
		cmd.Flags().IntVar(&frameStep, "step", 5, "frame step when no frames are given")
	}

	progressCmd.Flags().IntVar(&progressStart, "start", 0, "window start frame")
	progressCmd.Flags().IntVar(&progressEnd, "end", 30, "window end frame")
	progressCmd.Flags().StringVar(&progressEasing, "easing", "linear", "easing curve")

	styleCmd.Flags().StringVar(&styleKind, "kind", "fadeIn", "animation kind")
	styleCmd.Flags().IntVar(&styleDelay, "delay", 0, "delay in frames")
	styleCmd.Flags().IntVar(&styleDuration, "duration", 20, "duration in frames")
	styleCmd.Flags().StringVar(&styleEasing, "easing", "", "easing curve (default depends on kind)")
	styleCmd.Flags().Float64Var(&styleDistance, "distance", 0, "slide distance in px (default 20)")
	styleCmd.Flags().Float64Var(&styleFromScale, "from-scale", 0, "starting scale for scale kinds")
	styleCmd.Flags().Float64Var(&styleFPS, "fps", 0, "frames per second for spring kinds (default from config)")
	styleCmd.Flags().Float64Var(&styleMass, "mass", 0, "spring mass")
	styleCmd.Flags().Float64Var(&styleStiffness, "stiffness", 0, "spring stiffness")
	styleCmd.Flags().Float64Var(&styleDamping, "damping", 0, "spring damping")

	staggerCmd.Flags().StringVar(&staggerSplit, "split", string(motion.ByChar), "split by chars or words")
	staggerCmd.Flags().IntVar(&staggerDelay, "delay", 0, "delay of the first token in frames")
	staggerCmd.Flags().IntVar(&staggerDuration, "duration", 10, "duration of each token in frames")
	staggerCmd.Flags().IntVar(&staggerEach, "stagger", 2, "frames between token starts")
	staggerCmd.Flags().StringVar(&staggerEasing, "easing", "easeOut", "easing curve")
	staggerCmd.Flags().IntVar(&staggerFrame, "frame", -1, "evaluate progress at this frame")
}

var progressCmd = &cobra.Command{
	Use:   "progress [frame...]",
	Short: "Evaluate eased progress for an animation window",
	Long: `Map frames onto [0,1] across a start/end window and apply an easing curve.

Frames before the window give 0, frames at or after the end give 1.`,
	Example: `  fixtura progress --start 10 --end 40 --easing easeOut 0 10 25 40
  fixtura progress --end 60 --easing bounce --from 0 --to 60 --step 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		easing, ok := motion.ParseEasing(progressEasing)
		if !ok {
			return fmt.Errorf("unknown easing %q (expected one of %v)", progressEasing, motion.Easings)
		}
		frames, err := framesFromArgs(args)
		if err != nil {
			return err
		}

		window := motion.NewWindow(progressStart, progressEnd, easing)
		type row struct {
			Frame    int     `json:"frame"`
			Progress float64 `json:"progress"`
		}
		rows := make([]row, 0, len(frames))
		for _, f := range frames {
			rows = append(rows, row{Frame: f, Progress: motion.ComputeProgress(f, window)})
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, rows)
		}

		tw := newTable(out, "frame", "progress")
		alignRight(tw, 1, 2)
		for _, r := range rows {
			tw.AppendRow([]any{r.Frame, formatFloat(r.Progress)})
		}
		tw.SetCaption("window %d-%d, easing %s", window.Start, window.End, window.Easing)
		tw.Render()
		return nil
	},
}

var styleCmd = &cobra.Command{
	Use:   "style [frame...]",
	Short: "Evaluate an animation descriptor to per-frame styles",
	Long: `Evaluate an animation kind at each frame and print the resulting opacity,
translation, scale and clip.

Spring kinds (springFadeIn, springScale) ignore --duration and simulate a
damped spring from --delay.`,
	Example: `  fixtura style --kind fadeInUp --delay 5 --duration 20 0 5 15 25
  fixtura style --kind springScale --stiffness 180 --damping 12 --from 0 --to 45 --step 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		desc := motion.Descriptor{
			Kind:     motion.Kind(styleKind),
			Delay:    styleDelay,
			Duration: styleDuration,
			Easing:   motion.Easing(styleEasing),
			Params:   motion.Params{Distance: styleDistance, FromScale: styleFromScale},
		}
		if styleMass > 0 || styleStiffness > 0 || styleDamping > 0 {
			desc.Spring = &motion.SpringConfig{Mass: styleMass, Stiffness: styleStiffness, Damping: styleDamping}
		}
		if err := desc.Normalize(); err != nil {
			return err
		}

		fps := styleFPS
		if fps <= 0 {
			fps = float64(resolvedConfig().Render.FPS)
		}

		frames, err := framesFromArgs(args)
		if err != nil {
			return err
		}

		type row struct {
			Frame    int          `json:"frame"`
			Progress float64      `json:"progress"`
			Style    motion.Style `json:"style"`
			CSS      string       `json:"css"`
		}
		rows := make([]row, 0, len(frames))
		for _, f := range frames {
			s := desc.Evaluate(f, fps)
			rows = append(rows, row{Frame: f, Progress: desc.Progress(f, fps), Style: s, CSS: s.CSS()})
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, rows)
		}

		tw := newTable(out, "frame", "progress", "opacity", "x", "y", "scale", "clip")
		alignRight(tw, 1, 2, 3, 4, 5, 6, 7)
		for _, r := range rows {
			tw.AppendRow([]any{
				r.Frame,
				formatFloat(r.Progress),
				formatFloat(r.Style.Opacity),
				formatFloat(r.Style.TranslateX),
				formatFloat(r.Style.TranslateY),
				formatFloat(r.Style.Scale),
				formatFloat(r.Style.ClipRight) + "%",
			})
		}
		tw.SetCaption("%s, easing %s", desc.Kind, desc.Easing)
		tw.Render()
		return nil
	},
}

var staggerCmd = &cobra.Command{
	Use:   "stagger <text>",
	Short: "Split text into staggered tokens",
	Long: `Split text by character or word and give each token its own window,
starting --stagger frames after the previous one.`,
	Example: `  fixtura stagger "Mudgeeraba Nerang" --split words --stagger 4 --frame 6`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := motion.SplitMode(staggerSplit)
		if mode != motion.ByChar && mode != motion.ByWord {
			return fmt.Errorf("unknown split %q (expected chars or words)", staggerSplit)
		}
		easing, ok := motion.ParseEasing(staggerEasing)
		if !ok {
			return fmt.Errorf("unknown easing %q", staggerEasing)
		}
		if staggerDuration < 0 || staggerEach < 0 {
			return fmt.Errorf("duration and stagger must not be negative")
		}

		base := motion.WindowFor(staggerDelay, staggerDuration, easing)
		tokens := motion.Stagger(motion.SplitTokens(args[0], mode), base, staggerEach)

		type row struct {
			motion.Token
			Progress *float64 `json:"progress,omitempty"`
		}
		rows := make([]row, len(tokens))
		for i, tok := range tokens {
			rows[i] = row{Token: tok}
			if staggerFrame >= 0 {
				p := motion.ComputeProgress(staggerFrame, tok.Window)
				rows[i].Progress = &p
			}
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, rows)
		}

		headers := []string{"#", "token", "start", "end"}
		if staggerFrame >= 0 {
			headers = append(headers, "progress")
		}
		tw := newTable(out, headers...)
		alignRight(tw, 1, 3, 4, 5)
		for _, r := range rows {
			line := []any{r.Index, strconv.Quote(r.Text), r.Window.Start, r.Window.End}
			if r.Progress != nil {
				line = append(line, formatFloat(*r.Progress))
			}
			tw.AppendRow(line)
		}
		if staggerFrame >= 0 {
			tw.SetCaption("frame %d", staggerFrame)
		}
		tw.Render()
		return nil
	},
}

// framesFromArgs parses explicit frame numbers or falls back to the
// --from/--to/--step range.
func framesFromArgs(args []string) ([]int, error) {
	if len(args) > 0 {
		frames := make([]int, 0, len(args))
		for _, arg := range args {
			f, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid frame %q: %w", arg, err)
			}
			frames = append(frames, f)
		}
		return frames, nil
	}
	return frameRange(frameFrom, frameTo, frameStep)
}

func frameRange(from, to, step int) ([]int, error) {
	if step <= 0 {
		return nil, fmt.Errorf("--step must be greater than 0")
	}
	if to < from {
		return nil, fmt.Errorf("--to (%d) must not be before --from (%d)", to, from)
	}
	frames := make([]int, 0, (to-from)/step+1)
	for f := from; f <= to; f += step {
		frames = append(frames, f)
	}
	return frames, nil
}
