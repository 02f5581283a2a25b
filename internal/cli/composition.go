// Package cli provides composition commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/composition"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/motion"
)

func init() {
	rootCmd.AddCommand(compositionCmd)
	compositionCmd.AddCommand(compositionListCmd)
	compositionCmd.AddCommand(compositionShowCmd)
}

var compositionCmd = &cobra.Command{
	Use:     "composition",
	Aliases: []string{"comp"},
	Short:   "Inspect composition layouts",
	Long: `Compositions describe a stats graphic: a title, templated rows and their
animations. They are loaded from <project>/.fixtura/compositions,
~/.config/fixtura/compositions, /usr/share/fixtura/compositions and the
built-in set.`,
}

var compositionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available compositions",
	RunE: func(cmd *cobra.Command, args []string) error {
		comps, err := loadCompositions()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, comps)
		}

		if len(comps) == 0 {
			fmt.Fprintln(out, "No compositions found.")
			return nil
		}

		tw := newTable(out, "name", "fps", "frames", "seconds", "palette", "source")
		alignRight(tw, 2, 3, 4)
		for _, c := range comps {
			tw.AppendRow([]any{c.Name, c.FPS, c.Duration, fmt.Sprintf("%.1f", c.Seconds()), c.Palette, c.Source})
		}
		tw.Render()
		return nil
	},
}

var compositionShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a composition's animations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		comp, err := findComposition(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, comp)
		}

		fmt.Fprintf(out, "%s", comp.Name)
		if comp.Description != "" {
			fmt.Fprintf(out, " - %s", comp.Description)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%d frames at %d fps (%.1fs), source %s\n\n", comp.Duration, comp.FPS, comp.Seconds(), comp.Source)

		tw := newTable(out, "element", "kind", "delay", "duration", "easing", "stagger")
		alignRight(tw, 3, 4, 6)
		appendAnimation := func(label string, d motion.Descriptor) {
			tw.AppendRow([]any{label, d.Kind, d.Delay, d.Duration, d.Easing, d.Stagger})
		}
		appendAnimation(titleLabel(comp), comp.Title.Animation)
		appendAnimation("rows", comp.Rows.Animation)
		if comp.Exit != nil {
			appendAnimation("exit", *comp.Exit)
		}
		tw.Render()

		fmt.Fprintf(out, "\nRow template: %s\n", comp.Rows.Template)
		if comp.Rows.MaxRows > 0 {
			fmt.Fprintf(out, "Max rows: %d\n", comp.Rows.MaxRows)
		}
		if comp.Rows.Highlight != "" {
			fmt.Fprintf(out, "Highlight field: %s\n", comp.Rows.Highlight)
		}
		return nil
	},
}

func titleLabel(comp *composition.Composition) string {
	if comp.Title.Split != "" {
		return fmt.Sprintf("title (%s)", comp.Title.Split)
	}
	return "title"
}
