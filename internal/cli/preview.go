// Package cli provides the terminal preview command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/logging"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/preview"
)

var (
	previewTheme   string
	previewPalette string
	previewData    string
	previewSpeed   float64
	previewLoop    bool
	previewPaused  bool
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewTheme, "theme", "", "theme name (default from config)")
	previewCmd.Flags().StringVar(&previewPalette, "palette", "", "palette kind")
	previewCmd.Flags().StringVar(&previewData, "data", "", "JSON or YAML file with title and rows")
	previewCmd.Flags().Float64Var(&previewSpeed, "speed", 0, "playback speed (default from config)")
	previewCmd.Flags().BoolVar(&previewLoop, "loop", false, "restart after the last frame")
	previewCmd.Flags().BoolVar(&previewPaused, "paused", false, "start paused on the first frame")
}

var previewCmd = &cobra.Command{
	Use:   "preview <composition>",
	Short: "Play a composition in the terminal",
	Long: `Play a composition frame by frame in the terminal using its theme colours.

Keys: space play/pause, left/right step, r restart, end last frame, o loop, q quit.
Opacity is approximated by blending text towards its background.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsNonInteractive() {
			return &PreflightError{
				Message:  "preview requires an interactive terminal",
				Hint:     "use plan for non-interactive output",
				NextStep: "fixtura plan " + args[0],
			}
		}

		setup, err := preparePlan(args[0], previewTheme, previewPalette, previewData)
		if err != nil {
			return err
		}

		speed := previewSpeed
		if speed <= 0 {
			speed = resolvedConfig().Preview.Speed
		}

		return preview.Run(setup.planner, preview.Options{
			Speed:     speed,
			Loop:      previewLoop,
			Paused:    previewPaused,
			ThemeName: setup.variant.Name,
			Logger:    logging.Component("preview"),
		})
	},
}
