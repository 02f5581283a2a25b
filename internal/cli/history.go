// Package cli provides render history commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/db"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/models"
)

var (
	historyComposition string
	historyTheme       string
	historySince       time.Duration
	historyLimit       int
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)

	historyListCmd.Flags().StringVar(&historyComposition, "composition", "", "only renders of this composition")
	historyListCmd.Flags().StringVar(&historyTheme, "theme", "", "only renders with this theme")
	historyListCmd.Flags().DurationVar(&historySince, "since", 0, "only renders newer than this (e.g. 24h)")
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum renders to show")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded renders",
	Long:  "Renders recorded with `fixtura plan --record` are kept in the local database.",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded renders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		q := models.RenderQuery{Limit: historyLimit}
		if historyComposition != "" {
			q.Composition = &historyComposition
		}
		if historyTheme != "" {
			q.Theme = &historyTheme
		}
		if historySince > 0 {
			since := time.Now().Add(-historySince)
			q.Since = &since
		}

		renders, err := db.NewRenderRepository(database).List(ctx, q)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, renders)
		}

		if len(renders) == 0 {
			fmt.Fprintln(out, "No renders recorded.")
			return nil
		}

		tw := newTable(out, "id", "composition", "theme", "palette", "frames", "fingerprint", "created")
		alignRight(tw, 5)
		for _, r := range renders {
			tw.AppendRow([]any{
				shortID(r.ID),
				r.Composition,
				r.Theme,
				r.Palette,
				fmt.Sprintf("%d (%d-%d)", r.Frames, r.FirstFrame, r.LastFrame),
				r.Fingerprint,
				humanize.Time(r.CreatedAt),
			})
		}
		tw.Render()
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recorded render",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		render, err := db.NewRenderRepository(database).Get(ctx, args[0])
		if err != nil {
			return historyLookupError(args[0], err)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, render)
		}

		fmt.Fprintf(out, "ID:          %s\n", render.ID)
		fmt.Fprintf(out, "Composition: %s\n", render.Composition)
		fmt.Fprintf(out, "Theme:       %s (%s palette)\n", render.Theme, render.Palette)
		fmt.Fprintf(out, "Frames:      %d planned, %d-%d at %d fps (%.1fs)\n",
			render.Frames, render.FirstFrame, render.LastFrame, render.FPS, render.Seconds())
		fmt.Fprintf(out, "Fingerprint: %s\n", render.Fingerprint)
		if render.DataSource != "" {
			fmt.Fprintf(out, "Data:        %s\n", render.DataSource)
		}
		fmt.Fprintf(out, "Created:     %s (%s)\n",
			render.CreatedAt.Local().Format(time.RFC1123), humanize.Time(render.CreatedAt))
		if len(render.Plan) > 0 {
			fmt.Fprintf(out, "Plan:        %s stored\n", humanize.Bytes(uint64(len(render.Plan))))
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded render",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		repo := db.NewRenderRepository(database)
		render, err := repo.Get(ctx, args[0])
		if err != nil {
			return historyLookupError(args[0], err)
		}
		if err := repo.Delete(ctx, render.ID); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, map[string]string{"deleted": render.ID})
		}
		fmt.Fprintf(out, "Deleted render %s\n", shortID(render.ID))
		return nil
	},
}

func historyLookupError(id string, err error) error {
	if errors.Is(err, db.ErrRenderNotFound) {
		return &PreflightError{
			Message:  fmt.Sprintf("render %q not found", id),
			NextStep: "fixtura history list",
		}
	}
	return err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
