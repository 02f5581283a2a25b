package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes fixtura with args in an isolated home and project.
func runCLI(t *testing.T, env *testEnv, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	appConfig = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--project-dir", env.project, "--no-progress", "--no-color"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

type testEnv struct {
	home    string
	project string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{home: t.TempDir(), project: t.TempDir()}
	t.Setenv("HOME", env.home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(env.home, ".local", "share"))
	t.Setenv("FIXTURA_NON_INTERACTIVE", "1")
	return env
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), "output: %s", out)
	return v
}

func TestProgressCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := runCLI(t, env, "progress", "--start", "10", "--end", "40", "--json", "0", "10", "25", "40", "50")
	require.NoError(t, err)

	rows := decode[[]struct {
		Frame    int     `json:"frame"`
		Progress float64 `json:"progress"`
	}](t, out)
	require.Len(t, rows, 5)
	assert.Equal(t, 0.0, rows[0].Progress)
	assert.Equal(t, 0.0, rows[1].Progress)
	assert.InDelta(t, 0.5, rows[2].Progress, 1e-9)
	assert.Equal(t, 1.0, rows[3].Progress)
	assert.Equal(t, 1.0, rows[4].Progress)
}

func TestProgressCommandRangeTable(t *testing.T) {
	env := newTestEnv(t)

	out, err := runCLI(t, env, "progress", "--end", "10", "--easing", "easeInOut", "--from", "0", "--to", "10", "--step", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "FRAME")
	assert.Contains(t, out, "easeInOut")
}

func TestProgressCommandRejectsUnknownEasing(t *testing.T) {
	env := newTestEnv(t)

	_, err := runCLI(t, env, "progress", "--easing", "wobble", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown easing")
}

func TestStyleCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := runCLI(t, env, "style", "--kind", "fadeInUp", "--duration", "20", "--distance", "30", "--json", "0", "20")
	require.NoError(t, err)

	rows := decode[[]struct {
		Frame int `json:"frame"`
		Style struct {
			Opacity    float64 `json:"opacity"`
			TranslateY float64 `json:"translate_y_px"`
		} `json:"style"`
		CSS string `json:"css"`
	}](t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, 0.0, rows[0].Style.Opacity)
	assert.Equal(t, 30.0, rows[0].Style.TranslateY)
	assert.Equal(t, 1.0, rows[1].Style.Opacity)
	assert.Equal(t, "opacity: 1.000", rows[1].CSS)
}

func TestStaggerCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := runCLI(t, env, "stagger", "Gold Coast Premier", "--split", "words", "--duration", "8", "--stagger", "4", "--frame", "4", "--json")
	require.NoError(t, err)

	rows := decode[[]struct {
		Index  int    `json:"index"`
		Text   string `json:"text"`
		Window struct {
			Start int `json:"start"`
			End   int `json:"end"`
		} `json:"window"`
		Progress *float64 `json:"progress"`
	}](t, out)
	require.Len(t, rows, 3)
	assert.Equal(t, "Premier", rows[2].Text)
	assert.Equal(t, 8, rows[2].Window.Start)
	assert.Equal(t, 16, rows[2].Window.End)
	require.NotNil(t, rows[1].Progress)
	assert.Equal(t, 0.0, *rows[1].Progress)
	assert.Greater(t, *rows[0].Progress, 0.0)
}

func TestPaletteCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := runCLI(t, env, "palette", "#043666", "#F5B700", "--json")
	require.NoError(t, err)
	result := decode[map[string]any](t, out)
	assert.Len(t, result["fingerprint"], 16)
	assert.Len(t, result["palettes"], 8)

	again, err := runCLI(t, env, "palette", "#043666", "#F5B700", "--json")
	require.NoError(t, err)
	assert.Equal(t, result["fingerprint"], decode[map[string]any](t, again)["fingerprint"])

	table, err := runCLI(t, env, "palette", "#043666", "#F5B700")
	require.NoError(t, err)
	assert.Contains(t, table, "monochromatic")

	single, err := runCLI(t, env, "palette", "--theme", "basic", "--kind", "dark")
	require.NoError(t, err)
	assert.Contains(t, single, "container.highlight")
	assert.Contains(t, single, "dark palette, theme Basic")

	_, err = runCLI(t, env, "palette", "not-a-colour")
	require.Error(t, err)
}

func TestContrastCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := runCLI(t, env, "contrast", "#000000", "#FFFFFF", "--json")
	require.NoError(t, err)
	rows := decode[[]map[string]any](t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, "#FFFFFF", rows[0]["safe_color"])
	assert.Equal(t, "#000000", rows[1]["safe_color"])
	assert.Equal(t, 21.0, rows[0]["contrast_ratio"])
	assert.Equal(t, true, rows[0]["is_accessible"])

	strict, err := runCLI(t, env, "contrast", "#808080", "--target", "7", "--json")
	require.NoError(t, err)
	adjusted := decode[[]map[string]any](t, strict)
	assert.NotNil(t, adjusted[0]["adjusted_color"])

	resolved, err := runCLI(t, env, "contrast", "--on", "#FFFFFF", "--preferred", "#FFFF00", "--json")
	require.NoError(t, err)
	assert.Equal(t, "#000000", decode[map[string]any](t, resolved)["text"])

	_, err = runCLI(t, env, "contrast")
	require.Error(t, err)
}

func TestThemeCommands(t *testing.T) {
	env := newTestEnv(t)

	out, err := runCLI(t, env, "theme", "list", "--json")
	require.NoError(t, err)
	themes := decode[[]map[string]any](t, out)
	names := make([]string, 0, len(themes))
	for _, th := range themes {
		names = append(names, th["name"].(string))
	}
	assert.Contains(t, names, "Basic")
	assert.Contains(t, names, "Mudgeeraba")

	out, err = runCLI(t, env, "theme", "init", "--name", "Burleigh", "--primary", "#00205B", "--secondary", "#FFC72C", "--palette", "dark")
	require.NoError(t, err)
	path := filepath.Join(env.project, ".fixtura", "themes", "burleigh.yaml")
	assert.Contains(t, out, path)
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	_, err = runCLI(t, env, "theme", "init", "--name", "Burleigh", "--primary", "#00205B")
	require.Error(t, err, "existing theme needs --force")

	out, err = runCLI(t, env, "theme", "show", "burleigh", "--json")
	require.NoError(t, err)
	shown := decode[map[string]any](t, out)
	assert.Equal(t, "sans-serif", shown["title_font"])
	pal := shown["palette"].(map[string]any)
	assert.Equal(t, "dark", pal["name"])

	_, err = runCLI(t, env, "theme", "init")
	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)

	_, err = runCLI(t, env, "theme", "show", "nope")
	require.ErrorAs(t, err, &preflight)
}

func TestCompositionCommands(t *testing.T) {
	env := newTestEnv(t)

	out, err := runCLI(t, env, "composition", "list")
	require.NoError(t, err)
	for _, name := range []string{"ladder", "results", "performances", "roster"} {
		assert.Contains(t, out, name)
	}

	out, err = runCLI(t, env, "composition", "show", "ladder")
	require.NoError(t, err)
	assert.Contains(t, out, "fadeInLeft")
	assert.Contains(t, out, "Row template:")

	_, err = runCLI(t, env, "composition", "show", "scoreboard")
	require.Error(t, err)
}

func TestPlanCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := runCLI(t, env, "plan", "ladder", "--theme", "mudgeeraba", "--frame", "0", "--frame", "100", "--json")
	require.NoError(t, err)
	plans := decode[[]struct {
		Frame   int    `json:"frame"`
		Palette string `json:"palette"`
		Rows    []struct {
			Text  string `json:"text"`
			Style struct {
				Opacity float64 `json:"opacity"`
			} `json:"style"`
		} `json:"rows"`
	}](t, out)
	require.Len(t, plans, 2)
	assert.Equal(t, "primary", plans[0].Palette)
	assert.Equal(t, 0.0, plans[0].Rows[0].Style.Opacity)
	assert.Equal(t, 1.0, plans[1].Rows[0].Style.Opacity)

	dataPath := filepath.Join(env.project, "round.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"title":{"round":"Final"},"rows":[
		{"home":"Burleigh","home_runs":150,"home_wickets":3,"home_balls":118,
		 "away":"Coomera","away_runs":149,"away_wickets":10,"away_balls":120}]}`), 0o644))

	out, err = runCLI(t, env, "plan", "results", "--data", dataPath, "--palette", "triadic", "--frame", "30", "--css")
	require.NoError(t, err)
	assert.Contains(t, out, "/* results frame 30 */")
	assert.Contains(t, out, ".row-1 {")

	out, err = runCLI(t, env, "plan", "roster", "--from", "0", "--to", "60", "--step", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "roster frame 60")

	_, err = runCLI(t, env, "plan", "ladder", "--palette", "neon", "--frame", "0")
	require.Error(t, err)
}

func TestPlanUsesCompositionFontAndConfiguredFPS(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("FIXTURA_RENDER_FPS", "25")

	dir := filepath.Join(env.project, ".fixtura", "compositions")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scores.yaml"), []byte(`
name: scores
duration: 100
font: Oswald
title:
  text: Scores
  animation:
    kind: fadeIn
    duration: 10
rows:
  template: '{{ .team }} {{ .runs }}'
  animation:
    kind: fadeInUp
    duration: 10
sample:
  rows:
    - team: Nerang
`), 0o644))

	out, err := runCLI(t, env, "plan", "scores", "--frame", "20", "--css")
	require.NoError(t, err)
	assert.Contains(t, out, "font-family: Oswald")
	assert.NotContains(t, out, "Heebo")
	assert.NotContains(t, out, "<no value>")

	out, err = runCLI(t, env, "composition", "show", "scores")
	require.NoError(t, err)
	assert.Contains(t, out, "100 frames at 25 fps (4.0s)")

	out, err = runCLI(t, env, "plan", "ladder", "--frame", "0", "--css")
	require.NoError(t, err)
	assert.Contains(t, out, "font-family: Heebo", "theme font applies when the composition sets none")
}

func TestPlanRecordAndHistory(t *testing.T) {
	env := newTestEnv(t)

	_, err := runCLI(t, env, "plan", "ladder", "--frame", "0", "--frame", "45", "--record", "--include-plan", "--json")
	require.NoError(t, err)

	out, err := runCLI(t, env, "history", "list", "--json")
	require.NoError(t, err)
	renders := decode[[]map[string]any](t, out)
	require.Len(t, renders, 1)
	assert.Equal(t, "ladder", renders[0]["composition"])
	assert.Equal(t, "Basic", renders[0]["theme"])
	assert.Equal(t, 2.0, renders[0]["frames"])
	assert.Equal(t, 45.0, renders[0]["last_frame"])
	id := renders[0]["id"].(string)

	out, err = runCLI(t, env, "history", "show", id[:8])
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "Plan:")

	table, err := runCLI(t, env, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, table, id[:8])

	out, err = runCLI(t, env, "history", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted render")

	_, err = runCLI(t, env, "history", "show", id)
	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
}

func TestPreviewRequiresTerminal(t *testing.T) {
	env := newTestEnv(t)

	_, err := runCLI(t, env, "preview", "ladder")
	var preflight *PreflightError
	require.ErrorAs(t, err, &preflight)
}

func TestJSONFlagsAreExclusive(t *testing.T) {
	env := newTestEnv(t)

	_, err := runCLI(t, env, "progress", "--json", "--jsonl", "1")
	require.Error(t, err)
}

func TestWriteOutputJSONL(t *testing.T) {
	jsonlOutput = true
	defer func() { jsonlOutput = false }()

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, []int{1, 2, 3}))
	assert.Equal(t, "1\n2\n3\n", buf.String())
}

func TestFrameRange(t *testing.T) {
	frames, err := frameRange(0, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 10}, frames)

	_, err = frameRange(0, 10, 0)
	require.Error(t, err)
	_, err = frameRange(10, 0, 1)
	require.Error(t, err)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0.5", formatFloat(0.5))
	assert.Equal(t, "1", formatFloat(1))
	assert.Equal(t, "0", formatFloat(-0.00001))
	assert.Equal(t, "-12.25", formatFloat(-12.25))
}
