// Package preview plays a composition plan frame by frame in the terminal.
package preview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/composition"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/theme"
)

// Options configure a preview.
type Options struct {
	// Speed multiplies playback rate; 1 is real time.
	Speed float64
	// Loop restarts playback after the last frame.
	Loop bool
	// Paused starts the preview without playing.
	Paused bool
	// ThemeName is shown in the status line.
	ThemeName string
	Logger    zerolog.Logger
}

// Run launches the previewer.
func Run(planner *composition.Planner, opts Options) error {
	program := tea.NewProgram(New(planner, opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Model is the bubbletea model for the previewer.
type Model struct {
	planner *composition.Planner
	styles  theme.Styles
	keys    KeyMap
	help    help.Model
	bar     progress.Model
	logger  zerolog.Logger

	themeName string
	speed     float64
	loop      bool
	playing   bool
	// gen identifies the live tick chain; ticks from older chains are dropped.
	gen    int
	frame  int
	last   int
	width  int
	height int
}

const (
	minWidth  = 40
	minHeight = 10
)

// New builds a previewer model.
func New(planner *composition.Planner, opts Options) Model {
	speed := opts.Speed
	if speed <= 0 {
		speed = 1
	}

	last := planner.Composition().Duration - 1
	if last < 0 {
		last = 0
	}

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	return Model{
		planner:   planner,
		styles:    theme.BuildStyles(planner.Palette()),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		bar:       bar,
		logger:    opts.Logger,
		themeName: opts.ThemeName,
		speed:     speed,
		loop:      opts.Loop,
		playing:   !opts.Paused,
		last:      last,
	}
}

// Frame is the frame currently shown.
func (m Model) Frame() int {
	return m.frame
}

// Playing reports whether playback is running.
func (m Model) Playing() bool {
	return m.playing
}

// interval is the wall time between frames.
func (m Model) interval() time.Duration {
	fps := float64(m.planner.Composition().FPS)
	if fps <= 0 {
		fps = composition.DefaultFPS
	}
	return time.Duration(float64(time.Second) / (fps * m.speed))
}

func (m Model) Init() tea.Cmd {
	if !m.playing {
		return nil
	}
	return tickCmd(m.gen, m.interval())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = max(msg.Width-24, 10)
	case tickMsg:
		if !m.playing || msg.gen != m.gen {
			return m, nil
		}
		return m.advance()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Play):
		if m.playing {
			m.pause()
			return m, nil
		}
		m.playing = true
		m.gen++
		if m.frame >= m.last {
			m.frame = 0
		}
		return m, tickCmd(m.gen, m.interval())
	case key.Matches(msg, m.keys.Back):
		m.pause()
		m.frame = max(m.frame-1, 0)
	case key.Matches(msg, m.keys.Forward):
		m.pause()
		m.frame = min(m.frame+1, m.last)
	case key.Matches(msg, m.keys.Restart):
		m.frame = 0
	case key.Matches(msg, m.keys.End):
		m.pause()
		m.frame = m.last
	case key.Matches(msg, m.keys.Loop):
		m.loop = !m.loop
	}
	return m, nil
}

func (m *Model) pause() {
	if m.playing {
		m.playing = false
		m.gen++
	}
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.frame >= m.last {
		if !m.loop {
			m.pause()
			m.logger.Debug().Int("frame", m.frame).Msg("preview finished")
			return m, nil
		}
		m.frame = 0
	} else {
		m.frame++
	}
	return m, tickCmd(m.gen, m.interval())
}

func (m Model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return fmt.Sprintf("%s\n%s\n",
			m.styles.Title.Render(fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)),
			fmt.Sprintf("Resize to at least %dx%d. Press q to quit.", minWidth, minHeight))
	}

	width := m.width
	if width <= 0 {
		width = 72
	}

	plan := m.planner.Plan(m.frame)
	lines := []string{
		RenderFrame(plan, width),
		"",
		m.statusLine(),
		m.bar.ViewAs(m.fraction()),
		"",
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func (m Model) fraction() float64 {
	if m.last <= 0 {
		return 1
	}
	return float64(m.frame) / float64(m.last)
}

func (m Model) statusLine() string {
	comp := m.planner.Composition()
	state := "paused"
	if m.playing {
		state = "playing"
	}
	parts := []string{
		comp.Name,
		fmt.Sprintf("frame %d/%d", m.frame, m.last),
		fmt.Sprintf("%.2fs", float64(m.frame)/float64(comp.FPS)),
		state,
	}
	if m.themeName != "" {
		parts = append(parts, "theme "+m.themeName)
	}
	if m.speed != 1 {
		parts = append(parts, fmt.Sprintf("%.2gx", m.speed))
	}
	if m.loop {
		parts = append(parts, "loop")
	}
	return strings.Join(parts, " | ")
}

type tickMsg struct {
	gen int
	at  time.Time
}

func tickCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}
