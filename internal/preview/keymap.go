package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the previewer key bindings.
type KeyMap struct {
	Play    key.Binding
	Back    key.Binding
	Forward key.Binding
	Restart key.Binding
	End     key.Binding
	Loop    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play:    key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		Back:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev frame")),
		Forward: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next frame")),
		Restart: key.NewBinding(key.WithKeys("r", "home"), key.WithHelp("r", "restart")),
		End:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last frame")),
		Loop:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "loop")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the short help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Back, k.Forward, k.Restart, k.Loop, k.Quit}
}

// FullHelp returns the full help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Back, k.Forward},
		{k.Restart, k.End, k.Loop, k.Quit},
	}
}
