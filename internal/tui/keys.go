package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next      key.Binding
	Quit      key.Binding
	Exit      key.Binding
	AgeDown   key.Binding
	AgeUp     key.Binding
	AgeDown10 key.Binding
	AgeUp10   key.Binding
	PickPrev  key.Binding
	PickNext  key.Binding
	SignOut   key.Binding
	Dismiss   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Exit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		AgeDown:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "age")),
		AgeUp:     key.NewBinding(key.WithKeys("right", "l")),
		AgeDown10: key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←/→", "age ±10")),
		AgeUp10:   key.NewBinding(key.WithKeys("shift+right", "L")),
		PickPrev:  key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/↓", "pick")),
		PickNext:  key.NewBinding(key.WithKeys("down", "j", "tab")),
		SignOut:   key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "sign out")),
		Dismiss:   key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "ok")),
	}
}

// stepHelp is the key help for one screen.
type stepHelp []key.Binding

func (h stepHelp) ShortHelp() []key.Binding  { return h }
func (h stepHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
