package gallery

import (
	"github.com/charmbracelet/bubbles/key"
)

type galleryKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Preview key.Binding
	Apply   key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k galleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Preview, k.Apply, k.Help, k.Quit}
}

func (k galleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Preview, k.Apply, k.Dismiss},
		{k.Help, k.Quit},
	}
}

type previewKeyMap struct {
	Previous key.Binding
	Next     key.Binding
	Mode     key.Binding
	Apply    key.Binding
	Close    key.Binding
	Escape   key.Binding
	Quit     key.Binding
}

func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Mode, k.Apply, k.Close, k.Escape}
}

func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Mode},
		{k.Apply, k.Close, k.Escape, k.Quit},
	}
}

var galleryKeys = galleryKeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous card"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next card"),
	),
	Preview: key.NewBinding(
		key.WithKeys("enter", "p"),
		key.WithHelp("enter/p", "preview"),
	),
	Apply: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "apply"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "dismiss notice"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var previewKeys = previewKeyMap{
	Previous: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next"),
	),
	Mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "light/dark"),
	),
	Apply: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "apply"),
	),
	Close: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
