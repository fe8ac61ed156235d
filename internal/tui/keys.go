package tui

import "github.com/charmbracelet/bubbles/key"

// kitchenKeys are the dashboard bindings. They satisfy help.KeyMap.
type kitchenKeys struct {
	Up             key.Binding
	Down           key.Binding
	Accept         key.Binding
	Ready          key.Binding
	Complete       key.Binding
	Cancel         key.Binding
	Delete         key.Binding
	ClearCompleted key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKitchenKeys() kitchenKeys {
	return kitchenKeys{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Accept:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accept")),
		Ready:          key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "ready")),
		Complete:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		Cancel:         key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel")),
		Delete:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		ClearCompleted: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "clear completed")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k kitchenKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Ready, k.Complete, k.Cancel, k.Help, k.Quit}
}

func (k kitchenKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Accept, k.Ready, k.Complete, k.Cancel},
		{k.Delete, k.ClearCompleted},
		{k.Help, k.Quit},
	}
}

type trackerKeys struct {
	Quit key.Binding
}

func (k trackerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

func (k trackerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

func defaultTrackerKeys() trackerKeys {
	return trackerKeys{
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}
