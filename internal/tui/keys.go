package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pregnancy    key.Binding
	Birth        key.Binding
	Maternity    key.Binding
	Paternity    key.Binding
	Unemployment key.Binding
	AddChild     key.Binding
	RemoveChild  key.Binding
	IncomeUp     key.Binding
	IncomeDown   key.Binding
	Reasons      key.Binding
	Reset        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pregnancy:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pregnancy")),
		Birth:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "give birth")),
		Maternity:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "maternity leave")),
		Paternity:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "paternity leave")),
		Unemployment: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "job loss / new job")),
		AddChild:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add child")),
		RemoveChild:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove youngest")),
		IncomeUp:     key.NewBinding(key.WithKeys("+", "=", "right"), key.WithHelp("+/→", "income up")),
		IncomeDown:   key.NewBinding(key.WithKeys("-", "left"), key.WithHelp("-/←", "income down")),
		Reasons:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "details")),
		Reset:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pregnancy, k.Unemployment, k.AddChild, k.IncomeUp, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pregnancy, k.Birth, k.Maternity, k.Paternity},
		{k.Unemployment, k.IncomeUp, k.IncomeDown},
		{k.AddChild, k.RemoveChild},
		{k.Reasons, k.Reset, k.Help, k.Quit},
	}
}
