package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap 终端界面按键绑定
type keyMap struct {
	Tab       key.Binding
	ShiftTab  key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Activate  key.Binding
	Submit    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// focus 决定 ShortHelp/FullHelp 列出的按键
	focus focus
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next section"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev section"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "use tool / toggle / select"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// forFocus 返回按焦点筛选帮助内容的按键表
func (k keyMap) forFocus(f focus) keyMap {
	k.focus = f
	return k
}

// ShortHelp 实现 help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	switch k.focus {
	case focusHeadline, focusItem:
		return []key.Binding{k.Submit, k.Tab, k.ForceQuit}
	case focusField:
		return []key.Binding{k.Activate, k.Tab, k.Help, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Activate, k.Tab, k.Help, k.Quit}
	}
}

// FullHelp 实现 help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	if k.focus == focusHeadline || k.focus == focusItem {
		return [][]key.Binding{
			{k.Submit},
			{k.Tab, k.ShiftTab, k.ForceQuit},
		}
	}
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Activate},
		{k.Tab, k.ShiftTab, k.Help, k.Quit},
	}
}
