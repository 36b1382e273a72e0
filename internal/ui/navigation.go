package ui

import (
	"github.com/atomicstack/infotainment-menu/internal/logging/events"
	"github.com/atomicstack/infotainment-menu/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	cmd, ok := m.commandForKey(keyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(keyMsg.String())
	return m.dispatch(cmd)
}

func (m *Model) commandForKey(msg tea.KeyMsg) (command.Command, bool) {
	switch {
	case key.Matches(msg, m.keys.Down):
		return command.MoveDown, true
	case key.Matches(msg, m.keys.Up):
		return command.MoveUp, true
	case key.Matches(msg, m.keys.Enter):
		return command.EnterSubmenu, true
	case key.Matches(msg, m.keys.Back):
		return command.GoBack, true
	case key.Matches(msg, m.keys.Quit):
		return command.Exit, true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if cmd, err := command.Parse(string(msg.Runes)); err == nil {
			return cmd, true
		}
	}
	return 0, false
}

// dispatch applies a command and records its informational outcome. Any
// previous message is cleared by the next command.
func (m *Model) dispatch(cmd command.Command) tea.Cmd {
	res := m.bus.Execute(m.nav, cmd)
	m.infoMsg = res.Info
	if res.Quit {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	events.UI.Resize(size.Width, size.Height)
	if !m.fixedWidth {
		m.width = size.Width
		m.help.Width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}
