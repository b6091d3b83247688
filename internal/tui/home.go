// Package tui renders the interactive home menu. Tool execution itself
// happens in the cli package; the menu only picks an action.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRm
	ActionProtectLock
	ActionProtectOpen
	ActionProtectRestore
	ActionProtectRemove
	ActionProtectList
	ActionObfuscate
	ActionDeobfuscate
	ActionStegoHide
	ActionStegoReveal
)

type menuItem struct {
	action Action
	name   string
	desc   string
}

func (i menuItem) Title() string       { return i.name }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.name + " " + i.desc }

func menuItems() []list.Item {
	return []list.Item{
		menuItem{ActionProtectLock, "Protect a file", "Seal it with a password and remove the original"},
		menuItem{ActionProtectOpen, "Open a protected file", "Temporary decrypted copy, stays protected"},
		menuItem{ActionProtectRestore, "Restore a protected file", "Permanent decryption back to the original path"},
		menuItem{ActionProtectRemove, "Delete a protected file", "Discard the sealed copy without decrypting"},
		menuItem{ActionProtectList, "List protected files", "Everything tracked in the registry"},
		menuItem{ActionObfuscate, "Obfuscate", "Scramble a file or folder to .obf copies"},
		menuItem{ActionDeobfuscate, "Deobfuscate", "Restore .obf files"},
		menuItem{ActionStegoHide, "Hide a message in a PNG", "Write a tEXt metadata chunk"},
		menuItem{ActionStegoReveal, "Reveal PNG messages", "List hidden tEXt messages"},
		menuItem{ActionRm, "Delete a path", "Permanently remove a file or directory"},
		menuItem{ActionQuit, "Quit", "Leave fileguard"},
	}
}

type homeModel struct {
	list   list.Model
	choice Action
	width  int
	height int
}

func newHomeModel() homeModel {
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	d.Styles = guardItemStyles()

	l := list.New(menuItems(), d, 0, 0)
	l.Title = "fileguard"
	l.Styles = guardListStyles()
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowPagination(false)

	return homeModel{list: l, choice: ActionNone}
}

func (m homeModel) Init() tea.Cmd { return nil }

func (m homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		// Don't steal keys while the user is filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.choice = ActionQuit
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(menuItem); ok {
				m.choice = item.action
				return m, tea.Quit
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m homeModel) View() string {
	return lipgloss.NewStyle().Padding(1, 2).Render(m.list.View())
}

// Choose runs the menu and returns the selected action. Quitting the
// program (q, esc, ctrl+c) returns ActionQuit.
func Choose() (Action, error) {
	p := tea.NewProgram(newHomeModel(), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return ActionNone, fmt.Errorf("run menu: %w", err)
	}
	m, ok := final.(homeModel)
	if !ok {
		return ActionNone, fmt.Errorf("unexpected model %T", final)
	}
	if m.choice == ActionNone {
		return ActionQuit, nil
	}
	return m.choice, nil
}
