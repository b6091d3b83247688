package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Palette chosen to stay readable on both light and dark terminals.
var (
	guardTextColor = lipgloss.AdaptiveColor{Light: "#1f2d35", Dark: "#f4f8fb"}
	guardMuted     = lipgloss.AdaptiveColor{Light: "#6f8290", Dark: "#dde6ec"}
	guardAccent    = lipgloss.AdaptiveColor{Light: "#1a7f6b", Dark: "#4fc1a6"}
	guardDanger    = lipgloss.AdaptiveColor{Light: "#a32138", Dark: "#e05656"}
)

func guardListStyles() list.Styles {
	s := list.DefaultStyles()

	s.TitleBar = lipgloss.NewStyle().Padding(0, 0, 1, 0)
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(guardTextColor).UnsetBackground()

	s.FilterPrompt = lipgloss.NewStyle().Foreground(guardAccent)
	s.FilterCursor = lipgloss.NewStyle().Foreground(guardAccent)
	s.DefaultFilterCharacterMatch = lipgloss.NewStyle().Underline(true)

	s.StatusBar = lipgloss.NewStyle().Foreground(guardMuted).Padding(0, 0, 1, 0)
	s.StatusEmpty = lipgloss.NewStyle().Foreground(guardMuted)
	s.NoItems = lipgloss.NewStyle().Foreground(guardMuted)
	s.PaginationStyle = lipgloss.NewStyle().PaddingLeft(0)
	s.HelpStyle = lipgloss.NewStyle().Padding(1, 0, 0, 0).Foreground(guardMuted)

	s.ActivePaginationDot = lipgloss.NewStyle().Foreground(guardAccent).SetString("•")
	s.InactivePaginationDot = lipgloss.NewStyle().Foreground(guardMuted).SetString("•")
	s.DividerDot = lipgloss.NewStyle().Foreground(guardMuted).SetString(" • ")

	return s
}

func guardItemStyles() list.DefaultItemStyles {
	s := list.NewDefaultItemStyles()

	s.NormalTitle = lipgloss.NewStyle().
		Foreground(guardTextColor).
		Padding(0, 0, 0, 2)
	s.NormalDesc = lipgloss.NewStyle().
		Foreground(guardMuted).
		Padding(0, 0, 0, 2)

	s.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(guardAccent).
		Foreground(guardTextColor).
		Bold(true).
		Padding(0, 0, 0, 1)
	s.SelectedDesc = s.SelectedTitle.
		Bold(false).
		Foreground(guardTextColor)

	s.DimmedTitle = lipgloss.NewStyle().
		Foreground(guardMuted).
		Padding(0, 0, 0, 2)
	s.DimmedDesc = s.DimmedTitle

	s.FilterMatch = lipgloss.NewStyle().Underline(true)

	return s
}

// Result styling used by the interactive loop after each operation.
var (
	OKStyle   = lipgloss.NewStyle().Foreground(guardAccent).Bold(true)
	ErrStyle  = lipgloss.NewStyle().Foreground(guardDanger).Bold(true)
	DimStyle  = lipgloss.NewStyle().Foreground(guardMuted)
	TextStyle = lipgloss.NewStyle().Foreground(guardTextColor)
)
