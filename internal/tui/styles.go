package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/routinify/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Phase colors
	Work       lipgloss.Color
	ShortBreak lipgloss.Color
	LongBreak  lipgloss.Color

	// Group header
	GroupLine lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Work:       lipgloss.Color("#FF7675"), // Tomato
	ShortBreak: lipgloss.Color("#74B9FF"), // Light blue
	LongBreak:  lipgloss.Color("#00B894"), // Green

	GroupLine: lipgloss.Color("#636E72"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	Focus      lipgloss.Style
	Breadcrumb lipgloss.Style

	// Task list
	TaskList          lipgloss.Style
	TaskSelected      lipgloss.Style
	TaskTitle         lipgloss.Style
	TaskTitleSelected lipgloss.Style
	TaskChecked       lipgloss.Style
	TaskRoutine       lipgloss.Style
	CursorSelected    lipgloss.Style

	// Group header
	GroupHeaderLine  lipgloss.Style
	GroupHeaderLabel lipgloss.Style

	// Timer
	TimerClock   lipgloss.Style
	TimerSummary lipgloss.Style

	// Help
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Messages
	ErrorMsg  lipgloss.Style
	NoticeMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Focus: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Italic(true),

		Breadcrumb: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected),

		TaskList: lipgloss.NewStyle().
			MarginBottom(1),

		TaskSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskChecked: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TaskRoutine: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		GroupHeaderLine: lipgloss.NewStyle().
			Foreground(Colors.GroupLine),

		GroupHeaderLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TimerClock: lipgloss.NewStyle().
			Bold(true),

		TimerSummary: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		NoticeMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),
	}
}

// PhaseColor returns the accent color for a phase.
func PhaseColor(name domain.PhaseName) lipgloss.Color {
	switch name {
	case domain.PhaseWork:
		return Colors.Work
	case domain.PhaseShortBreak:
		return Colors.ShortBreak
	case domain.PhaseLongBreak:
		return Colors.LongBreak
	default:
		return Colors.Muted
	}
}

// PhaseStyle returns the clock style tinted for a phase.
func (s Styles) PhaseStyle(name domain.PhaseName) lipgloss.Style {
	return s.TimerClock.Foreground(PhaseColor(name))
}

// CheckIcon returns the checkbox for a task.
func CheckIcon(checked bool) string {
	if checked {
		return "✓"
	}
	return "○"
}
