package view

import "github.com/charmbracelet/lipgloss"

// Theme holds the terminal styles for cards and chrome.
type Theme struct {
	Title      lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	Toggle     lipgloss.Style
	Body       lipgloss.Style
	Card       lipgloss.Style
	ActiveCard lipgloss.Style
	Status     lipgloss.Style
	Warn       lipgloss.Style
	Input      lipgloss.Style
}

// DefaultTheme returns the catppuccin-flavoured palette.
func DefaultTheme() Theme {
	mauve := lipgloss.Color("#cba6f7")
	red := lipgloss.Color("#f38ba8")
	teal := lipgloss.Color("#94e2d5")
	lavender := lipgloss.Color("#b4befe")
	text := lipgloss.Color("#cdd6f4")
	subtext := lipgloss.Color("#bac2de")
	overlay := lipgloss.Color("#7f849c")
	surface := lipgloss.Color("#313244")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(mauve),
		MetaLabel:  lipgloss.NewStyle().Foreground(overlay),
		MetaValue:  lipgloss.NewStyle().Foreground(subtext),
		Toggle:     lipgloss.NewStyle().Foreground(lavender).Underline(true),
		Body:       lipgloss.NewStyle().Foreground(text),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(surface).Padding(0, 1),
		ActiveCard: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(teal).Padding(0, 1),
		Status:     lipgloss.NewStyle().Foreground(teal),
		Warn:       lipgloss.NewStyle().Foreground(red),
		Input:      lipgloss.NewStyle().Foreground(text),
	}
}

// PlainTheme returns unstyled output, used for pipes and tests.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{
		Title:      s,
		MetaLabel:  s,
		MetaValue:  s,
		Toggle:     s,
		Body:       s,
		Card:       s,
		ActiveCard: s,
		Status:     s,
		Warn:       s,
		Input:      s,
	}
}
