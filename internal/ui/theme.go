package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// SkillSprint CLI theme. Kept intentionally small: reusable styles, a few
// icons, and helpers the commands share.

const (
	IconSprint  = "🏃"
	IconPlan    = "🗺️"
	IconTask    = "📋"
	IconDone    = "✅"
	IconOpen    = "⬜"
	IconStreak  = "🔥"
	IconLevelUp = "🎉"
	IconLink    = "🔗"
	IconWarn    = "⚠️"
	IconShare   = "🚀"
)

var (
	cPrimary = lipgloss.Color("#8B5CF6") // purple
	cAccent  = lipgloss.Color("#14B8A6") // teal
	cGood    = lipgloss.Color("#22C55E") // green
	cWarn    = lipgloss.Color("#F97316") // orange
	cBad     = lipgloss.Color("#F43F5E") // rose
	cMuted   = lipgloss.Color("#94A3B8") // slate
	cGold    = lipgloss.Color("#FACC15") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Muted = lipgloss.NewStyle().Foreground(cMuted)

	Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cMuted).
		Padding(0, 1)
)

// Heading renders an icon-prefixed section title.
func Heading(icon, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

// LabelValue renders a "Label: value" line with a styled label.
func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ProgressBar renders a fixed-width bar for a 0-100 percentage.
func ProgressBar(percent, width int) string {
	if width < 4 {
		width = 4
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := width * percent / 100

	bar := Good.Render(strings.Repeat("█", filled)) +
		Muted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s", bar, Muted.Render(fmt.Sprintf("%3d%%", percent)))
}

// TaskIcon returns the checkbox icon for a task's completion state.
func TaskIcon(completed bool) string {
	if completed {
		return IconDone
	}
	return IconOpen
}
