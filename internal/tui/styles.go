package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Joule-J/joules-comic-blog--1/internal/models"
)

// Comic palette.
const (
	comicCyan    = lipgloss.Color("#22d3ee")
	comicMagenta = lipgloss.Color("#d946ef")
	comicYellow  = lipgloss.Color("#facc15")
	comicBlack   = lipgloss.Color("#000000")
	comicWhite   = lipgloss.Color("#ffffff")
	comicGray    = lipgloss.Color("#9ca3af")
	comicRed     = lipgloss.Color("#dc2626")
)

var (
	siteTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(comicBlack).
			Background(comicYellow).
			Padding(0, 2)

	navActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(comicBlack).
			Background(comicCyan).
			Padding(0, 1)

	navInactiveStyle = lipgloss.NewStyle().
				Foreground(comicGray).
				Padding(0, 1)

	heroStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(comicMagenta)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(comicYellow)

	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(comicWhite).
			Background(comicMagenta).
			Padding(0, 1)

	dateStyle = lipgloss.NewStyle().
			Foreground(comicGray)

	excerptStyle = lipgloss.NewStyle().
			Foreground(comicWhite)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(comicYellow)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(comicWhite).
			Background(comicRed).
			Padding(0, 1)

	flashStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(comicBlack).
			Background(comicCyan).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(comicGray)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(comicGray)

	valueStyle = lipgloss.NewStyle().
			Foreground(comicWhite)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(comicBlack).
				Background(comicYellow)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(comicCyan).
			Padding(1, 3)

	adminModalStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(comicRed).
			Padding(1, 3)

	drawerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(comicYellow).
			Padding(0, 1)

	commentBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(comicGray).
			Padding(0, 1)

	soundEffectStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(comicBlack).
				Background(comicYellow).
				Padding(0, 1)
)

// accentColor maps a post's accent to its terminal color.
func accentColor(c models.Color) lipgloss.Color {
	switch c {
	case models.ColorCyan:
		return comicCyan
	case models.ColorMagenta:
		return comicMagenta
	case models.ColorYellow:
		return comicYellow
	}
	return comicWhite
}

// panelStyle frames a feed panel in its accent color. Size picks the frame
// width, the terminal equivalent of a grid footprint.
func panelStyle(p models.Post) lipgloss.Style {
	w := 44
	switch p.Size {
	case models.SizeLarge:
		w = 64
	case models.SizeMedium:
		w = 54
	case models.SizeTall:
		w = 44
	case models.SizeSmall:
		w = 40
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor(p.Color)).
		Width(w).
		Padding(0, 1)
}
