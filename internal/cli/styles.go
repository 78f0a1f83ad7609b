package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesolve"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	faceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles paints each facelet symbol in its solved-face color,
// indexed like cubesolve.Faces.
var stickerStyles = [6]lipgloss.Style{
	stickerStyle("15"),  // white
	stickerStyle("196"), // red
	stickerStyle("34"),  // green
	stickerStyle("226"), // yellow
	stickerStyle("208"), // orange
	stickerStyle("21"),  // blue
}

func stickerStyle(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color("0"))
}

// renderSticker draws one sticker three cells wide. The cursor sticker
// is bracketed.
func renderSticker(f cubesolve.Facelet, cursor bool) string {
	text := " " + f.String() + " "
	if cursor {
		text = "[" + f.String() + "]"
	}
	i := f.Index()
	if i < 0 {
		return text
	}
	style := stickerStyles[i]
	if cursor {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(text)
}
