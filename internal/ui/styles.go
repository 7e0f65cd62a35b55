package ui

import "github.com/charmbracelet/lipgloss"

// Lipgloss styles for the banner and section headers of the CLI output.
// These sit on top of the raw ANSI theme: the theme covers inline coloring
// in tabular output, the styles cover block-level elements.
var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245"))

	plainStyle = lipgloss.NewStyle()
)

// Banner renders the application banner line. With colors disabled the text
// is returned undecorated.
func Banner(text string) string {
	if CurrentTheme().Name == "none" {
		return text
	}
	return bannerStyle.Render(text)
}

// Header renders a section header such as "--- Comparison Summary ---".
func Header(text string) string {
	if CurrentTheme().Name == "none" {
		return plainStyle.Render(text)
	}
	return headerStyle.Render(text)
}
