package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herald/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Terminal palette.
var (
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// AccentStyle returns a lipgloss style rendering in the card's accent color.
func AccentStyle(a domain.Accent) lipgloss.Style {
	hex := fmt.Sprintf("#%06x", int(a))
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}

// Header renders a section header with the header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}
