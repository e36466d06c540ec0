package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Design System Colors - Adaptive based on terminal background
var (
	// Primary brand colors
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorAccent    lipgloss.Color

	// Semantic colors
	ColorSuccess lipgloss.Color
	ColorWarning lipgloss.Color
	ColorError   lipgloss.Color
	ColorInfo    lipgloss.Color

	// Neutral colors (contrast-adaptive)
	ColorText       lipgloss.Color
	ColorTextMuted  lipgloss.Color
	ColorTextDim    lipgloss.Color
	ColorBorder     lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
)

// initializeColors sets up adaptive colors. style is the GLAMOUR_STYLE
// setting: "light" and "dark" force a theme, anything else auto-detects.
func initializeColors(style string) {
	switch style {
	case "light":
		setLightThemeColors()
	case "dark":
		setDarkThemeColors()
	default:
		if lipgloss.HasDarkBackground() {
			setDarkThemeColors()
		} else {
			setLightThemeColors()
		}
	}
	buildStyles()
}

func setDarkThemeColors() {
	ColorPrimary = lipgloss.Color("208")  // Orange
	ColorSecondary = lipgloss.Color("33") // Bright blue
	ColorAccent = lipgloss.Color("214")   // Amber

	ColorSuccess = lipgloss.Color("10")
	ColorWarning = lipgloss.Color("11")
	ColorError = lipgloss.Color("9")
	ColorInfo = lipgloss.Color("12")

	ColorText = lipgloss.Color("252")       // Near white
	ColorTextMuted = lipgloss.Color("244")  // Light gray
	ColorTextDim = lipgloss.Color("240")    // Medium gray
	ColorBorder = lipgloss.Color("238")     // Dark gray
	ColorBackground = lipgloss.Color("235") // Very dark gray
	ColorSurface = lipgloss.Color("236")    // Slightly lighter dark gray
}

func setLightThemeColors() {
	ColorPrimary = lipgloss.Color("166")  // Darker orange for contrast
	ColorSecondary = lipgloss.Color("24") // Darker blue
	ColorAccent = lipgloss.Color("130")   // Darker amber

	ColorSuccess = lipgloss.Color("22")
	ColorWarning = lipgloss.Color("136")
	ColorError = lipgloss.Color("160")
	ColorInfo = lipgloss.Color("24")

	ColorText = lipgloss.Color("232")       // Near black
	ColorTextMuted = lipgloss.Color("240")  // Dark gray
	ColorTextDim = lipgloss.Color("244")    // Medium gray
	ColorBorder = lipgloss.Color("248")     // Light gray
	ColorBackground = lipgloss.Color("255") // White
	ColorSurface = lipgloss.Color("254")    // Off-white
}

// Component Styles, rebuilt whenever the palette changes
var (
	StyleTitle      lipgloss.Style
	StyleSubtitle   lipgloss.Style
	StyleText       lipgloss.Style
	StyleTextMuted  lipgloss.Style
	StyleTextDim    lipgloss.Style
	StyleFocused    lipgloss.Style
	StyleSelected   lipgloss.Style
	StyleUnselected lipgloss.Style
	StyleChip       lipgloss.Style
	StyleChipCustom lipgloss.Style
	StyleTabActive  lipgloss.Style
	StyleTabIdle    lipgloss.Style
	StyleSuccess    lipgloss.Style
	StyleWarning    lipgloss.Style
	StyleError      lipgloss.Style
	StyleInfo       lipgloss.Style
	StyleModal      lipgloss.Style
	StyleCard       lipgloss.Style
	StyleCardFocus  lipgloss.Style
	StyleToast      lipgloss.Style
	StyleMetadata   lipgloss.Style
)

func buildStyles() {
	StyleTitle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	StyleSubtitle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	StyleText = lipgloss.NewStyle().
		Foreground(ColorText)

	StyleTextMuted = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	StyleTextDim = lipgloss.NewStyle().
		Foreground(ColorTextDim)

	// Interactive states
	StyleFocused = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(ColorSecondary).
		Bold(true)

	StyleSelected = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	StyleUnselected = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	StyleChip = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(ColorPrimary).
		Padding(0, 1).
		MarginRight(1)

	StyleChipCustom = StyleChip.
		Background(ColorAccent)

	StyleTabActive = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true).
		Padding(0, 2)

	StyleTabIdle = lipgloss.NewStyle().
		Foreground(ColorTextDim).
		Padding(0, 2)

	// Status and feedback
	StyleSuccess = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true).
		Padding(0, 1)

	StyleWarning = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true).
		Padding(0, 1)

	StyleError = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true).
		Padding(0, 1)

	StyleInfo = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Bold(true).
		Padding(0, 1)

	// Layout styles
	StyleModal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(60)

	StyleCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	StyleCardFocus = StyleCard.
		BorderForeground(ColorPrimary)

	StyleToast = lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("15")).
		Bold(true).
		Padding(0, 2)

	StyleMetadata = lipgloss.NewStyle().
		Foreground(ColorTextDim)
}

func init() {
	setDarkThemeColors()
	buildStyles()
}

// CreateMainHeader renders the application title
func CreateMainHeader(titleText, version string) string {
	title := StyleTitle.Render(titleText)
	if version == "" {
		return title
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, title, StyleMetadata.Render("v"+version))
}

// CreateTabs renders the tab bar with the active tab highlighted
func CreateTabs(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		if i == active {
			parts[i] = StyleTabActive.Render(label)
		} else {
			parts[i] = StyleTabIdle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// CreateStatus renders a status line in the semantic colour for statusType
func CreateStatus(text string, statusType string) string {
	switch statusType {
	case "success":
		return StyleSuccess.Render(text)
	case "warning":
		return StyleWarning.Render(text)
	case "error":
		return StyleError.Render(text)
	case "info":
		return StyleInfo.Render(text)
	default:
		return StyleText.Render(text)
	}
}

// CreateChips renders selected options as inline chips, wrapped to width
func CreateChips(labels []string, custom []bool, width int) string {
	var lines []string
	var line []string
	lineWidth := 0
	for i, label := range labels {
		style := StyleChip
		if i < len(custom) && custom[i] {
			style = StyleChipCustom
		}
		chip := style.Render(label)
		w := lipgloss.Width(chip)
		if width > 0 && lineWidth > 0 && lineWidth+w > width {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line, lineWidth = nil, 0
		}
		line = append(line, chip)
		lineWidth += w
	}
	if len(line) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	}
	return strings.Join(lines, "\n")
}

// CenterModal places content in the middle of the screen
func CenterModal(content string, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// CreateGuaranteedHelp renders help text truncated to the terminal width
func CreateGuaranteedHelp(helpText string, width int) string {
	helpStyle := lipgloss.NewStyle().
		Foreground(ColorTextDim).
		Padding(0, 1)

	if width > 5 && lipgloss.Width(helpText) > width-2 {
		r := []rune(helpText)
		if len(r) > width-5 {
			helpText = string(r[:width-5]) + "..."
		}
	}

	return helpStyle.Render(helpText)
}
