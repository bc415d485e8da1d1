package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "kanagawa"

// --- Kanagawa Dragon palette ---
const (
	kanagawaGreen              = "#98BB6C"
	kanagawaDarkGreen          = "#76946A"
	kanagawaYellow             = "#FF9E3B"
	kanagawaRed                = "#FF5D62"
	kanagawaOrange             = "#FFA066"
	kanagawaCyan               = "#7FB4CA"
	kanagawaBlue               = "#7E9CD8"
	kanagawaViolet             = "#957FB8"
	kanagawaLightText          = "#DCD7BA"
	kanagawaMutedText          = "#727169"
	kanagawaBorder             = "#363646"
	kanagawaSelectedBackground = "#223249"
)

// --- Gruvbox palette ---
const (
	gruvboxGreen              = "#B8BB26"
	gruvboxDarkGreen          = "#98971A"
	gruvboxYellow             = "#FABD2F"
	gruvboxRed                = "#FB4934"
	gruvboxOrange             = "#FE8019"
	gruvboxCyan               = "#8EC07C"
	gruvboxBlue               = "#83A598"
	gruvboxViolet             = "#D3869B"
	gruvboxLightText          = "#EBDBB2"
	gruvboxMutedText          = "#928374"
	gruvboxBorder             = "#504945"
	gruvboxSelectedBackground = "#32302F"
)

// Colors is a resolved palette.
type Colors struct {
	Green              lipgloss.TerminalColor
	DarkGreen          lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
}

// Theme holds the styles shared by the prompts and pretty output.
type Theme struct {
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text hierarchy
	Bold     lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	// Input
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	// Highlighting
	Highlight lipgloss.Style
	Accent    lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"gruvbox":  newGruvboxColors,
	"terminal": newTerminalColors,
}

// DefaultTheme is the theme selected by ZISM_THEME, kanagawa otherwise.
var DefaultTheme = NewTheme()

// NewTheme creates a theme based on the ZISM_THEME environment variable.
func NewTheme() *Theme {
	return NewThemeWithName(os.Getenv("ZISM_THEME"))
}

// NewThemeWithName constructs a theme from a specific palette name. Unknown
// names fall back to the default palette.
func NewThemeWithName(name string) *Theme {
	key := strings.ToLower(strings.TrimSpace(name))
	build, ok := themeRegistry[key]
	if !ok {
		build = themeRegistry[defaultThemeName]
	}
	return newThemeFromColors(build())
}

// RenderStatus renders text with the appropriate status style.
func RenderStatus(status, text string) string {
	switch status {
	case "success":
		return DefaultTheme.Success.Render(text)
	case "error":
		return DefaultTheme.Error.Render(text)
	case "warning":
		return DefaultTheme.Warning.Render(text)
	case "info":
		return DefaultTheme.Info.Render(text)
	default:
		return text
	}
}

func newThemeFromColors(colors Colors) *Theme {
	return &Theme{
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.LightText),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Normal: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Faint(true),

		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText),

		Input: lipgloss.NewStyle().
			Foreground(colors.LightText),

		Placeholder: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Italic(true),

		Cursor: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),
	}
}

func newKanagawaColors() Colors {
	return Colors{
		Green:              lipgloss.Color(kanagawaGreen),
		DarkGreen:          lipgloss.Color(kanagawaDarkGreen),
		Yellow:             lipgloss.Color(kanagawaYellow),
		Red:                lipgloss.Color(kanagawaRed),
		Orange:             lipgloss.Color(kanagawaOrange),
		Cyan:               lipgloss.Color(kanagawaCyan),
		Blue:               lipgloss.Color(kanagawaBlue),
		Violet:             lipgloss.Color(kanagawaViolet),
		LightText:          lipgloss.Color(kanagawaLightText),
		MutedText:          lipgloss.Color(kanagawaMutedText),
		Border:             lipgloss.Color(kanagawaBorder),
		SelectedBackground: lipgloss.Color(kanagawaSelectedBackground),
	}
}

func newGruvboxColors() Colors {
	return Colors{
		Green:              lipgloss.Color(gruvboxGreen),
		DarkGreen:          lipgloss.Color(gruvboxDarkGreen),
		Yellow:             lipgloss.Color(gruvboxYellow),
		Red:                lipgloss.Color(gruvboxRed),
		Orange:             lipgloss.Color(gruvboxOrange),
		Cyan:               lipgloss.Color(gruvboxCyan),
		Blue:               lipgloss.Color(gruvboxBlue),
		Violet:             lipgloss.Color(gruvboxViolet),
		LightText:          lipgloss.Color(gruvboxLightText),
		MutedText:          lipgloss.Color(gruvboxMutedText),
		Border:             lipgloss.Color(gruvboxBorder),
		SelectedBackground: lipgloss.Color(gruvboxSelectedBackground),
	}
}

// newTerminalColors uses the 16 ANSI colors so the terminal's own scheme applies.
func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color("10"),
		DarkGreen:          lipgloss.Color("2"),
		Yellow:             lipgloss.Color("11"),
		Red:                lipgloss.Color("9"),
		Orange:             lipgloss.Color("3"),
		Cyan:               lipgloss.Color("14"),
		Blue:               lipgloss.Color("12"),
		Violet:             lipgloss.Color("13"),
		LightText:          lipgloss.Color("15"),
		MutedText:          lipgloss.Color("8"),
		Border:             lipgloss.Color("8"),
		SelectedBackground: lipgloss.Color("0"),
	}
}
