package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - classic shell diagnostic-report colors.
const (
	ColorRed    = "196" // identity-sensitive values, failures
	ColorGreen  = "46"  // success
	ColorYellow = "220" // informational
	ColorBlue   = "39"  // identifying info
	ColorCyan   = "51"  // banners
	ColorBlack  = "16"  // banner text on the cyan background
)

// Tag classifies a report value for styling purposes.
type Tag int

const (
	// TagWarn marks identity-sensitive or failure values (red).
	TagWarn Tag = iota
	// TagSuccess marks success indicators (green).
	TagSuccess
	// TagInfo marks informational values (yellow).
	TagInfo
	// TagIdentity marks identifying info such as hostnames (blue).
	TagIdentity
)

// Styles holds all styles used to render a report.
type Styles struct {
	Banner   lipgloss.Style
	Warn     lipgloss.Style
	Success  lipgloss.Style
	Info     lipgloss.Style
	Identity lipgloss.Style
	Dim      lipgloss.Style
}

// DefaultStyles returns styled components for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Banner:   lipgloss.NewStyle().Bold(true).Background(lipgloss.Color(ColorCyan)).Foreground(lipgloss.Color(ColorBlack)),
		Warn:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Identity: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue)),
		Dim:      lipgloss.NewStyle().Faint(true),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Banner:   lipgloss.NewStyle(),
		Warn:     lipgloss.NewStyle(),
		Success:  lipgloss.NewStyle(),
		Info:     lipgloss.NewStyle(),
		Identity: lipgloss.NewStyle(),
		Dim:      lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}

// Render styles a value according to its semantic tag.
func (s Styles) Render(tag Tag, text string) string {
	switch tag {
	case TagWarn:
		return s.Warn.Render(text)
	case TagSuccess:
		return s.Success.Render(text)
	case TagInfo:
		return s.Info.Render(text)
	case TagIdentity:
		return s.Identity.Render(text)
	default:
		return text
	}
}
