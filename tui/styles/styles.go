package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7C3AED") // Purple
	AccentColor  = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	OnlineColor  = lipgloss.Color("#10B981") // Green
	OfflineColor = lipgloss.Color("#EF4444") // Red
	GainColor    = lipgloss.Color("#10B981")
	LossColor    = lipgloss.Color("#EF4444")

	BackgroundColor  = lipgloss.Color("#1F2937")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#7C3AED")

	// Text colors
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)
)

// Status indicator
var (
	OnlineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(OnlineColor)

	OfflineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(OfflineColor)
)

// Buttons
var (
	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderColor).
			Foreground(TextColor).
			Padding(0, 2)

	SelectedButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(FocusBorderColor).
				Foreground(TextColor).
				Bold(true).
				Padding(0, 2)

	DisabledButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(BorderColor).
				Foreground(TextMutedColor).
				Faint(true).
				Padding(0, 2)
)

// Stats
var (
	StatValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	GainStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(GainColor)

	LossStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(LossColor)

	TimeStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	EventStyle = lipgloss.NewStyle().
			Foreground(AccentColor)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)
)

// RenderTitle renders a panel title.
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

// PnLStyle picks the color cue for a P&L value.
func PnLStyle(negative bool) lipgloss.Style {
	if negative {
		return LossStyle
	}
	return GainStyle
}
