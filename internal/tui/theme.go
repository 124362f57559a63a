package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values.
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorSapphire lipgloss.Color = "#74c7ec"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
)

const (
	colorBrand   = colorBlue
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	headlineStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorAccent)
	bodyStyle      = lipgloss.NewStyle().Foreground(colorSubtext0)
	valueStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorSapphire)
	buttonStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorText).Padding(0, 4)
	dangerButton   = lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(colorCrust).Padding(0, 4)
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBrand).Padding(1, 3)
	pickerStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	pickedStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorFocus)
	sliderOnStyle  = lipgloss.NewStyle().Foreground(colorText)
	sliderOffStyle = lipgloss.NewStyle().Foreground(colorSurface1)
	statusStyle    = lipgloss.NewStyle().Foreground(colorOverlay0)
	errorStyle     = lipgloss.NewStyle().Foreground(colorError)
	successStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	alertStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(1, 2)
)
