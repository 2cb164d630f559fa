package viz

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	canvasStyle  = lipgloss.NewStyle().Padding(1, 2)
	statsStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true)
)

// Palette returns n visually distinct body colors, evenly spaced in
// hue. The first color is reserved for the central body and kept warm.
func Palette(n int) []lipgloss.Style {
	styles := make([]lipgloss.Style, n)
	for i := range styles {
		var c colorful.Color
		if i == 0 {
			c = colorful.Hsv(48, 0.85, 1.0)
		} else {
			h := float64(i-1) * 360.0 / float64(n)
			c = colorful.Hsv(h, 0.55, 0.95)
		}
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return styles
}
