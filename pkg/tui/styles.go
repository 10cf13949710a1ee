package tui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary = lipgloss.Color("#7aa2f7")
	ColorSuccess = lipgloss.Color("#9ece6a")
	ColorMuted   = lipgloss.Color("#565f89")
	ColorFg      = lipgloss.Color("#c0caf5")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorFg)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Strikethrough(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	SectionFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// hexColor 把 color.Color 转为 lipgloss 颜色
func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8))
}

// cellStyle 画布格的背景样式
func cellStyle(bg color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(hexColor(bg))
}

// sectionStyle 根据焦点选择区块边框
func sectionStyle(focused bool) lipgloss.Style {
	if focused {
		return SectionFocusedStyle
	}
	return SectionStyle
}
