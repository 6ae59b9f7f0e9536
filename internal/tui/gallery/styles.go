package gallery

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatchbook/internal/colour"
	"github.com/alexisbeaulieu97/swatchbook/internal/session"
)

const cardWidth = 34

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	warningColor = lipgloss.Color("226") // Yellow
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2)

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Width(cardWidth).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginRight(1)

	selectedCardStyle = cardStyle.
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(accentColor)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	currentBadgeStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true)

	fontStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	swatchStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)

	noticeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			MarginBottom(1).
			BorderStyle(lipgloss.NormalBorder())

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingTop(2).
			PaddingBottom(2).
			PaddingLeft(2)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	pageStyle = lipgloss.NewStyle().
			Padding(1, 3)
)

// noticeLevelStyle picks the banner colour for a notice level.
func noticeLevelStyle(level session.Level) lipgloss.Style {
	switch level {
	case session.LevelSuccess:
		return noticeStyle.Foreground(successColor).BorderForeground(successColor)
	case session.LevelWarning:
		return noticeStyle.Foreground(warningColor).BorderForeground(warningColor)
	case session.LevelError:
		return noticeStyle.Foreground(errorColor).BorderForeground(errorColor)
	default:
		return noticeStyle.Foreground(primaryColor).BorderForeground(primaryColor)
	}
}

// terminalColour converts a CSS colour into a lipgloss colour. Translucent
// values are flattened over backdrop; unparseable values report false.
func terminalColour(value string, resolver colour.Resolver, backdrop colour.RGB) (lipgloss.Color, bool) {
	c, ok := colour.Parse(value, resolver)
	if !ok {
		return "", false
	}
	rgb := c.RGB()
	if c.Translucent() {
		rgb = colour.CompositeOver(c, backdrop)
	}
	return lipgloss.Color(rgb.Hex()), true
}
