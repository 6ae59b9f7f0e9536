package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatchbook/internal/card"
	"github.com/alexisbeaulieu97/swatchbook/internal/colour"
	"github.com/alexisbeaulieu97/swatchbook/internal/preview"
	"github.com/alexisbeaulieu97/swatchbook/internal/resolve"
)

// View renders the current model state
func (m Model) View() string {
	if m.viewMode == ViewPreview {
		if pv, ok := m.controller.View(); ok {
			return m.renderPreview(pv)
		}
	}
	return m.renderGallery()
}

func (m Model) renderGallery() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if banner := m.renderNotice(); banner != "" {
		content.WriteString(banner)
		content.WriteString("\n")
	}

	content.WriteString(m.renderCards())
	content.WriteString("\n")
	content.WriteString(footerStyle.Render(m.help.View(galleryKeys)))

	return content.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("🎨 Swatchbook")
	var summary string
	switch {
	case m.loading:
		summary = fmt.Sprintf("%s Loading variations...", m.spinner.View())
	case m.applying != "":
		summary = fmt.Sprintf("%s Applying %s...", m.spinner.View(), m.applying)
	default:
		summary = fmt.Sprintf("%d variation(s)", len(m.cards))
		if m.snapshot.ActiveSlug != "" {
			summary += fmt.Sprintf("  current: %s", m.snapshot.ActiveSlug)
		}
	}
	return headerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, summary))
}

func (m Model) renderNotice() string {
	if m.notice == nil {
		return ""
	}
	return noticeLevelStyle(m.notice.Level).Render(m.notice.Message)
}

func (m Model) renderCards() string {
	if m.loading {
		return ""
	}
	if len(m.cards) == 0 {
		return emptyStateStyle.Render("No style variations found.")
	}

	perRow := m.width / (cardWidth + 5)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(m.cards); start += perRow {
		end := start + perRow
		if end > len(m.cards) {
			end = len(m.cards)
		}
		var row []string
		for i := start; i < end; i++ {
			row = append(row, m.renderCard(m.cards[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCard(view card.View, selected bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}

	title := cardTitleStyle.Render(view.Title)
	if view.Current {
		title += currentBadgeStyle.Render(" (Current)")
	}

	lines := []string{title}
	if swatches := m.renderSwatches(view); swatches != "" {
		lines = append(lines, swatches)
	}
	if view.HasFonts() {
		var names []string
		for _, f := range view.Fonts {
			names = append(names, f.Text)
		}
		lines = append(lines, fontStyle.Render("Aa "+strings.Join(names, " · ")))
		if view.BodySample != nil {
			lines = append(lines, fontStyle.Render(view.BodySample.Text))
		}
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderSwatches(view card.View) string {
	if len(view.Swatches) == 0 {
		return ""
	}
	reader := card.VariableReader{Background: m.cardBackground}
	backdrop := colour.ParseOr(m.cardBackground, m.resolver, colour.White.Opaque()).RGB()

	var chips []string
	for i, s := range view.Swatches {
		style := swatchStyle
		if bg, ok := terminalColour(reader.SwatchBackground(view, i), m.resolver, backdrop); ok {
			style = style.Background(bg)
		}
		if fg, ok := terminalColour(s.LabelColor, m.resolver, backdrop); ok {
			style = style.Foreground(fg)
		}
		chips = append(chips, style.Render(s.Label))
	}
	return lipgloss.NewStyle().Width(cardWidth).Render(strings.Join(chips, ""))
}

func (m Model) renderPreview(pv preview.View) string {
	backdrop := colour.ParseOr(pv.Color(resolve.RoleBackground), m.resolver, colour.White.Opaque()).RGB()
	paint := func(role resolve.Role) lipgloss.Style {
		style := lipgloss.NewStyle()
		if c, ok := terminalColour(pv.Color(role), m.resolver, backdrop); ok {
			style = style.Foreground(c)
		}
		return style
	}
	fill := func(style lipgloss.Style, role resolve.Role) lipgloss.Style {
		if c, ok := terminalColour(pv.Color(role), m.resolver, backdrop); ok {
			style = style.Background(c)
		}
		return style
	}

	header := headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(pv.Title),
		"  ", pv.Counter,
		"  ", pv.ModeLabel,
	))

	c := pv.Content
	featured := fill(paint(resolve.RoleFeaturedText).Padding(1, 2), resolve.RoleFeaturedBg).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(c.FeaturedTitle),
			c.FeaturedBody,
		))

	var items []string
	for _, item := range c.Items {
		role := resolve.RoleList1
		if item.Alt {
			role = resolve.RoleList2
		}
		items = append(items, paint(role).Render("• "+item.Text))
	}

	quote := paint(resolve.RoleText).
		Italic(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderTop(false).BorderRight(false).BorderBottom(false).
		PaddingLeft(1)
	if c, ok := terminalColour(pv.Color(resolve.RoleTertiary2), m.resolver, backdrop); ok {
		quote = quote.BorderForeground(c)
	}

	primary := fill(lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#ffffff")), resolve.RoleAccent).Render(c.PrimaryAction)
	secondary := paint(resolve.RoleAccent2).Padding(0, 2).Render(c.SecondaryAction)

	body := lipgloss.JoinVertical(lipgloss.Left,
		paint(resolve.RoleHeading).Bold(true).Render(c.Heading),
		"",
		featured,
		"",
		paint(resolve.RoleHeading).Render(c.Subheading),
		strings.Join(items, "\n"),
		"",
		quote.Render(c.Quote),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, primary, " ", secondary),
	)
	page := fill(pageStyle.Inherit(paint(resolve.RoleText)), resolve.RoleBackground)
	if m.width > 8 {
		page = page.Width(m.width - 4)
	}

	var out strings.Builder
	out.WriteString(header)
	out.WriteString("\n")
	if banner := m.renderNotice(); banner != "" {
		out.WriteString(banner)
		out.WriteString("\n")
	}
	out.WriteString(page.Render(body))
	out.WriteString("\n")
	out.WriteString(footerStyle.Render(m.help.View(previewKeys)))
	return out.String()
}
