package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

// InsightsPanel renders the generated insights. With nothing to show it
// renders nothing at all, failures included.
type InsightsPanel struct {
	insights []domain.Insight
	styles   *theme.Styles
	width    int
}

// NewInsightsPanel creates an empty panel
func NewInsightsPanel(styles *theme.Styles) *InsightsPanel {
	return &InsightsPanel{styles: styles, width: 60}
}

// SetInsights replaces the insights shown
func (p *InsightsPanel) SetInsights(insights []domain.Insight) {
	p.insights = insights
}

// SetWidth sets the wrap width of the cards
func (p *InsightsPanel) SetWidth(width int) {
	p.width = max(width, 20)
}

// Len returns the number of insights
func (p *InsightsPanel) Len() int {
	return len(p.insights)
}

// View renders the "AI Insights" section
func (p *InsightsPanel) View() string {
	if len(p.insights) == 0 {
		return ""
	}
	return RenderInsights(p.styles, p.insights, p.width)
}

// RenderInsights renders insight cards with a type-coloured left border.
// Shared by the dashboard and the insights command.
func RenderInsights(styles *theme.Styles, insights []domain.Insight, width int) string {
	var b strings.Builder
	b.WriteString(styles.SectionHeader.Render("AI Insights"))
	b.WriteString("\n")

	for _, in := range insights {
		accent := styles.InsightAccent(in.Type)
		title := lipgloss.NewStyle().Foreground(accent).Render(in.Type.Icon()) + " " + styles.InsightTitle.Render(in.Title)
		desc := styles.InsightDesc.Width(max(width-4, 10)).Render(in.Description)

		card := styles.InsightCard.BorderForeground(accent).Render(title + "\n" + desc)
		b.WriteString(card)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
