package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/theme"
)

func TestInsightsPanel_EmptyRendersNothing(t *testing.T) {
	panel := NewInsightsPanel(theme.New(domain.ThemeDark))

	assert.Equal(t, "", panel.View())

	panel.SetInsights([]domain.Insight{})
	assert.Equal(t, "", panel.View())
}

func TestInsightsPanel_RendersCards(t *testing.T) {
	panel := NewInsightsPanel(theme.New(domain.ThemeDark))
	panel.SetWidth(100)
	panel.SetInsights([]domain.Insight{
		{Title: "Mornings work", Description: "You focus best before noon.", Type: domain.InsightSuccess},
		{Title: "Slack", Description: "Most interruptions are digital.", Type: domain.InsightWarning},
	})

	view := panel.View()

	assert.Equal(t, 2, panel.Len())
	assert.Contains(t, view, "AI Insights")
	assert.Contains(t, view, "Mornings work")
	assert.Contains(t, view, "Most interruptions are digital.")
	assert.Contains(t, view, domain.InsightWarning.Icon())
}
