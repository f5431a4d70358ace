package services

import (
	"context"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ports"
)

// InsightsService fetches generated insights
type InsightsService struct {
	api ports.InsightAPI
}

// NewInsightsService creates a new InsightsService
func NewInsightsService(api ports.InsightAPI) *InsightsService {
	return &InsightsService{api: api}
}

// List returns insights, surfacing errors (used by the CLI)
func (s *InsightsService) List(ctx context.Context) ([]domain.Insight, error) {
	return s.api.ListInsights(ctx)
}

// Widget returns insights for the dashboard panel. Failures yield an empty
// list so the panel simply renders nothing.
func (s *InsightsService) Widget(ctx context.Context) []domain.Insight {
	insights, err := s.api.ListInsights(ctx)
	if err != nil {
		logging.Logger.Debug("Insights unavailable", "error", err)
		return nil
	}
	return insights
}
