package services

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DashboardService loads the main screen in one round
type DashboardService struct {
	insights *InsightsService
	sessions *SessionService
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(sessions *SessionService, insights *InsightsService) *DashboardService {
	return &DashboardService{insights: insights, sessions: sessions}
}

// Load refreshes sessions and insights in parallel. Only a session failure
// is reported; the insights panel degrades to empty on its own.
func (s *DashboardService) Load(ctx context.Context) (Dashboard, error) {
	var dash Dashboard
	var g errgroup.Group

	g.Go(func() error {
		snap, err := s.sessions.Refresh(ctx)
		dash.Snapshot = snap
		return err
	})
	g.Go(func() error {
		dash.Insights = s.insights.Widget(ctx)
		return nil
	})

	err := g.Wait()
	return dash, err
}
