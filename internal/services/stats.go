package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ports"
)

// StatsService assembles the statistics views for a look-back window
type StatsService struct {
	api ports.StatsAPI
}

// NewStatsService creates a new StatsService
func NewStatsService(api ports.StatsAPI) *StatsService {
	return &StatsService{api: api}
}

// Report fetches every stats view concurrently. Any failure fails the report.
func (s *StatsService) Report(ctx context.Context, rangeStr string) (*domain.StatsReport, error) {
	normalized, err := domain.ParseStatsRange(rangeStr)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Loading stats report", "range", normalized)

	report := &domain.StatsReport{Range: normalized}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.api.Summary(gctx, normalized)
		if err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		report.Summary = *summary
		return nil
	})
	g.Go(func() error {
		types, err := s.api.InterruptionTypes(gctx, normalized)
		if err != nil {
			return fmt.Errorf("interruption types: %w", err)
		}
		report.Interruptions = *types
		return nil
	})
	g.Go(func() error {
		hours, err := s.api.ProductiveHours(gctx, normalized)
		if err != nil {
			return fmt.Errorf("productive hours: %w", err)
		}
		report.Hours = hours
		return nil
	})
	g.Go(func() error {
		peak, err := s.api.PeakDistractionTime(gctx, normalized)
		if err != nil {
			return fmt.Errorf("peak distraction time: %w", err)
		}
		report.Peak = *peak
		return nil
	})
	g.Go(func() error {
		days, err := s.api.WeeklyPattern(gctx, normalized)
		if err != nil {
			return fmt.Errorf("weekly pattern: %w", err)
		}
		report.Weekly = days
		return nil
	})

	if err := g.Wait(); err != nil {
		logging.Logger.Error("Failed to load stats", "range", normalized, "error", err)
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	return report, nil
}
