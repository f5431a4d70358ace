package api

import (
	"context"
	"net/url"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

func rangeQuery(rangeStr string) url.Values {
	if rangeStr == "" {
		rangeStr = domain.DefaultStatsRange
	}
	return url.Values{"range": {rangeStr}}
}

// ListInsights implements InsightAPI.ListInsights
func (c *Client) ListInsights(ctx context.Context) ([]domain.Insight, error) {
	var out []domain.Insight
	if err := c.get(ctx, "/stats/insights", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Summary implements StatsAPI.Summary
func (c *Client) Summary(ctx context.Context, rangeStr string) (*domain.StatsSummary, error) {
	var out domain.StatsSummary
	if err := c.get(ctx, "/stats/summary", rangeQuery(rangeStr), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InterruptionTypes implements StatsAPI.InterruptionTypes
func (c *Client) InterruptionTypes(ctx context.Context, rangeStr string) (*domain.InterruptionBreakdown, error) {
	var out domain.InterruptionBreakdown
	if err := c.get(ctx, "/stats/interruption-types", rangeQuery(rangeStr), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductiveHours implements StatsAPI.ProductiveHours
func (c *Client) ProductiveHours(ctx context.Context, rangeStr string) ([]domain.HourlyProductivity, error) {
	var out productiveHoursDTO
	if err := c.get(ctx, "/stats/productive-hours", rangeQuery(rangeStr), &out); err != nil {
		return nil, err
	}
	return out.Hours, nil
}

// PeakDistractionTime implements StatsAPI.PeakDistractionTime
func (c *Client) PeakDistractionTime(ctx context.Context, rangeStr string) (*domain.PeakDistraction, error) {
	var out domain.PeakDistraction
	if err := c.get(ctx, "/stats/peak-distraction-time", rangeQuery(rangeStr), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WeeklyPattern implements StatsAPI.WeeklyPattern
func (c *Client) WeeklyPattern(ctx context.Context, rangeStr string) ([]domain.WeekdayPattern, error) {
	var out weeklyPatternDTO
	if err := c.get(ctx, "/stats/weekly-pattern", rangeQuery(rangeStr), &out); err != nil {
		return nil, err
	}
	return out.Days, nil
}
