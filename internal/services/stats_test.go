package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	portsmocks "github.com/hyperfocus/hyperfocus/internal/ports/mocks"
)

func expectAllStats(api *portsmocks.MockStatsAPI, rangeStr string) {
	api.EXPECT().Summary(mock.Anything, rangeStr).Return(&domain.StatsSummary{TotalSessions: 3}, nil)
	api.EXPECT().InterruptionTypes(mock.Anything, rangeStr).Return(&domain.InterruptionBreakdown{TotalInterruptions: 2}, nil)
	api.EXPECT().ProductiveHours(mock.Anything, rangeStr).Return([]domain.HourlyProductivity{{Hour: 9}}, nil)
	api.EXPECT().PeakDistractionTime(mock.Anything, rangeStr).Return(&domain.PeakDistraction{PeakHour: intPtr(14)}, nil)
	api.EXPECT().WeeklyPattern(mock.Anything, rangeStr).Return([]domain.WeekdayPattern{{Day: "Mon"}}, nil)
}

func TestStatsReport_CombinesViews(t *testing.T) {
	api := portsmocks.NewMockStatsAPI(t)
	expectAllStats(api, "30d")

	report, err := NewStatsService(api).Report(context.Background(), "30D")

	require.NoError(t, err)
	assert.Equal(t, "30d", report.Range)
	assert.Equal(t, 3, report.Summary.TotalSessions)
	assert.Equal(t, 2, report.Interruptions.TotalInterruptions)
	assert.Len(t, report.Hours, 1)
	assert.Equal(t, 14, *report.Peak.PeakHour)
	assert.Equal(t, "Mon", report.Weekly[0].Day)
}

func TestStatsReport_DefaultRange(t *testing.T) {
	api := portsmocks.NewMockStatsAPI(t)
	expectAllStats(api, domain.DefaultStatsRange)

	report, err := NewStatsService(api).Report(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "7d", report.Range)
}

func TestStatsReport_InvalidRange(t *testing.T) {
	_, err := NewStatsService(portsmocks.NewMockStatsAPI(t)).Report(context.Background(), "forever")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStatsReport_AnyFailureFails(t *testing.T) {
	api := portsmocks.NewMockStatsAPI(t)
	api.EXPECT().Summary(mock.Anything, "7d").Return(nil, errors.New("down")).Maybe()
	api.EXPECT().InterruptionTypes(mock.Anything, "7d").Return(&domain.InterruptionBreakdown{}, nil).Maybe()
	api.EXPECT().ProductiveHours(mock.Anything, "7d").Return(nil, nil).Maybe()
	api.EXPECT().PeakDistractionTime(mock.Anything, "7d").Return(&domain.PeakDistraction{}, nil).Maybe()
	api.EXPECT().WeeklyPattern(mock.Anything, "7d").Return(nil, nil).Maybe()

	_, err := NewStatsService(api).Report(context.Background(), "7d")

	assert.ErrorContains(t, err, "summary: down")
}
