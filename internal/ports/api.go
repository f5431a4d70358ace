package ports

import (
	"context"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// SessionAPI reads and drives focus sessions on the server
type SessionAPI interface {
	EndSession(ctx context.Context, id int) (*domain.Session, error)
	GetSession(ctx context.Context, id int) (*domain.Session, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)
	StartSession(ctx context.Context) (*domain.Session, error)
}

// InterruptionAPI logs and lists interruptions
type InterruptionAPI interface {
	CreateInterruption(ctx context.Context, in domain.NewInterruption) (*domain.Interruption, error)
	ListInterruptions(ctx context.Context, sessionID int) ([]domain.Interruption, error)
}

// InsightAPI fetches generated insights
type InsightAPI interface {
	ListInsights(ctx context.Context) ([]domain.Insight, error)
}

// StatsAPI fetches aggregate statistics for a look-back window such as "7d"
type StatsAPI interface {
	InterruptionTypes(ctx context.Context, rangeStr string) (*domain.InterruptionBreakdown, error)
	PeakDistractionTime(ctx context.Context, rangeStr string) (*domain.PeakDistraction, error)
	ProductiveHours(ctx context.Context, rangeStr string) ([]domain.HourlyProductivity, error)
	Summary(ctx context.Context, rangeStr string) (*domain.StatsSummary, error)
	WeeklyPattern(ctx context.Context, rangeStr string) ([]domain.WeekdayPattern, error)
}

// AuthAPI exchanges credentials for tokens and manages accounts
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.Token, error)
	Me(ctx context.Context) (*domain.User, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.User, error)
}

// TokenSource supplies the bearer token for outgoing requests.
// An empty token means the request is sent unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
