package services

import (
	"context"
	"fmt"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ports"
)

// InterruptionService logs distractions against a session
type InterruptionService struct {
	api   ports.InterruptionAPI
	clock Clock
}

// NewInterruptionService creates a new InterruptionService
func NewInterruptionService(api ports.InterruptionAPI, clock Clock) *InterruptionService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &InterruptionService{api: api, clock: clock}
}

// LogInterruption validates the input, then records an interruption that
// starts now and lasts DurationMinutes. Invalid input never reaches the server.
func (s *InterruptionService) LogInterruption(
	ctx context.Context,
	sessionID int,
	params LogInterruptionParams,
) (*domain.Interruption, error) {
	in, err := domain.BuildInterruption(sessionID, params.Type, params.Description, params.DurationMinutes, s.clock.Now())
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Logging interruption",
		"session_id", sessionID,
		"type", in.Type,
		"duration_minutes", params.DurationMinutes)

	created, err := s.api.CreateInterruption(ctx, in)
	if err != nil {
		logging.Logger.Error("Failed to log interruption", "session_id", sessionID, "error", err)
		return nil, err
	}

	return created, nil
}

// ListForSession returns the interruptions recorded for a session
func (s *InterruptionService) ListForSession(ctx context.Context, sessionID int) ([]domain.Interruption, error) {
	list, err := s.api.ListInterruptions(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interruptions for session %d: %w", sessionID, err)
	}
	return list, nil
}
