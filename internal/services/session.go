package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ports"
)

// SessionService owns the client-side view of focus sessions: the running
// session, the ended ones, and the local target duration of the running one
type SessionService struct {
	api      ports.SessionAPI
	clock    Clock
	mu       sync.RWMutex
	snapshot domain.SessionSnapshot
	targets  ports.TargetDurationStore
}

// NewSessionService creates a new SessionService
func NewSessionService(
	api ports.SessionAPI,
	targets ports.TargetDurationStore,
	clock Clock,
) *SessionService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &SessionService{
		api:      api,
		clock:    clock,
		snapshot: domain.SessionSnapshot{History: []domain.Session{}},
		targets:  targets,
	}
}

// Snapshot returns a copy of the latest partition
func (s *SessionService) Snapshot() domain.SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySnapshot(s.snapshot)
}

// Refresh fetches the session list and rebuilds the partition. On failure
// the previous snapshot is kept and the error returned.
func (s *SessionService) Refresh(ctx context.Context) (domain.SessionSnapshot, error) {
	logging.Logger.Debug("Refreshing sessions")

	sessions, err := s.api.ListSessions(ctx)
	if err != nil {
		logging.Logger.Error("Failed to fetch sessions", "error", err)
		return s.Snapshot(), fmt.Errorf("failed to fetch sessions: %w", err)
	}

	active, history := domain.PartitionSessions(sessions)
	next := domain.SessionSnapshot{
		Active:  active,
		History: history,
	}
	if active != nil {
		next.TargetMinutes = s.loadTarget(ctx, active.ID)
	}

	s.mu.Lock()
	s.snapshot = next
	s.mu.Unlock()

	logging.Logger.Debug("Sessions refreshed",
		"active", active != nil,
		"history", len(history))

	return copySnapshot(next), nil
}

// StartSession starts a session on the server and records its target
// duration locally. A nil target means open-ended.
func (s *SessionService) StartSession(ctx context.Context, params StartSessionParams) (*domain.Session, error) {
	if params.TargetMinutes != nil && *params.TargetMinutes <= 0 {
		return nil, fmt.Errorf("%w: target duration must be positive", domain.ErrValidation)
	}

	logging.Logger.Info("Starting session", "target_minutes", params.TargetMinutes)

	session, err := s.api.StartSession(ctx)
	if err != nil {
		logging.Logger.Error("Failed to start session", "error", err)
		return nil, err
	}

	if params.TargetMinutes != nil {
		if err := s.targets.SetTargetDuration(ctx, session.ID, *params.TargetMinutes); err != nil {
			logging.Logger.Warn("Failed to save target duration", "session_id", session.ID, "error", err)
		}
	}

	if _, err := s.Refresh(ctx); err != nil {
		// Show the new session even if the list could not be reloaded
		s.mu.Lock()
		started := *session
		s.snapshot.Active = &started
		s.snapshot.TargetMinutes = copyInt(params.TargetMinutes)
		s.mu.Unlock()
	}

	logging.Logger.Info("Session started", "session_id", session.ID)
	return session, nil
}

// EndSession ends the running session. On failure nothing changes and the
// session stays active.
func (s *SessionService) EndSession(ctx context.Context) (*domain.Session, error) {
	s.mu.RLock()
	active := s.snapshot.Active
	s.mu.RUnlock()

	if active == nil {
		return nil, domain.ErrNoActiveSession
	}
	id := active.ID

	logging.Logger.Info("Ending session", "session_id", id)

	ended, err := s.api.EndSession(ctx, id)
	if err != nil {
		logging.Logger.Error("Failed to end session", "session_id", id, "error", err)
		return nil, err
	}

	if err := s.targets.ClearTargetDuration(ctx, id); err != nil {
		logging.Logger.Warn("Failed to clear target duration", "session_id", id, "error", err)
	}

	if _, err := s.Refresh(ctx); err != nil {
		s.mu.Lock()
		if s.snapshot.Active != nil && s.snapshot.Active.ID == id {
			s.snapshot.Active = nil
			s.snapshot.TargetMinutes = nil
			s.snapshot.History = append([]domain.Session{*ended}, s.snapshot.History...)
		}
		s.mu.Unlock()
	}

	logging.Logger.Info("Session ended", "session_id", id)
	return ended, nil
}

// GetSession fetches one session by id
func (s *SessionService) GetSession(ctx context.Context, id int) (*domain.Session, error) {
	session, err := s.api.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session %d: %w", id, err)
	}
	return session, nil
}

// Timer derives the timer state of the running session at the current time.
// ok is false when nothing is running.
func (s *SessionService) Timer() (domain.TimerState, bool) {
	snap := s.Snapshot()
	if snap.Active == nil {
		return domain.TimerState{}, false
	}
	elapsed := domain.ComputeElapsed(s.clock.Now(), snap.Active.StartTime)
	return domain.NewTimerState(elapsed, snap.TargetMinutes), true
}

// loadTarget reads the annotation, treating local store failures as "no target"
func (s *SessionService) loadTarget(ctx context.Context, id int) *int {
	target, err := s.targets.GetTargetDuration(ctx, id)
	if err != nil {
		logging.Logger.Warn("Failed to read target duration", "session_id", id, "error", err)
		return nil
	}
	return target
}

func copySnapshot(in domain.SessionSnapshot) domain.SessionSnapshot {
	out := domain.SessionSnapshot{
		History:       make([]domain.Session, len(in.History)),
		TargetMinutes: copyInt(in.TargetMinutes),
	}
	copy(out.History, in.History)
	if in.Active != nil {
		active := *in.Active
		out.Active = &active
	}
	return out
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
