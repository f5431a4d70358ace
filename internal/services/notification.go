package services

import (
	"fmt"
	"sync"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/logging"
	"github.com/hyperfocus/hyperfocus/internal/ports"
)

// NotificationService plays sounds and raises desktop notifications for
// session events. The target-reached alert fires once per session.
type NotificationService struct {
	mu          sync.Mutex
	notified    map[int]bool
	notifier    ports.DesktopNotifier
	soundPlayer ports.SoundPlayer
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(soundPlayer ports.SoundPlayer, notifier ports.DesktopNotifier) *NotificationService {
	return &NotificationService{
		notified:    make(map[int]bool),
		notifier:    notifier,
		soundPlayer: soundPlayer,
	}
}

// CheckTarget alerts when the running session has just reached its target.
// It returns true when an alert was raised by this call.
func (s *NotificationService) CheckTarget(session *domain.Session, timer domain.TimerState) bool {
	if session == nil || !timer.HasTarget() || timer.Elapsed < timer.TargetSeconds() {
		return false
	}

	s.mu.Lock()
	if s.notified[session.ID] {
		s.mu.Unlock()
		return false
	}
	s.notified[session.ID] = true
	s.mu.Unlock()

	minutes := *timer.TargetMinutes
	logging.Logger.Info("Target duration reached", "session_id", session.ID, "target_minutes", minutes)

	if err := s.soundPlayer.PlaySoundForEvent(ports.SoundEventTargetReached); err != nil {
		logging.Logger.Warn("Failed to play sound", "error", err)
	}
	body := fmt.Sprintf("%d minutes of focus done. End the session or keep going.", minutes)
	if err := s.notifier.Notify("Focus target reached", body); err != nil {
		logging.Logger.Debug("Desktop notification unavailable", "error", err)
	}

	return true
}

// PlaySoundForEvent plays a sound for a session event, logging failures
func (s *NotificationService) PlaySoundForEvent(eventType string) {
	logging.Logger.Debug("Playing sound for event", "event", eventType)
	if err := s.soundPlayer.PlaySoundForEvent(eventType); err != nil {
		logging.Logger.Warn("Failed to play sound", "event", eventType, "error", err)
	}
}
