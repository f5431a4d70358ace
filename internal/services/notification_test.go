package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/ports"
	portsmocks "github.com/hyperfocus/hyperfocus/internal/ports/mocks"
)

func TestCheckTarget_FiresOncePerSession(t *testing.T) {
	sound := portsmocks.NewMockSoundPlayer(t)
	notifier := portsmocks.NewMockDesktopNotifier(t)
	sound.EXPECT().PlaySoundForEvent(ports.SoundEventTargetReached).Return(nil).Once()
	notifier.EXPECT().Notify("Focus target reached", mock.Anything).Return(nil).Once()

	service := NewNotificationService(sound, notifier)
	session := &domain.Session{ID: 1}

	assert.False(t, service.CheckTarget(session, domain.NewTimerState(24*60+59, intPtr(25))))
	assert.True(t, service.CheckTarget(session, domain.NewTimerState(25*60, intPtr(25))))
	assert.False(t, service.CheckTarget(session, domain.NewTimerState(26*60, intPtr(25))))
}

func TestCheckTarget_OpenEndedNeverFires(t *testing.T) {
	service := NewNotificationService(portsmocks.NewMockSoundPlayer(t), portsmocks.NewMockDesktopNotifier(t))

	assert.False(t, service.CheckTarget(&domain.Session{ID: 1}, domain.NewTimerState(10*3600, nil)))
	assert.False(t, service.CheckTarget(nil, domain.NewTimerState(10*3600, intPtr(1))))
}

func TestCheckTarget_ToleratesNotifierFailures(t *testing.T) {
	sound := portsmocks.NewMockSoundPlayer(t)
	notifier := portsmocks.NewMockDesktopNotifier(t)
	sound.EXPECT().PlaySoundForEvent(mock.Anything).Return(errors.New("no audio"))
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("no bus"))

	service := NewNotificationService(sound, notifier)

	assert.True(t, service.CheckTarget(&domain.Session{ID: 2}, domain.NewTimerState(60, intPtr(1))))
}

func TestPlaySoundForEvent(t *testing.T) {
	sound := portsmocks.NewMockSoundPlayer(t)
	sound.EXPECT().PlaySoundForEvent(ports.SoundEventSessionStart).Return(nil)

	NewNotificationService(sound, portsmocks.NewMockDesktopNotifier(t)).PlaySoundForEvent(ports.SoundEventSessionStart)
}
