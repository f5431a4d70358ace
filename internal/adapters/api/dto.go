package api

import (
	"fmt"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// Wire shapes keep timestamps as strings: the server emits naive ISO-8601
// values which domain.ParseServerTime reads as UTC.

type sessionDTO struct {
	CreatedAt string  `json:"created_at"`
	EndTime   *string `json:"end_time"`
	ID        int     `json:"id"`
	StartTime string  `json:"start_time"`
	UserID    int     `json:"user_id"`
}

type interruptionDTO struct {
	CreatedAt   string `json:"created_at"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	EndTime     string `json:"end_time"`
	ID          int    `json:"id"`
	SessionID   int    `json:"session_id"`
	StartTime   string `json:"start_time"`
	Type        string `json:"type"`
	UserID      int    `json:"user_id"`
}

type interruptionCreateDTO struct {
	Description string `json:"description"`
	EndTime     string `json:"end_time"`
	SessionID   int    `json:"session_id"`
	StartTime   string `json:"start_time"`
	Type        string `json:"type"`
}

type userDTO struct {
	CreatedAt string `json:"created_at"`
	Email     string `json:"email"`
	ID        int    `json:"id"`
	IsActive  bool   `json:"is_active"`
	Name      string `json:"name"`
}

type registerDTO struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type productiveHoursDTO struct {
	Hours []domain.HourlyProductivity `json:"hours"`
}

type weeklyPatternDTO struct {
	Days []domain.WeekdayPattern `json:"days"`
}

// sessionDTOToDomain converts a wire session to domain.Session
func sessionDTOToDomain(d sessionDTO) (domain.Session, error) {
	start, err := domain.ParseServerTime(d.StartTime)
	if err != nil {
		return domain.Session{}, fmt.Errorf("session %d start_time: %w", d.ID, err)
	}

	s := domain.Session{
		ID:        d.ID,
		StartTime: start,
		UserID:    d.UserID,
	}

	if d.CreatedAt != "" {
		created, err := domain.ParseServerTime(d.CreatedAt)
		if err != nil {
			return domain.Session{}, fmt.Errorf("session %d created_at: %w", d.ID, err)
		}
		s.CreatedAt = created
	}

	if d.EndTime != nil && *d.EndTime != "" {
		end, err := domain.ParseServerTime(*d.EndTime)
		if err != nil {
			return domain.Session{}, fmt.Errorf("session %d end_time: %w", d.ID, err)
		}
		s.EndTime = &end
	}

	return s, nil
}

func sessionDTOsToDomain(ds []sessionDTO) ([]domain.Session, error) {
	sessions := make([]domain.Session, 0, len(ds))
	for _, d := range ds {
		s, err := sessionDTOToDomain(d)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// interruptionDTOToDomain converts a wire interruption to domain.Interruption
func interruptionDTOToDomain(d interruptionDTO) (domain.Interruption, error) {
	start, err := domain.ParseServerTime(d.StartTime)
	if err != nil {
		return domain.Interruption{}, fmt.Errorf("interruption %d start_time: %w", d.ID, err)
	}
	end, err := domain.ParseServerTime(d.EndTime)
	if err != nil {
		return domain.Interruption{}, fmt.Errorf("interruption %d end_time: %w", d.ID, err)
	}

	in := domain.Interruption{
		Description: d.Description,
		Duration:    d.Duration,
		EndTime:     end,
		ID:          d.ID,
		SessionID:   d.SessionID,
		StartTime:   start,
		Type:        domain.InterruptionType(d.Type),
		UserID:      d.UserID,
	}

	if d.CreatedAt != "" {
		created, err := domain.ParseServerTime(d.CreatedAt)
		if err != nil {
			return domain.Interruption{}, fmt.Errorf("interruption %d created_at: %w", d.ID, err)
		}
		in.CreatedAt = created
	}

	return in, nil
}

// domainToInterruptionCreateDTO converts the payload to its wire shape
func domainToInterruptionCreateDTO(in domain.NewInterruption) interruptionCreateDTO {
	return interruptionCreateDTO{
		Description: in.Description,
		EndTime:     domain.FormatServerTime(in.EndTime),
		SessionID:   in.SessionID,
		StartTime:   domain.FormatServerTime(in.StartTime),
		Type:        string(in.Type),
	}
}

// userDTOToDomain converts a wire user to domain.User
func userDTOToDomain(d userDTO) (domain.User, error) {
	u := domain.User{
		Email:    d.Email,
		ID:       d.ID,
		IsActive: d.IsActive,
		Name:     d.Name,
	}
	if d.CreatedAt != "" {
		created, err := domain.ParseServerTime(d.CreatedAt)
		if err != nil {
			return domain.User{}, fmt.Errorf("user %d created_at: %w", d.ID, err)
		}
		u.CreatedAt = created
	}
	return u, nil
}
