package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// ListSessions implements SessionAPI.ListSessions. The server orders newest first.
func (c *Client) ListSessions(ctx context.Context) ([]domain.Session, error) {
	var out []sessionDTO
	if err := c.get(ctx, "/sessions/", nil, &out); err != nil {
		return nil, err
	}
	sessions, err := sessionDTOsToDomain(out)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}
	return sessions, nil
}

// GetSession implements SessionAPI.GetSession
func (c *Client) GetSession(ctx context.Context, id int) (*domain.Session, error) {
	var out sessionDTO
	if err := c.get(ctx, "/sessions/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return toSession(out)
}

// StartSession implements SessionAPI.StartSession
func (c *Client) StartSession(ctx context.Context) (*domain.Session, error) {
	var out sessionDTO
	if err := c.postJSON(ctx, "/sessions/start", struct{}{}, &out); err != nil {
		return nil, err
	}
	return toSession(out)
}

// EndSession implements SessionAPI.EndSession
func (c *Client) EndSession(ctx context.Context, id int) (*domain.Session, error) {
	var out sessionDTO
	if err := c.postJSON(ctx, "/sessions/"+strconv.Itoa(id)+"/end", struct{}{}, &out); err != nil {
		return nil, err
	}
	return toSession(out)
}

func toSession(d sessionDTO) (*domain.Session, error) {
	s, err := sessionDTOToDomain(d)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return &s, nil
}
