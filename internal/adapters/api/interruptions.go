package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// CreateInterruption implements InterruptionAPI.CreateInterruption
func (c *Client) CreateInterruption(ctx context.Context, in domain.NewInterruption) (*domain.Interruption, error) {
	var out interruptionDTO
	if err := c.postJSON(ctx, "/interruptions/", domainToInterruptionCreateDTO(in), &out); err != nil {
		return nil, err
	}
	created, err := interruptionDTOToDomain(out)
	if err != nil {
		return nil, fmt.Errorf("failed to read interruption: %w", err)
	}
	return &created, nil
}

// ListInterruptions implements InterruptionAPI.ListInterruptions
func (c *Client) ListInterruptions(ctx context.Context, sessionID int) ([]domain.Interruption, error) {
	var out []interruptionDTO
	if err := c.get(ctx, "/interruptions/session/"+strconv.Itoa(sessionID), nil, &out); err != nil {
		return nil, err
	}

	result := make([]domain.Interruption, 0, len(out))
	for _, d := range out {
		in, err := interruptionDTOToDomain(d)
		if err != nil {
			return nil, fmt.Errorf("failed to read interruptions: %w", err)
		}
		result = append(result, in)
	}
	return result, nil
}
