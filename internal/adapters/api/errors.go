package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hyperfocus/hyperfocus/internal/domain"
)

// maxErrorBody caps how much of a non-JSON error body is echoed back
const maxErrorBody = 200

// Error is a non-2xx response. Detail is the server's human message.
type Error struct {
	Detail     string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return e.Detail
}

// Unwrap maps well-known statuses onto domain sentinels so callers can use errors.Is
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnprocessableEntity:
		return domain.ErrValidation
	}
	return nil
}

// validationItem is one entry of a FastAPI 422 detail array
type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func newError(resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	return &Error{
		Detail:     parseDetail(body),
		StatusCode: resp.StatusCode,
	}
}

// parseDetail extracts {"detail": ...} where detail is a string or a list of
// validation items. Anything else falls back to the raw body.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		text := strings.TrimSpace(string(body))
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody] + "..."
		}
		return text
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var items []validationItem
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if field := fieldFromLoc(item.Loc); field != "" {
				parts = append(parts, field+": "+item.Msg)
			} else {
				parts = append(parts, item.Msg)
			}
		}
		return strings.Join(parts, "; ")
	}

	return strings.TrimSpace(string(envelope.Detail))
}

// fieldFromLoc returns the last named element of a loc path, skipping "body"
func fieldFromLoc(loc []any) string {
	for i := len(loc) - 1; i >= 0; i-- {
		if s, ok := loc[i].(string); ok && s != "body" {
			return s
		}
	}
	return ""
}
