package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/ports/mocks"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api/v1/", opts...)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestListSessions_SendsHeadersAndParsesNaiveTimes(t *testing.T) {
	tokens := mocks.NewMockTokenSource(t)
	tokens.EXPECT().Token(mock.Anything).Return("secret", nil)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/sessions/", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, `[
			{"id": 2, "user_id": 1, "start_time": "2024-03-01T10:00:00", "end_time": null, "created_at": "2024-03-01T10:00:00"},
			{"id": 1, "user_id": 1, "start_time": "2024-03-01T08:00:00.5", "end_time": "2024-03-01T08:25:00Z", "created_at": "2024-03-01T08:00:00"}
		]`)
	}, WithTokenSource(tokens))

	sessions, err := client.ListSessions(context.Background())

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, 2, sessions[0].ID)
	assert.Nil(t, sessions[0].EndTime)
	assert.True(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC).Equal(sessions[0].StartTime))
	require.NotNil(t, sessions[1].EndTime)
	assert.Equal(t, 25*time.Minute-500*time.Millisecond, sessions[1].EndTime.Sub(sessions[1].StartTime))
}

func TestDo_OmitsAuthorizationWithoutToken(t *testing.T) {
	tokens := mocks.NewMockTokenSource(t)
	tokens.EXPECT().Token(mock.Anything).Return("", nil)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `[]`)
	}, WithTokenSource(tokens))

	sessions, err := client.ListSessions(context.Background())

	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestDo_TokenSourceError(t *testing.T) {
	tokens := mocks.NewMockTokenSource(t)
	tokens.EXPECT().Token(mock.Anything).Return("", errors.New("disk on fire"))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	}, WithTokenSource(tokens))

	_, err := client.ListSessions(context.Background())

	assert.ErrorContains(t, err, "disk on fire")
}

func TestStartSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sessions/start", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{}`, string(body))
		writeJSON(w, http.StatusCreated, `{"id": 9, "user_id": 1, "start_time": "2024-03-01T10:00:00", "end_time": null, "created_at": "2024-03-01T10:00:00"}`)
	})

	session, err := client.StartSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 9, session.ID)
	assert.True(t, session.IsActive())
}

func TestStartSession_SurfacesDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"detail": "User already has an active session"}`)
	})

	_, err := client.StartSession(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "User already has an active session", err.Error())
}

func TestEndSession_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sessions/77/end", r.URL.Path)
		writeJSON(w, http.StatusNotFound, `{"detail": "Session not found"}`)
	})

	_, err := client.EndSession(context.Background(), 77)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Session not found")
}

func TestGetSession_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail": "Not authenticated"}`)
	})

	_, err := client.GetSession(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestListSessions_MalformedTimestamp(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id": 1, "user_id": 1, "start_time": "soon", "end_time": null, "created_at": ""}]`)
	})

	_, err := client.ListSessions(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidTimestamp)
}

func TestCreateInterruption_Payload(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	in, err := domain.BuildInterruption(5, domain.InterruptionDigital, "Slack ping", 3, now)
	require.NoError(t, err)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/interruptions/", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(5), body["session_id"])
		assert.Equal(t, "digital", body["type"])
		assert.Equal(t, "Slack ping", body["description"])
		assert.Equal(t, "2024-03-01T10:00:00.000Z", body["start_time"])
		assert.Equal(t, "2024-03-01T10:03:00.000Z", body["end_time"])
		writeJSON(w, http.StatusCreated, `{"id": 3, "session_id": 5, "user_id": 1, "type": "digital", "description": "Slack ping",
			"start_time": "2024-03-01T10:00:00", "end_time": "2024-03-01T10:03:00", "duration": 180, "created_at": "2024-03-01T10:00:01"}`)
	})

	created, err := client.CreateInterruption(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, 180, created.Duration)
	assert.Equal(t, domain.InterruptionDigital, created.Type)
}

func TestCreateInterruption_ValidationDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, `{"detail": [{"loc": ["body", "description"], "msg": "String should have at least 1 character", "type": "string_too_short"}]}`)
	})

	_, err := client.CreateInterruption(context.Background(), domain.NewInterruption{SessionID: 1})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.EqualError(t, err, "description: String should have at least 1 character")
}

func TestListInterruptions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/interruptions/session/5", r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"id": 1, "session_id": 5, "user_id": 1, "type": "unknown", "description": "legacy",
			"start_time": "2024-03-01T10:00:00", "end_time": "2024-03-01T10:01:00", "duration": 60, "created_at": "2024-03-01T10:00:00"}]`)
	})

	list, err := client.ListInterruptions(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.InterruptionUnknown, list[0].Type)
}

func TestListInsights(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/stats/insights", r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"type": "warning", "title": "Distraction Alert", "description": "Slack", "score": 70}]`)
	})

	insights, err := client.ListInsights(context.Background())

	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, domain.InsightWarning, insights[0].Type)
	require.NotNil(t, insights[0].Score)
	assert.Equal(t, 70.0, *insights[0].Score)
}

func TestStatsEndpoints_SendRange(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "30d", r.URL.Query().Get("range"))
		switch r.URL.Path {
		case "/api/v1/stats/summary":
			writeJSON(w, http.StatusOK, `{"total_sessions": 4, "total_interruptions": 2, "range_days": 30}`)
		case "/api/v1/stats/interruption-types":
			writeJSON(w, http.StatusOK, `{"counts": {"digital": 2}, "proportions": {"digital": 1.0}, "total_interruptions": 2}`)
		case "/api/v1/stats/productive-hours":
			writeJSON(w, http.StatusOK, `{"hours": [{"hour": 9, "work_seconds": 3600, "interruptions": 1, "interruptions_per_hour": 1.0, "productivity_score": 90}]}`)
		case "/api/v1/stats/peak-distraction-time":
			writeJSON(w, http.StatusOK, `{"peak_hour": 14, "peak_interruptions": 2, "total_interruptions": 2}`)
		case "/api/v1/stats/weekly-pattern":
			writeJSON(w, http.StatusOK, `{"days": [{"weekday_index": 0, "day": "Mon", "work_seconds": 7200, "sessions": 2.0, "lost": 0.1}]}`)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	summary, err := client.Summary(ctx, "30d")
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalSessions)

	types, err := client.InterruptionTypes(ctx, "30d")
	require.NoError(t, err)
	assert.Equal(t, 2, types.Counts["digital"])

	hours, err := client.ProductiveHours(ctx, "30d")
	require.NoError(t, err)
	require.Len(t, hours, 1)
	assert.Equal(t, 90.0, hours[0].ProductivityScore)

	peak, err := client.PeakDistractionTime(ctx, "30d")
	require.NoError(t, err)
	require.NotNil(t, peak.PeakHour)
	assert.Equal(t, 14, *peak.PeakHour)

	days, err := client.WeeklyPattern(ctx, "30d")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 2.0, days[0].SessionHours)
}

func TestLogin_SendsForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/login/access-token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ada@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "supersecret", r.PostForm.Get("password"))
		writeJSON(w, http.StatusOK, `{"access_token": "tok", "token_type": "bearer"}`)
	})

	token, err := client.Login(context.Background(), "ada@example.com", "supersecret")

	require.NoError(t, err)
	assert.Equal(t, "tok", token.AccessToken)
}

func TestLogin_BadCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"detail": "Incorrect email or password"}`)
	})

	_, err := client.Login(context.Background(), "ada@example.com", "wrong")

	assert.EqualError(t, err, "Incorrect email or password")
}

func TestRegisterAndMe(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		user := `{"id": 1, "name": "Ada", "email": "ada@example.com", "is_active": true, "is_superuser": false, "created_at": "2024-03-01T10:00:00"}`
		switch r.URL.Path {
		case "/api/v1/register":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Ada", body["name"])
			writeJSON(w, http.StatusOK, user)
		case "/api/v1/users/me":
			writeJSON(w, http.StatusOK, user)
		}
	})
	ctx := context.Background()

	registered, err := client.Register(ctx, domain.Registration{Name: "Ada", Email: "ada@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, 1, registered.ID)

	me, err := client.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", me.Email)
	assert.True(t, me.IsActive)
}

func TestDo_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL)

	_, err := client.ListSessions(context.Background())

	assert.ErrorContains(t, err, "failed to reach server")
}

func TestParseDetail(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"string detail", `{"detail": "Session is already ended"}`, "Session is already ended"},
		{"validation array", `{"detail": [{"loc": ["body", "end_time"], "msg": "bad"}, {"loc": [], "msg": "also bad"}]}`, "end_time: bad; also bad"},
		{"plain text", "Internal Server Error", "Internal Server Error"},
		{"empty", "", ""},
		{"object detail", `{"detail": {"code": 1}}`, `{"code": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseDetail([]byte(tt.body)))
		})
	}
}

func TestError_MessageWithoutDetail(t *testing.T) {
	err := &Error{StatusCode: http.StatusBadGateway}

	assert.Equal(t, "server returned 502 Bad Gateway", err.Error())
	assert.NoError(t, err.Unwrap())
}
