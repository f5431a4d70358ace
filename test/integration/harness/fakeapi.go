package harness

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// TestEmail and TestPassword are the credentials Login uses
	TestEmail    = "test@example.com"
	TestPassword = "secret123"

	serverTimeLayout = "2006-01-02T15:04:05.000000"
)

type fakeUser struct {
	Email    string
	ID       int
	Name     string
	Password string
	Token    string
}

type fakeSession struct {
	EndTime   *time.Time
	ID        int
	StartTime time.Time
	UserID    int
}

type fakeInterruption struct {
	Description string
	EndTime     time.Time
	ID          int
	SessionID   int
	StartTime   time.Time
	Type        string
	UserID      int
}

// FakeAPI is an in-memory stand-in for the HyperFocus REST API. It speaks
// the same wire format: naive UTC timestamps, bearer tokens and
// {"detail": ...} error bodies.
type FakeAPI struct {
	interruptions []*fakeInterruption
	mu            sync.Mutex
	nextID        int
	server        *httptest.Server
	sessions      []*fakeSession
	users         []*fakeUser
}

// NewFakeAPI starts a fake API that is shut down when the test completes.
func NewFakeAPI(tb testing.TB) *FakeAPI {
	tb.Helper()

	f := &FakeAPI{nextID: 1}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login/access-token", f.login)
		r.Post("/register", f.register)

		r.Group(func(r chi.Router) {
			r.Use(f.requireUser)
			r.Get("/users/me", f.me)
			r.Get("/sessions/", f.listSessions)
			r.Post("/sessions/start", f.startSession)
			r.Get("/sessions/{id}", f.getSession)
			r.Post("/sessions/{id}/end", f.endSession)
			r.Post("/interruptions/", f.createInterruption)
			r.Get("/interruptions/session/{id}", f.listInterruptions)
			r.Get("/stats/insights", f.insights)
			r.Get("/stats/summary", f.summary)
			r.Get("/stats/interruption-types", f.interruptionTypes)
			r.Get("/stats/productive-hours", f.productiveHours)
			r.Get("/stats/peak-distraction-time", f.peakDistraction)
			r.Get("/stats/weekly-pattern", f.weeklyPattern)
		})
	})

	f.server = httptest.NewServer(r)
	tb.Cleanup(f.server.Close)
	return f
}

// URL returns the API base URL including the /api/v1 prefix.
func (f *FakeAPI) URL() string {
	return f.server.URL + "/api/v1"
}

// AddUser registers an account directly, bypassing the HTTP layer.
func (f *FakeAPI) AddUser(email, password, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addUserLocked(email, password, name)
}

// AddEndedSession seeds a finished session for the first user.
func (f *FakeAPI) AddEndedSession(start time.Time, length time.Duration) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	end := start.Add(length).UTC()
	s := &fakeSession{EndTime: &end, ID: f.id(), StartTime: start.UTC(), UserID: f.users[0].ID}
	f.sessions = append(f.sessions, s)
	return s.ID
}

func (f *FakeAPI) id() int {
	id := f.nextID
	f.nextID++
	return id
}

func (f *FakeAPI) addUserLocked(email, password, name string) *fakeUser {
	u := &fakeUser{
		Email:    email,
		ID:       f.id(),
		Name:     name,
		Password: password,
		Token:    "token-" + strconv.Itoa(f.nextID),
	}
	f.users = append(f.users, u)
	return u
}

type userKey struct{}

func (f *FakeAPI) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		f.mu.Lock()
		var user *fakeUser
		for _, u := range f.users {
			if token != "" && u.Token == token {
				user = u
			}
		}
		f.mu.Unlock()

		if user == nil {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r, user)))
	})
}

func (f *FakeAPI) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == r.PostForm.Get("username") && u.Password == r.PostForm.Get("password") {
			writeJSON(w, http.StatusOK, map[string]string{"access_token": u.Token, "token_type": "bearer"})
			return
		}
	}
	writeDetail(w, http.StatusBadRequest, "Incorrect email or password")
}

func (f *FakeAPI) register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == in.Email {
			writeDetail(w, http.StatusBadRequest, "The user with this email already exists in the system.")
			return
		}
	}
	writeJSON(w, http.StatusOK, userJSON(f.addUserLocked(in.Email, in.Password, in.Name)))
}

func (f *FakeAPI) me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userJSON(userFrom(r)))
}

func (f *FakeAPI) listSessions(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	out := []map[string]any{}
	for i := len(f.sessions) - 1; i >= 0; i-- {
		if s := f.sessions[i]; s.UserID == user.ID {
			out = append(out, sessionJSON(s))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) startSession(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	s := &fakeSession{ID: f.id(), StartTime: time.Now().UTC(), UserID: user.ID}
	f.sessions = append(f.sessions, s)
	writeJSON(w, http.StatusOK, sessionJSON(s))
}

func (f *FakeAPI) getSession(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.findSession(r)
	if s == nil {
		writeDetail(w, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, http.StatusOK, sessionJSON(s))
}

func (f *FakeAPI) endSession(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.findSession(r)
	if s == nil {
		writeDetail(w, http.StatusNotFound, "Session not found")
		return
	}
	end := time.Now().UTC()
	s.EndTime = &end
	writeJSON(w, http.StatusOK, sessionJSON(s))
}

func (f *FakeAPI) findSession(r *http.Request) *fakeSession {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return nil
	}
	user := userFrom(r)
	for _, s := range f.sessions {
		if s.ID == id && s.UserID == user.ID {
			return s
		}
	}
	return nil
}

func (f *FakeAPI) createInterruption(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Description string `json:"description"`
		EndTime     string `json:"end_time"`
		SessionID   int    `json:"session_id"`
		StartTime   string `json:"start_time"`
		Type        string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	start, err := parseServerTime(in.StartTime)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid start_time")
		return
	}
	end, err := parseServerTime(in.EndTime)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid end_time")
		return
	}

	user := userFrom(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	in2 := &fakeInterruption{
		Description: in.Description,
		EndTime:     end,
		ID:          f.id(),
		SessionID:   in.SessionID,
		StartTime:   start,
		Type:        in.Type,
		UserID:      user.ID,
	}
	f.interruptions = append(f.interruptions, in2)
	writeJSON(w, http.StatusOK, interruptionJSON(in2))
}

func (f *FakeAPI) listInterruptions(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	f.mu.Lock()
	defer f.mu.Unlock()
	out := []map[string]any{}
	for _, in := range f.interruptions {
		if in.SessionID == id {
			out = append(out, interruptionJSON(in))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) insights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, []map[string]any{
		{"type": "productivity", "title": "Best Focus Time", "description": "You focus best around 9:00", "score": 0.8},
		{"type": "info", "title": "Keep Going", "description": "Log a few more sessions for better insights"},
	})
}

func (f *FakeAPI) summary(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	var worked, lost float64
	sessions, interruptions := 0, 0
	for _, s := range f.sessions {
		if s.UserID != user.ID || s.EndTime == nil {
			continue
		}
		sessions++
		worked += s.EndTime.Sub(s.StartTime).Seconds()
	}
	for _, in := range f.interruptions {
		if in.UserID == user.ID {
			interruptions++
			lost += in.EndTime.Sub(in.StartTime).Seconds()
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":                               user.ID,
		"range_days":                            rangeDays(r),
		"total_sessions":                        sessions,
		"total_time_worked_seconds":             worked,
		"total_interruptions":                   interruptions,
		"total_time_lost_seconds":               lost,
		"effective_time_seconds":                worked - lost,
		"interruptions_per_hour":                0.0,
		"average_interruption_duration_seconds": 0.0,
	})
}

func (f *FakeAPI) interruptionTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"counts": map[string]int{}, "proportions": map[string]float64{}, "total_interruptions": 0})
}

func (f *FakeAPI) productiveHours(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"hours": []any{}})
}

func (f *FakeAPI) peakDistraction(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"peak_hour": nil, "peak_interruptions": 0, "total_interruptions": 0})
}

func (f *FakeAPI) weeklyPattern(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"days": []any{}})
}

func rangeDays(r *http.Request) int {
	days, err := strconv.Atoi(strings.TrimSuffix(r.URL.Query().Get("range"), "d"))
	if err != nil {
		return 7
	}
	return days
}

func userJSON(u *fakeUser) map[string]any {
	return map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"is_active":  true,
		"created_at": time.Now().UTC().Format(serverTimeLayout),
	}
}

func sessionJSON(s *fakeSession) map[string]any {
	var end any
	if s.EndTime != nil {
		end = s.EndTime.Format(serverTimeLayout)
	}
	return map[string]any{
		"id":         s.ID,
		"user_id":    s.UserID,
		"start_time": s.StartTime.Format(serverTimeLayout),
		"end_time":   end,
		"created_at": s.StartTime.Format(serverTimeLayout),
	}
}

func interruptionJSON(in *fakeInterruption) map[string]any {
	return map[string]any{
		"id":          in.ID,
		"user_id":     in.UserID,
		"session_id":  in.SessionID,
		"type":        in.Type,
		"description": in.Description,
		"start_time":  in.StartTime.Format(serverTimeLayout),
		"end_time":    in.EndTime.Format(serverTimeLayout),
		"duration":    int(in.EndTime.Sub(in.StartTime).Seconds()),
		"created_at":  in.StartTime.Format(serverTimeLayout),
	}
}

func parseServerTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Parse(time.RFC3339, s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
