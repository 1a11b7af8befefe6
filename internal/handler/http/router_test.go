package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naumur/presence-backend-go/internal/config"
	"github.com/naumur/presence-backend-go/internal/domain/presence"
	"github.com/naumur/presence-backend-go/internal/domain/user"
	"github.com/naumur/presence-backend-go/internal/pkg/jwt"
)

// stubHandlers answers every route with 200 so the tests observe only
// the middleware chain.
type stubHandlers struct{}

func ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func (stubHandlers) Login(w http.ResponseWriter, r *http.Request)              { ok(w, r) }
func (stubHandlers) Logout(w http.ResponseWriter, r *http.Request)             { ok(w, r) }
func (stubHandlers) Refresh(w http.ResponseWriter, r *http.Request)            { ok(w, r) }
func (stubHandlers) GetWeek(w http.ResponseWriter, r *http.Request)            { ok(w, r) }
func (stubHandlers) SaveDay(w http.ResponseWriter, r *http.Request)            { ok(w, r) }
func (stubHandlers) CheckIn(w http.ResponseWriter, r *http.Request)            { ok(w, r) }
func (stubHandlers) CheckOut(w http.ResponseWriter, r *http.Request)           { ok(w, r) }
func (stubHandlers) Pending(w http.ResponseWriter, r *http.Request)            { ok(w, r) }
func (stubHandlers) Verify(w http.ResponseWriter, r *http.Request)             { ok(w, r) }
func (stubHandlers) Create(w http.ResponseWriter, r *http.Request)             { ok(w, r) }
func (stubHandlers) List(w http.ResponseWriter, r *http.Request)               { ok(w, r) }
func (stubHandlers) Get(w http.ResponseWriter, r *http.Request)                { ok(w, r) }
func (stubHandlers) Me(w http.ResponseWriter, r *http.Request)                 { ok(w, r) }
func (stubHandlers) UploadProfileImage(w http.ResponseWriter, r *http.Request) { ok(w, r) }
func (stubHandlers) Deactivate(w http.ResponseWriter, r *http.Request)         { ok(w, r) }
func (stubHandlers) Approve(w http.ResponseWriter, r *http.Request)            { ok(w, r) }
func (stubHandlers) Reject(w http.ResponseWriter, r *http.Request)             { ok(w, r) }
func (stubHandlers) Dashboard(w http.ResponseWriter, r *http.Request)          { ok(w, r) }
func (stubHandlers) History(w http.ResponseWriter, r *http.Request)            { ok(w, r) }
func (stubHandlers) WeekMatrix(w http.ResponseWriter, r *http.Request)         { ok(w, r) }
func (stubHandlers) Export(w http.ResponseWriter, r *http.Request)             { ok(w, r) }
func (stubHandlers) RunBackup(w http.ResponseWriter, r *http.Request)          { ok(w, r) }
func (stubHandlers) Logs(w http.ResponseWriter, r *http.Request)               { ok(w, r) }
func (stubHandlers) OnlineToday(w http.ResponseWriter, r *http.Request)        { ok(w, r) }

type stubPresenceService struct{}

func (stubPresenceService) Heartbeat(ctx context.Context, userID, sessionKey, ip string) {}
func (stubPresenceService) OnlineToday(ctx context.Context) (presence.OnlineResponse, error) {
	return presence.OnlineResponse{}, nil
}
func (stubPresenceService) OnlineMap(ctx context.Context) (map[string]bool, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, jwtSvc jwt.Service) http.Handler {
	t.Helper()
	return NewRouter(RouterDeps{
		Config:        &config.Config{},
		JWTService:    jwtSvc,
		PresenceSvc:   stubPresenceService{},
		Auth:          stubHandlers{},
		Attendance:    stubHandlers{},
		Employee:      stubHandlers{},
		Department:    stubHandlers{},
		Justification: stubHandlers{},
		Report:        stubHandlers{},
		System:        stubHandlers{},
	})
}

func TestReportRoutesRoleGating(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", "1h", "24h", "12h")
	router := newTestRouter(t, jwtSvc)

	supToken, _, err := jwtSvc.GenerateAccessToken("sup-1", "sup", user.RoleSupervisor, "sess-1")
	require.NoError(t, err)
	admToken, _, err := jwtSvc.GenerateAccessToken("adm-1", "adm", user.RoleAdmin, "sess-2")
	require.NoError(t, err)
	empToken, _, err := jwtSvc.GenerateAccessToken("emp-1", "emp", user.RoleEmployee, "sess-3")
	require.NoError(t, err)

	get := func(path, token string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	// Supervisors reach history, the week matrix and exports
	assert.Equal(t, http.StatusOK, get("/api/v1/reports/history", supToken))
	assert.Equal(t, http.StatusOK, get("/api/v1/reports/week", supToken))
	assert.Equal(t, http.StatusOK, get("/api/v1/reports/export", supToken))

	// The dashboard stays admin only
	assert.Equal(t, http.StatusForbidden, get("/api/v1/reports/dashboard", supToken))
	assert.Equal(t, http.StatusOK, get("/api/v1/reports/dashboard", admToken))

	// Plain employees reach none of it
	assert.Equal(t, http.StatusForbidden, get("/api/v1/reports/history", empToken))
	assert.Equal(t, http.StatusForbidden, get("/api/v1/reports/dashboard", empToken))
}
