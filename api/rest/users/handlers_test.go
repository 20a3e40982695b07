package users

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/savant/server/internal/auth"
	"codeberg.org/savant/server/savant/conversions"
	"codeberg.org/savant/server/savant/users"
)

type mockFinder struct {
	user *users.User
	err  error
}

func (m *mockFinder) FindByID(_ context.Context, _ string) (*users.User, error) {
	return m.user, m.err
}

type mockQuota struct {
	remaining int64
}

func (m *mockQuota) Remaining(_ context.Context, _ auth.Identity) (int64, error) {
	return m.remaining, nil
}

type mockHistory struct {
	records []conversions.Record
	limit   int
}

func (m *mockHistory) RecentForUser(_ context.Context, _ string, limit int) ([]conversions.Record, error) {
	m.limit = limit
	return m.records, nil
}

type mockPlans struct {
	user     *users.User
	err      error
	lastID   string
	lastPlan string
}

func (m *mockPlans) UpdatePlan(_ context.Context, userID, plan string) (*users.User, error) {
	m.lastID = userID
	m.lastPlan = plan

	if m.err != nil {
		return nil, m.err
	}

	return m.user, nil
}

func newTestRouter(finder UserFinder, quotas QuotaReader, history HistoryLister, plans PlanUpdater) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api"), finder, quotas, history, plans)

	return router
}

func authedDo(t *testing.T, router *gin.Engine, plan auth.Plan, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	token, err := auth.GenerateJWT("u1", "ada@example.com", plan)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+token)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func authedGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	return authedDo(t, router, auth.PlanFree, http.MethodGet, path, nil)
}

func TestGetMeHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	router := newTestRouter(
		&mockFinder{user: &users.User{ID: "u1", Email: "ada@example.com", Plan: "free"}},
		&mockQuota{remaining: 3},
		&mockHistory{},
		&mockPlans{},
	)

	w := authedGet(t, router, "/api/users/me")

	require.Equal(t, http.StatusOK, w.Code)

	var resp MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, int64(3), resp.Remaining)
}

func TestGetMeHandlerRequiresAuth(t *testing.T) {
	router := newTestRouter(&mockFinder{}, &mockQuota{}, &mockHistory{}, &mockPlans{})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetMyConversionsHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	history := &mockHistory{records: []conversions.Record{
		{ID: "c1", ConversionType: "docx-to-pdf", Status: conversions.StatusSuccess},
	}}
	router := newTestRouter(&mockFinder{}, &mockQuota{}, history, &mockPlans{})

	w := authedGet(t, router, "/api/users/me/conversions?limit=5")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, history.limit)
	assert.Contains(t, w.Body.String(), "docx-to-pdf")
}

func TestGetMyConversionsHandlerRejectsBadLimit(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	router := newTestRouter(&mockFinder{}, &mockQuota{}, &mockHistory{}, &mockPlans{})

	w := authedGet(t, router, "/api/users/me/conversions?limit=9000")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserPlanHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	plans := &mockPlans{user: &users.User{ID: "u2", Email: "bob@example.com", Plan: "premium"}}
	router := newTestRouter(&mockFinder{}, &mockQuota{}, &mockHistory{}, plans)

	body := strings.NewReader(`{"plan": "premium"}`)
	w := authedDo(t, router, auth.PlanAdmin, http.MethodPut, "/api/users/u2/plan", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u2", plans.lastID)
	assert.Equal(t, "premium", plans.lastPlan)
	assert.Contains(t, w.Body.String(), `"plan":"premium"`)
}

func TestUpdateUserPlanHandlerRejectsNonAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	plans := &mockPlans{}
	router := newTestRouter(&mockFinder{}, &mockQuota{}, &mockHistory{}, plans)

	body := strings.NewReader(`{"plan": "premium"}`)
	w := authedDo(t, router, auth.PlanPremium, http.MethodPut, "/api/users/u2/plan", body)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, plans.lastID)
}

func TestUpdateUserPlanHandlerRejectsUnknownPlan(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	router := newTestRouter(&mockFinder{}, &mockQuota{}, &mockHistory{}, &mockPlans{})

	body := strings.NewReader(`{"plan": "enterprise"}`)
	w := authedDo(t, router, auth.PlanAdmin, http.MethodPut, "/api/users/u2/plan", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserPlanHandlerUnknownUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	router := newTestRouter(&mockFinder{}, &mockQuota{}, &mockHistory{}, &mockPlans{err: users.ErrNotFound})

	body := strings.NewReader(`{"plan": "free"}`)
	w := authedDo(t, router, auth.PlanAdmin, http.MethodPut, "/api/users/ghost/plan", body)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
