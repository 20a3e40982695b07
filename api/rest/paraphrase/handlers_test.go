package paraphrase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockParaphraser struct {
	result   string
	err      error
	lastMode string
}

func (m *mockParaphraser) Paraphrase(_ context.Context, _, mode string) (string, error) {
	m.lastMode = mode
	return m.result, m.err
}

func newTestRouter(p *mockParaphraser) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api"), p, "test-model")

	return router
}

func postJSON(router *gin.Engine, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/api/paraphrase", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestParaphraseHandler(t *testing.T) {
	mock := &mockParaphraser{result: "rewritten text"}
	router := newTestRouter(mock)

	w := postJSON(router, gin.H{"text": "original text", "mode": "formal"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp ParaphraseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "original text", resp.Original)
	assert.Equal(t, "rewritten text", resp.Paraphrased)
	assert.Equal(t, 2, resp.WordCount)
	assert.Equal(t, "formal", resp.Mode)
	assert.Equal(t, "test-model", resp.Model)
	assert.Equal(t, "formal", mock.lastMode)
}

func TestParaphraseHandlerDefaultsMode(t *testing.T) {
	mock := &mockParaphraser{result: "out"}
	router := newTestRouter(mock)

	w := postJSON(router, gin.H{"text": "some text"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "standard", mock.lastMode)
}

func TestParaphraseHandlerMissingText(t *testing.T) {
	router := newTestRouter(&mockParaphraser{})

	w := postJSON(router, gin.H{"mode": "formal"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParaphraseHandlerFreeWordLimit(t *testing.T) {
	router := newTestRouter(&mockParaphraser{result: "out"})

	long := strings.TrimSpace(strings.Repeat("word ", freeWordLimit+1))

	w := postJSON(router, gin.H{"text": long})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "word limit")
}

func TestParaphraseHandlerUpstreamFailure(t *testing.T) {
	router := newTestRouter(&mockParaphraser{err: errors.New("upstream unavailable")})

	w := postJSON(router, gin.H{"text": "some text"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
