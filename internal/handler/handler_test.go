package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"toneskill/internal/domain"
	"toneskill/internal/service"
	"toneskill/internal/testutil"
	"toneskill/internal/vocab"
)

type noProducts struct{}

func (noProducts) Fetch(ctx context.Context, apiEndpoint, accessToken, locale string) []service.Product {
	return nil
}

func newTestRouter(t *testing.T, repo *testutil.MockAttributeRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, _, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := testutil.NewTestLogger()
	purchase := service.NewPurchaseService(&testutil.MockNotifier{}, logger)
	sessions := service.NewSessionService(repo, noProducts{}, purchase, "https://assets.test/", logger)

	r := gin.New()
	NewHandler(sessions, db, logger).Register(r)
	return r
}

func postEvent(t *testing.T, r *gin.Engine, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/alexa", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_StopIntent(t *testing.T) {
	repo := new(testutil.MockAttributeRepository)
	repo.On("Put", "user-1", mock.Anything).Return(nil)

	r := newTestRouter(t, repo)

	ev := testutil.NewIntentEvent("user-1", domain.IntentStop, map[string]any{"visitCount": 2})
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	w := postEvent(t, r, body)

	assert.Equal(t, http.StatusOK, w.Code)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Response.ShouldEndSession)
	assert.Contains(t, env.Response.OutputSpeech.SSML, vocab.Messages("en-US").Stop)
}

func TestHandler_MalformedEvent(t *testing.T) {
	r := newTestRouter(t, new(testutil.MockAttributeRepository))

	w := postEvent(t, r, []byte(`{not json`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// An event of an unknown type still gets exactly one handler path:
// the closing response.
func TestHandler_UnknownEventType(t *testing.T) {
	repo := new(testutil.MockAttributeRepository)
	repo.On("Get", "user-2").Return(map[string]any{}, nil)
	repo.On("Put", "user-2", mock.Anything).Return(nil)

	r := newTestRouter(t, repo)

	ev := testutil.NewIntentEvent("user-2", "", nil)
	ev.Request.Type = "Mystery.Request"
	ev.Request.Intent = nil
	ev.Session = nil
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	w := postEvent(t, r, body)

	assert.Equal(t, http.StatusOK, w.Code)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Response.ShouldEndSession)
}

func TestHandler_Launch(t *testing.T) {
	repo := new(testutil.MockAttributeRepository)
	repo.On("Get", "user-3").Return(map[string]any{}, nil)
	repo.On("Put", "user-3", mock.Anything).Return(nil)

	r := newTestRouter(t, repo)

	body, err := json.Marshal(testutil.NewLaunchEvent("user-3"))
	require.NoError(t, err)

	w := postEvent(t, r, body)

	assert.Equal(t, http.StatusOK, w.Code)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Response.ShouldEndSession)
	assert.Contains(t, env.Response.OutputSpeech.SSML, vocab.Messages("en-US").Welcome)
}
