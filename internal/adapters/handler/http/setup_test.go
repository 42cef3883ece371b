package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-fit/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-fit/internal/adapters/store"
	"github.com/comitanigiacomo/kanso-fit/internal/core/services"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type stubSubmitter struct {
	accept bool
	drafts []services.SaveNutritionInput
}

func (s *stubSubmitter) Submit(draft services.SaveNutritionInput) bool {
	s.drafts = append(s.drafts, draft)
	return s.accept
}

// monday 2024-06-10, mid-morning UTC
var testStart = time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

func newTestTracker() (*services.Tracker, *testClock) {
	clock := &testClock{now: testStart}
	adapter := services.NewStoreAdapter(store.NewMemoryStore(), nil)
	return services.NewTracker(adapter, time.UTC, services.WithClock(clock.Now)), clock
}

func setupRouter() (*gin.Engine, *testClock) {
	gin.SetMode(gin.TestMode)
	tracker, clock := newTestTracker()
	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		Tracker:   tracker,
		StartTime: time.Now(),
	})
	return router, clock
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}
