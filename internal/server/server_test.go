package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcpheron/ancient-number-converter/internal/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestServer() *Server {
	return New(Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second}, logging.Discard())
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	w := do(t, setupTestServer(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestSystems(t *testing.T) {
	s := setupTestServer()

	w := do(t, s, http.MethodGet, "/v1/systems", "")
	require.Equal(t, http.StatusOK, w.Code)
	systems := decode(t, w)["systems"].([]any)
	assert.Len(t, systems, 7)
	first := systems[0].(map[string]any)
	assert.Equal(t, "mayan", first["id"])
	assert.Equal(t, "lsf", first["order"])

	w = do(t, s, http.MethodGet, "/v1/systems/greekAttic", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Greek Attic", decode(t, w)["name"])

	w = do(t, s, http.MethodGet, "/v1/systems/etruscan", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEncode(t *testing.T) {
	s := setupTestServer()

	tests := []struct {
		path    string
		status  int
		display string
	}{
		{"/v1/systems/roman/encode/1999", http.StatusOK, "MCMXCIX"},
		{"/v1/systems/babylonian/encode/3661", http.StatusOK, "𒁹 | 𒁹 | 𒁹"},
		{"/v1/systems/roman/encode/4000", http.StatusBadRequest, ""},
		{"/v1/systems/roman/encode/many", http.StatusBadRequest, ""},
		{"/v1/systems/etruscan/encode/1", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := do(t, s, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.status, w.Code)
			if tt.display != "" {
				assert.Equal(t, tt.display, decode(t, w)["display"])
			}
		})
	}
}

func TestVerify(t *testing.T) {
	s := setupTestServer()

	w := do(t, s, http.MethodGet, "/v1/systems/quipu/verify/305", "")
	require.Equal(t, http.StatusOK, w.Code)
	v := decode(t, w)["verification"].(map[string]any)
	assert.Equal(t, true, v["passed"])

	w = do(t, s, http.MethodGet, "/v1/systems/roman/verify/5000", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	v = decode(t, w)["verification"].(map[string]any)
	assert.Equal(t, "Out of range", v["error"])
}

func TestShowcase(t *testing.T) {
	s := setupTestServer()

	w := do(t, s, http.MethodGet, "/v1/systems/roman/showcase", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["rows"], 7)

	w = do(t, s, http.MethodGet, "/v1/systems/etruscan/showcase", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRun(t *testing.T) {
	s := setupTestServer()

	w := do(t, s, http.MethodPost, "/v1/run", `{"op":"decode","system":"mayan","input":"• ⠀ ⠀"}`)
	require.Equal(t, http.StatusOK, w.Code)
	decoded := decode(t, w)["decoded"].(map[string]any)
	assert.EqualValues(t, 400, decoded["value"])

	w = do(t, s, http.MethodPost, "/v1/run", `{"op":"decode","system":"quipu","input":["●"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPost, "/v1/run", `{"op":"systems"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, s, http.MethodPost, "/v1/run", `{"op":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunStatusCodes(t *testing.T) {
	s := setupTestServer()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid op with unknown system", `{"op":"explode","system":"etruscan","number":1}`, http.StatusBadRequest},
		{"missing number with unknown system", `{"op":"encode","system":"etruscan"}`, http.StatusBadRequest},
		{"valid op with unknown system", `{"op":"encode","system":"etruscan","number":1}`, http.StatusNotFound},
		{"compare needs no system", `{"op":"compare","number":12}`, http.StatusOK},
		{"history of unknown system", `{"op":"history","system":"etruscan"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/v1/run", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			if tt.want == http.StatusBadRequest {
				assert.Contains(t, decode(t, w)["error"], "invalid request")
			}
		})
	}
}

func TestCompare(t *testing.T) {
	s := setupTestServer()

	w := do(t, s, http.MethodGet, "/v1/compare/1999", "")
	require.Equal(t, http.StatusOK, w.Code)
	comparison := decode(t, w)["comparison"].([]any)
	require.Len(t, comparison, 7)
	roman := comparison[3].(map[string]any)
	assert.Equal(t, "roman", roman["system"])
	assert.Equal(t, "MCMXCIX", roman["display"])

	w = do(t, s, http.MethodGet, "/v1/compare/-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodGet, "/v1/compare/lots", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistory(t *testing.T) {
	s := setupTestServer()

	w := do(t, s, http.MethodGet, "/v1/systems/babylonian/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	entry := decode(t, w)["history"].(map[string]any)
	assert.Equal(t, "babylonian", entry["system"])
	assert.Len(t, entry["facts"], 3)

	w = do(t, s, http.MethodGet, "/v1/systems/etruscan/history", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetrics(t *testing.T) {
	s := setupTestServer()
	do(t, s, http.MethodGet, "/v1/systems/roman/encode/12", "")

	w := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `numerals_conversions_total{op="encode",outcome="ok",system="roman"}`)
	assert.Contains(t, w.Body.String(), "numerals_http_request_duration_seconds")
}

func TestRunShutsDown(t *testing.T) {
	s := setupTestServer()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
