package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &Config{
		Address:     ":0",
		Environment: "test",
		Cache: CacheConfig{
			LRUCapacity:       8,
			LRUTTL:            time.Minute,
			HistoryMaxEntries: 3,
		},
	}
	s := NewServer(cfg, zap.NewNop())
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s
}

func do(s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func doRaw(s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := do(s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsExposed(t *testing.T) {
	s := newTestServer(t)

	// Drive one request through the middleware so the counter vec has
	// at least one labeled child to export.
	w := do(s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(s, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "go_goroutines")
	assert.Contains(t, body, "openclaw_gateway_requests_total")
	assert.Contains(t, body, `method="GET"`)
	assert.Contains(t, body, `path="/health"`)
	assert.Contains(t, body, `status="200"`)
}

func TestCacheRoundTrip(t *testing.T) {
	s := newTestServer(t)

	w := do(s, http.MethodPut, "/api/v1/cache/greeting", gin.H{"value": "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(s, http.MethodGet, "/api/v1/cache/greeting", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", decode(t, w)["value"])

	w = do(s, http.MethodGet, "/api/v1/cache", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = do(s, http.MethodDelete, "/api/v1/cache/greeting", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["deleted"])

	w = do(s, http.MethodGet, "/api/v1/cache/greeting", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCachePutExpires(t *testing.T) {
	s := newTestServer(t)

	w := do(s, http.MethodPut, "/api/v1/cache/short", gin.H{"value": "v", "ttl_ms": 1})
	require.Equal(t, http.StatusOK, w.Code)

	time.Sleep(10 * time.Millisecond)

	w = do(s, http.MethodPost, "/api/v1/cache/cleanup", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["removed"])
}

func TestLRURoundTrip(t *testing.T) {
	s := newTestServer(t)

	w := do(s, http.MethodPut, "/api/v1/lru/k", gin.H{"value": "v"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(s, http.MethodGet, "/api/v1/lru/k", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "v", decode(t, w)["value"])

	w = do(s, http.MethodGet, "/api/v1/lru/other", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHistoryEndpoints(t *testing.T) {
	s := newTestServer(t)

	// Bound is 3; the oldest of four entries must fall off.
	for i := 1; i <= 4; i++ {
		w := do(s, http.MethodPost, "/api/v1/history/chat", gin.H{"timestamp": i, "content": "m"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := do(s, http.MethodGet, "/api/v1/history/chat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, float64(3), out["count"])

	w = do(s, http.MethodDelete, "/api/v1/history/chat", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(s, http.MethodGet, "/api/v1/history/chat", nil)
	assert.Equal(t, float64(0), decode(t, w)["count"])
}

func TestHashEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := do(s, http.MethodPost, "/api/v1/hash", gin.H{"data": "hello"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		decode(t, w)["digest"])

	w = do(s, http.MethodPost, "/api/v1/hash", gin.H{"data": "hello", "algorithm": "xxh64"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["digest"])

	w = do(s, http.MethodPost, "/api/v1/hash", gin.H{"data": "x", "algorithm": "md5"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJSONNormalizeEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRaw(s, http.MethodPost, "/api/v1/json/normalize", []byte(` { "a" : 1 } `))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"a":1}`, w.Body.String())

	w = doRaw(s, http.MethodPost, "/api/v1/json/normalize", []byte(`{"broken"`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJSONGetEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRaw(s, http.MethodPost, "/api/v1/json/get?path=a.b", []byte(`{"a":{"b":42}}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Body.String())

	w = doRaw(s, http.MethodPost, "/api/v1/json/get", []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImageEndpoints(t *testing.T) {
	s := newTestServer(t)

	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	w := doRaw(s, http.MethodPost, "/api/v1/image/info", buf.Bytes())
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, float64(20), out["width"])
	assert.Equal(t, float64(10), out["height"])
	assert.Equal(t, "png", out["format"])

	w = doRaw(s, http.MethodPost, "/api/v1/image/resize?width=5&height=5", buf.Bytes())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))

	w = doRaw(s, http.MethodPost, "/api/v1/image/info", []byte("junk"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRaw(s, http.MethodPost, "/api/v1/image/resize?width=abc&height=5", buf.Bytes())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompressRoundTripEndpoint(t *testing.T) {
	s := newTestServer(t)

	payload := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte("data"), 100))

	w := do(s, http.MethodPost, "/api/v1/compress", gin.H{"data": payload})
	require.Equal(t, http.StatusOK, w.Code)
	packed := decode(t, w)["compressed"].(string)

	w = do(s, http.MethodPost, "/api/v1/decompress", gin.H{"data": packed})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, payload, decode(t, w)["data"])

	w = do(s, http.MethodPost, "/api/v1/compress", gin.H{"data": payload, "codec": "brotli"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
