package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venue/config"
	otelMocks "venue/infras/otel/mocks"
	cacheMocks "venue/shared/cache/mocks"
	"venue/shared/constant"
	"venue/transport/http/middleware"
)

func ok() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	handler := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(true), cache).RateLimit()(ok())

	key := "limiter:10.0.0.1:probe"

	gomock.InOrder(
		cache.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(1), nil),
		cache.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(2), nil),
		cache.EXPECT().Increment(gomock.Any(), key, 60).Return(int64(3), nil),
		cache.EXPECT().TTL(gomock.Any(), key).Return(41500*time.Millisecond, nil),
	)

	serve := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/facilities", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
		req.Header.Set(constant.RequestHeaderUserAgent, "probe")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec
	}

	rec := serve()
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRateLimitWindow))

	rec = serve()
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))

	rec = serve()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	assert.Equal(t, "42", rec.Header().Get(constant.RequestHeaderRetryAfter))
}

func TestRateLimitFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	handler := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(true), cache).RateLimit()(ok())

	cache.EXPECT().Increment(gomock.Any(), "limiter:192.0.2.7:unknown", 60).Return(int64(0), errors.New("redis down"))

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	req.RemoteAddr = "192.0.2.7:51234"
	req.Header.Del(constant.RequestHeaderUserAgent)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
}

func TestRateLimitDisabled(t *testing.T) {
	// a nil cache must never be touched
	handler := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(false), nil).RateLimit()(ok())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "abc-123")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(constant.RequestHeaderRequestID))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowCredentials = true
	cfg.App.CORS.AllowedOrigins = []string{"https://front.example.com"}

	handler := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil).CORS()(ok())

	req := httptest.NewRequest(http.MethodOptions, "/api/facilities", nil)
	req.Header.Set("Origin", "https://front.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://front.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	cfg.App.CORS.Enable = false
	handler = middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil).CORS()(ok())

	req = httptest.NewRequest(http.MethodGet, "/api/facilities", nil)
	req.Header.Set("Origin", "https://front.example.com")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTracingPassesThrough(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	rec := httptest.NewRecorder()
	app.Tracing(ok()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
