package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

const testSecret = "middleware-secret"

func deviceEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := DeviceIDFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(id))
	})
}

func TestDeviceAuth(t *testing.T) {
	valid, err := crypto.IssueDeviceToken("dev-1", testSecret, time.Hour)
	require.NoError(t, err)
	foreign, err := crypto.IssueDeviceToken("dev-1", "other-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "valid", header: "Bearer " + valid, status: http.StatusOK, body: "dev-1"},
		{name: "missing header", status: http.StatusUnauthorized, body: "missing authorization header"},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized, body: "invalid authorization format"},
		{name: "empty token", header: "Bearer ", status: http.StatusUnauthorized, body: "invalid authorization format"},
		{name: "foreign token", header: "Bearer " + foreign, status: http.StatusUnauthorized, body: "invalid or expired token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/preferences/theme", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			DeviceAuth(testSecret)(deviceEcho(t)).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestDeviceIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := DeviceIDFromContext(req.Context())
	assert.False(t, ok)
	_, ok = DeviceIDFromContext(WithDeviceID(req.Context(), ""))
	assert.False(t, ok)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	h := rl.Middleware(okHandler())

	do := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/password", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1001").Code)

	limited := do("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "1", limited.Header().Get("Retry-After"))
	assert.Contains(t, limited.Body.String(), "too many requests")

	assert.Equal(t, http.StatusOK, do("10.0.0.2:1000").Code, "other clients keep their own bucket")
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.limiter("10.0.0.1")
	now = now.Add(idleVisitorTTL / 2)
	rl.limiter("10.0.0.2")

	now = now.Add(idleVisitorTTL/2 + time.Second)
	rl.sweep()

	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	var seen string
	h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/check?password=hunter2", strings.NewReader(`{"password":"hunter2"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seen)

	line := buf.String()
	assert.Contains(t, line, "status=201")
	assert.Contains(t, line, "path=/api/v1/check")
	assert.Contains(t, line, "request_id="+id)
	assert.NotContains(t, line, "hunter2")
}

func TestLogger_KeepsIncomingRequestID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	incoming := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec := httptest.NewRecorder()
	Logger(logger)(okHandler()).ServeHTTP(rec, req)
	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "not a uuid\nforged=1")
	rec = httptest.NewRecorder()
	Logger(logger)(okHandler()).ServeHTTP(rec, req)
	assert.NotEqual(t, "not a uuid\nforged=1", rec.Header().Get(RequestIDHeader))
}
