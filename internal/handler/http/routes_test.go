package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresSettings(t *testing.T) {
	services := newFakeServices()
	log := logger.Nop()

	h := newTestHandler(services)
	h.logger = log

	assert.Equal(t, services, h.services)
	assert.Equal(t, testTokenDuration, h.tokenDuration)
	assert.False(t, h.secureCookie)
	assert.Equal(t, []string{"http://localhost:5173"}, h.allowedOrigins)
}

// ─────────────────────────────────────────────
// Public routes
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	rr := serve(t, newFakeServices(), http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"🟢 Aura Backend is Breathing..."}`, rr.Body.String())
}

func TestVersion(t *testing.T) {
	rr := serve(t, newFakeServices(), http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "test-version", rr.Body.String())
}

// ─────────────────────────────────────────────
// Unknown paths and methods
// ─────────────────────────────────────────────

func TestRouter_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/api/nothing"},
		{"wrong method on static route", http.MethodGet, "/api/auth/login"},
		{"wrong method on param route", http.MethodPut, "/api/entries/e1"},
		{"patch on entries", http.MethodPatch, "/api/entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, newFakeServices(), tt.method, tt.path, "", sessionCookie("u1"))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"error":"Not found"}`, rr.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// CORS
// ─────────────────────────────────────────────

func TestCORS_PreflightAllowsCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/entries", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	newTestHandler(newFakeServices()).Init().ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_NoConfiguredOrigins_NoCredentials(t *testing.T) {
	h := NewHandler(newFakeServices(), config.Server{}, config.App{TokenDuration: testTokenDuration}, logger.Nop())

	req := httptest.NewRequest(http.MethodOptions, "/api/entries", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_UnknownOriginIsNotEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()

	newTestHandler(newFakeServices()).Init().ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

// ─────────────────────────────────────────────
// Compression
// ─────────────────────────────────────────────

func TestRouter_GzipWhenAccepted(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	newTestHandler(newFakeServices()).Init().ServeHTTP(rr, req)

	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}
