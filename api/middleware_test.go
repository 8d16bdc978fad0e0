package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shramsetu/shramsetu/api"
)

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	h := api.LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/workers", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header")
	}
}

func TestCORSMiddleware(t *testing.T) {
	h := api.CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/workers", nil))
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected CORS origin header")
	}

	// preflight short-circuits
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/workers", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for OPTIONS got %d", rec.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := api.RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/workers", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic got %d", rec.Code)
	}
}
