package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/pebbleway/pebbleway-api/internal/middlewares"
)

func corsHandler() http.Handler {
	return middlewares.CorsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCorsNeverReflectsRequestOrigin(t *testing.T) {
	os.Unsetenv("CORS_ORIGIN")

	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	corsHandler().ServeHTTP(rec, req)

	// Responses carry credentials, so an attacker-supplied origin must
	// never be echoed back.
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "https://evil.example" {
		t.Errorf("Request origin was reflected into Allow-Origin: %q", got)
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("Expected credentials to be allowed for the fixed origin")
	}
}

func TestCorsUsesConfiguredOrigin(t *testing.T) {
	os.Setenv("CORS_ORIGIN", "https://app.pebbleway.example")
	defer os.Unsetenv("CORS_ORIGIN")

	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	req.Header.Set("Origin", "https://app.pebbleway.example")
	rec := httptest.NewRecorder()
	corsHandler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.pebbleway.example" {
		t.Errorf("Expected the configured origin, got %q", got)
	}
}

func TestCorsPreflight(t *testing.T) {
	os.Unsetenv("CORS_ORIGIN")

	req := httptest.NewRequest(http.MethodOptions, "/goals", nil)
	rec := httptest.NewRecorder()
	corsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for preflight, got %d", rec.Code)
	}
}
