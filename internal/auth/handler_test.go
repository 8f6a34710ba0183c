package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/pebbleway/pebbleway-api/internal/auth"
	"github.com/pebbleway/pebbleway-api/internal/config"
	"github.com/pebbleway/pebbleway-api/internal/email"
	"github.com/pebbleway/pebbleway-api/internal/identity"
)

type delegateCalls struct {
	passwordGrants int
	refreshGrants  int
	signOutBearer  string
	updateBearer   string
}

// The password grant hands out a token that expires almost immediately, so
// any later delegate call has to go through the refresh grant first.
func newDelegateServer(t *testing.T, calls *delegateCalls) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/auth/v1/token" && r.URL.Query().Get("grant_type") == "password":
			calls.passwordGrants++
			w.Write([]byte(`{
				"access_token": "access-old",
				"token_type": "bearer",
				"expires_in": 1,
				"refresh_token": "refresh-old",
				"user": {"id": "user-1", "email": "maya@example.com", "user_metadata": {"username": "maya"}}
			}`))
		case r.URL.Path == "/auth/v1/token" && r.URL.Query().Get("grant_type") == "refresh_token":
			calls.refreshGrants++
			w.Write([]byte(`{
				"access_token": "access-new",
				"token_type": "bearer",
				"expires_in": 3600,
				"refresh_token": "refresh-new"
			}`))
		case r.URL.Path == "/auth/v1/logout":
			calls.signOutBearer = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		case r.URL.Path == "/auth/v1/user":
			calls.updateBearer = r.Header.Get("Authorization")
			w.Write([]byte(`{"id": "user-1", "email": "maya@example.com", "user_metadata": {"username": "maya"}}`))
		default:
			t.Errorf("unexpected delegate call: %s %s", r.Method, r.URL)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newAuthHandler(t *testing.T, delegateURL string) *auth.Handler {
	t.Helper()
	os.Setenv("JWT_SECRET", "a-long-and-secure-testing-secret")
	os.Setenv("CRYPTO_KEY", "01234567890123456789012345678901")
	auth.Init()
	config.InitCrypto()
	return auth.NewHandler(identity.NewClient(delegateURL, "anon-key"), email.NewMailer("http://127.0.0.1:0", "fn-key"))
}

func doSignIn(t *testing.T, h *auth.Handler) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/signin",
		strings.NewReader(`{"email":"maya@example.com","password":"hunter22"}`))
	rec := httptest.NewRecorder()
	h.SignIn(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Sign-in failed with status %d: %s", rec.Code, rec.Body.String())
	}
	return rec.Result().Cookies()
}

func TestSignInRejectsShortPassword(t *testing.T) {
	calls := &delegateCalls{}
	server := newDelegateServer(t, calls)
	defer server.Close()
	h := newAuthHandler(t, server.URL)

	req := httptest.NewRequest(http.MethodPost, "/auth/signin",
		strings.NewReader(`{"email":"maya@example.com","password":"abc"}`))
	rec := httptest.NewRecorder()
	h.SignIn(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for a 5-char password, got %d", rec.Code)
	}
	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if body["error"] != auth.ErrShortPassword.Error() {
		t.Errorf("Expected %q, got %q", auth.ErrShortPassword.Error(), body["error"])
	}
	if calls.passwordGrants != 0 {
		t.Errorf("Short password must never reach the delegate, saw %d grants", calls.passwordGrants)
	}
}

func TestSignOutRefreshesDelegateToken(t *testing.T) {
	calls := &delegateCalls{}
	server := newDelegateServer(t, calls)
	defer server.Close()
	h := newAuthHandler(t, server.URL)

	cookies := doSignIn(t, h)

	req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.SignOut(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Sign-out failed with status %d", rec.Code)
	}
	if calls.refreshGrants != 1 {
		t.Errorf("Expected 1 refresh before revoking, got %d", calls.refreshGrants)
	}
	if calls.signOutBearer != "Bearer access-new" {
		t.Errorf("Sign-out must use the refreshed access token, got %q", calls.signOutBearer)
	}
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			t.Errorf("Expected cookie %s to be expired, got MaxAge %d", c.Name, c.MaxAge)
		}
	}
}

func TestUpdatePasswordUsesRefreshedToken(t *testing.T) {
	calls := &delegateCalls{}
	server := newDelegateServer(t, calls)
	defer server.Close()
	h := newAuthHandler(t, server.URL)

	cookies := doSignIn(t, h)

	req := httptest.NewRequest(http.MethodPost, "/auth/update-password",
		strings.NewReader(`{"password":"newpass22","confirm_password":"newpass22"}`))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	auth.AuthMiddleware(http.HandlerFunc(h.UpdatePassword)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Update password failed with status %d: %s", rec.Code, rec.Body.String())
	}
	if calls.refreshGrants != 1 {
		t.Errorf("Expected 1 refresh before the update, got %d", calls.refreshGrants)
	}
	if calls.updateBearer != "Bearer access-new" {
		t.Errorf("Update must use the refreshed access token, got %q", calls.updateBearer)
	}
}
