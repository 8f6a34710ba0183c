package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendConfirmation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer fn-key" {
			t.Errorf("expected Bearer fn-key, got %s", r.Header.Get("Authorization"))
		}

		var msg Message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if msg.To != "maya@example.com" {
			t.Errorf("unexpected recipient %s", msg.To)
		}
		if msg.Type != TypeConfirmation {
			t.Errorf("expected type confirmation, got %s", msg.Type)
		}
		if !strings.Contains(msg.HTML, "maya") {
			t.Errorf("expected the username in the body")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sendResponse{Success: true, ID: "email-1"})
	}))
	defer server.Close()

	mailer := NewMailer(server.URL, "fn-key")

	id, err := mailer.SendConfirmation(context.Background(), "maya@example.com", "maya")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "email-1" {
		t.Errorf("expected email-1, got %s", id)
	}
}

func TestSendSurfacesFunctionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(sendResponse{Error: "invalid recipient"})
	}))
	defer server.Close()

	mailer := NewMailer(server.URL, "fn-key")

	_, err := mailer.SendPasswordReset(context.Background(), "not-an-email")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "invalid recipient" {
		t.Errorf("expected the function's error verbatim, got %q", err.Error())
	}
}
