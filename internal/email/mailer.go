package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pebbleway/pebbleway-api/internal/config"
)

const (
	TypeConfirmation  = "confirmation"
	TypePasswordReset = "password_reset"
)

// Message is the request shape the send-email function accepts.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Type    string `json:"type"`
}

type sendResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Error   string `json:"error"`
}

// Mailer produces requests to the outbound email function. It never
// inspects delivery state beyond the immediate response.
type Mailer struct {
	endpoint string
	key      string
	http     *http.Client
}

func NewMailer(endpoint, key string) *Mailer {
	return &Mailer{
		endpoint: endpoint,
		key:      key,
		http:     &http.Client{},
	}
}

// Send posts the message and returns the provider's message id.
func (m *Mailer) Send(ctx context.Context, msg Message) (string, error) {
	log := config.WithContext(ctx)

	body, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.key)

	resp, err := m.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("email function unreachable: %w", err)
	}
	defer resp.Body.Close()

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode email response: %w", err)
	}
	if result.Error != "" {
		return "", errors.New(result.Error)
	}
	if !result.Success {
		return "", fmt.Errorf("email function returned status %d", resp.StatusCode)
	}

	log.WithField("email_id", result.ID).Infof("Sent %s email", msg.Type)
	return result.ID, nil
}

func (m *Mailer) SendConfirmation(ctx context.Context, to, username string) (string, error) {
	html, err := renderConfirmation(username)
	if err != nil {
		return "", err
	}
	return m.Send(ctx, Message{
		To:      to,
		Subject: "Welcome to PebbleWay! Please confirm your email",
		HTML:    html,
		Type:    TypeConfirmation,
	})
}

func (m *Mailer) SendPasswordReset(ctx context.Context, to string) (string, error) {
	html, err := renderPasswordReset(to)
	if err != nil {
		return "", err
	}
	return m.Send(ctx, Message{
		To:      to,
		Subject: "Reset your PebbleWay password",
		HTML:    html,
		Type:    TypePasswordReset,
	})
}
