package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Identity is the delegate-owned view of the account. Everything beyond
// these fields stays with the provider.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Client talks to the GoTrue-compatible identity provider. No timeout is
// configured on purpose: auth calls ride the transport defaults and cannot
// be cancelled by the user once submitted.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    &http.Client{},
	}
}

type signUpRequest struct {
	Email    string            `json:"email"`
	Password string            `json:"password"`
	Data     map[string]string `json:"data,omitempty"`
}

type passwordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshGrantRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type recoverRequest struct {
	Email string `json:"email"`
}

type updateUserRequest struct {
	Password string `json:"password"`
}

type userPayload struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	UserMetadata map[string]string `json:"user_metadata"`
}

type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int         `json:"expires_in"`
	RefreshToken string      `json:"refresh_token"`
	User         userPayload `json:"user"`
}

func (u userPayload) identity() *Identity {
	return &Identity{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.UserMetadata["username"],
	}
}

// SignUp registers a new account. The provider sends a confirmation email;
// sign-in only succeeds once the address is confirmed.
func (c *Client) SignUp(ctx context.Context, email, password, username string) (*Identity, error) {
	var user userPayload
	err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", signUpRequest{
		Email:    email,
		Password: password,
		Data:     map[string]string{"username": username},
	}, &user)
	if err != nil {
		return nil, err
	}
	return user.identity(), nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Identity, *oauth2.Token, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", passwordGrantRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, nil, err
	}
	return resp.User.identity(), resp.token(), nil
}

// SignOut revokes the delegate session. Callers treat failure as advisory:
// the local session is cleared regardless.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil, nil)
}

func (c *Client) ResetPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/recover", "", recoverRequest{Email: email}, nil)
}

func (c *Client) UpdatePassword(ctx context.Context, accessToken, newPassword string) (*Identity, error) {
	var user userPayload
	err := c.do(ctx, http.MethodPut, "/auth/v1/user", accessToken, updateUserRequest{Password: newPassword}, &user)
	if err != nil {
		return nil, err
	}
	return user.identity(), nil
}

func (r tokenResponse) token() *oauth2.Token {
	t := &oauth2.Token{
		AccessToken:  r.AccessToken,
		TokenType:    r.TokenType,
		RefreshToken: r.RefreshToken,
	}
	if r.ExpiresIn > 0 {
		t.Expiry = time.Now().Add(time.Duration(r.ExpiresIn) * time.Second)
	}
	return t
}

func (c *Client) do(ctx context.Context, method, path, bearer string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if bearer == "" {
		bearer = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode identity response: %w", err)
	}
	return nil
}
