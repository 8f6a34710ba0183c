package identity

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// TokenSource wraps the delegate's refresh_token grant as an
// oauth2.TokenSource, so a stored session keeps itself alive.
func (c *Client) TokenSource(t *oauth2.Token) oauth2.TokenSource {
	return oauth2.ReuseTokenSource(t, &refreshSource{
		client:       c,
		refreshToken: t.RefreshToken,
	})
}

type refreshSource struct {
	client       *Client
	refreshToken string
}

func (s *refreshSource) Token() (*oauth2.Token, error) {
	var resp tokenResponse
	err := s.client.do(context.Background(), http.MethodPost,
		"/auth/v1/token?grant_type=refresh_token", "",
		refreshGrantRequest{RefreshToken: s.refreshToken}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.RefreshToken != "" {
		s.refreshToken = resp.RefreshToken
	}
	return resp.token(), nil
}
