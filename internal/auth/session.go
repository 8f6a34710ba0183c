package auth

import "context"

// Session is the read-only authenticated/unauthenticated view the rest of
// the system sees. The identity fields are owned by the delegate.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id,omitempty"`
	Email         string `json:"email,omitempty"`
	Username      string `json:"username,omitempty"`
}

func SessionFromContext(ctx context.Context) Session {
	claims, err := GetUserClaimsFromContext(ctx)
	if err != nil {
		return Session{}
	}
	return Session{
		Authenticated: true,
		UserID:        claims.UserID,
		Email:         claims.Email,
		Username:      claims.Username,
	}
}
