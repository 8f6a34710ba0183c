package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"

	"github.com/pebbleway/pebbleway-api/internal/config"
	"github.com/pebbleway/pebbleway-api/internal/email"
	"github.com/pebbleway/pebbleway-api/internal/identity"
)

const (
	sessionCookieName  = "jwt"
	delegateCookieName = "delegate"
	sessionDuration    = 24 * time.Hour
)

type Handler struct {
	identity *identity.Client
	mailer   *email.Mailer
}

func NewHandler(identityClient *identity.Client, mailer *email.Mailer) *Handler {
	return &Handler{identity: identityClient, mailer: mailer}
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SignUpDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validateEmail(dto.Email); err != nil {
		config.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validatePassword(dto.Password, dto.ConfirmPassword); err != nil {
		config.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateUsername(dto.Username); err != nil {
		config.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.identity.SignUp(r.Context(), dto.Email, dto.Password, dto.Username)
	if err != nil {
		h.writeDelegateError(w, r, err, "Sign-up rejected by identity provider")
		return
	}

	if _, err := h.mailer.SendConfirmation(r.Context(), id.Email, dto.Username); err != nil {
		// The account exists either way; delivery problems are not fatal.
		log.WithError(err).Warn("Failed to send confirmation email")
	}

	log.WithField("user_id", id.ID).Info("Account created, confirmation pending")
	config.JSON(w, http.StatusCreated, map[string]string{
		"message": "account created, check your email to confirm it",
	})
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SignInDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validateEmail(dto.Email); err != nil {
		config.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(dto.Password) < 6 {
		config.JSONError(w, http.StatusBadRequest, ErrShortPassword.Error())
		return
	}

	id, token, err := h.identity.SignIn(r.Context(), dto.Email, dto.Password)
	if err != nil {
		h.writeDelegateError(w, r, err, "Sign-in rejected by identity provider")
		return
	}

	sessionToken, err := GenerateSessionJWT(id.ID, id.Email, id.Username, sessionDuration)
	if err != nil {
		log.WithError(err).Error("Failed to mint session token")
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	encToken, err := encodeDelegateToken(token)
	if err != nil {
		log.WithError(err).Error("Failed to protect delegate token")
		config.JSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	setSessionCookie(w, sessionCookieName, sessionToken, int(sessionDuration.Seconds()))
	setSessionCookie(w, delegateCookieName, encToken, int(sessionDuration.Seconds()))

	log.WithField("user_id", id.ID).Info("Signed in")
	config.JSON(w, http.StatusOK, Session{
		Authenticated: true,
		UserID:        id.ID,
		Email:         id.Email,
		Username:      id.Username,
	})
}

// SignOut always clears the local session, even when the delegate call
// fails.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if t, err := delegateTokenFromRequest(r); err == nil {
		// The session outlives the access token, so refresh before
		// revoking.
		if fresh, err := h.identity.TokenSource(t).Token(); err != nil {
			log.WithError(err).Warn("Delegate token refresh failed, clearing session anyway")
		} else if err := h.identity.SignOut(r.Context(), fresh.AccessToken); err != nil {
			log.WithError(err).Warn("Delegate sign-out failed, clearing session anyway")
		}
	}

	setSessionCookie(w, sessionCookieName, "", -1)
	setSessionCookie(w, delegateCookieName, "", -1)

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto ResetPasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateEmail(dto.Email); err != nil {
		config.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.identity.ResetPassword(r.Context(), dto.Email); err != nil {
		h.writeDelegateError(w, r, err, "Password reset rejected by identity provider")
		return
	}

	if _, err := h.mailer.SendPasswordReset(r.Context(), dto.Email); err != nil {
		log.WithError(err).Warn("Failed to send password reset email")
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "password reset email sent",
	})
}

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if _, err := GetUserClaimsFromContext(r.Context()); err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto UpdatePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validatePassword(dto.Password, dto.ConfirmPassword); err != nil {
		config.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := delegateTokenFromRequest(r)
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	fresh, err := h.identity.TokenSource(t).Token()
	if err != nil {
		h.writeDelegateError(w, r, err, "Delegate token refresh failed")
		return
	}

	if _, err := h.identity.UpdatePassword(r.Context(), fresh.AccessToken, dto.Password); err != nil {
		h.writeDelegateError(w, r, err, "Password update rejected by identity provider")
		return
	}

	// Keep the (possibly refreshed) token for the rest of the session.
	if enc, err := encodeDelegateToken(fresh); err == nil {
		setSessionCookie(w, delegateCookieName, enc, int(sessionDuration.Seconds()))
	}

	log.Info("Password updated")
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "password updated",
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, SessionFromContext(r.Context()))
}

// writeDelegateError forwards the provider's message verbatim; transport
// failures read as a bad gateway.
func (h *Handler) writeDelegateError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	log := config.WithContext(r.Context())

	var provErr *identity.Error
	if errors.As(err, &provErr) {
		log.WithError(err).Warn(logMsg)
		config.JSONError(w, provErr.Status, provErr.Message)
		return
	}
	log.WithError(err).Error(logMsg)
	config.JSONError(w, http.StatusBadGateway, err.Error())
}

// encodeDelegateToken seals the whole delegate token (access, refresh,
// expiry) so SignOut and UpdatePassword can refresh it after the short
// access token has expired.
func encodeDelegateToken(t *oauth2.Token) (string, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return config.Encrypt(string(data))
}

func delegateTokenFromRequest(r *http.Request) (*oauth2.Token, error) {
	cookie, err := r.Cookie(delegateCookieName)
	if err != nil {
		return nil, err
	}
	plain, err := config.Decrypt(cookie.Value)
	if err != nil {
		return nil, err
	}
	var t oauth2.Token
	if err := json.Unmarshal([]byte(plain), &t); err != nil {
		return nil, err
	}
	if t.AccessToken == "" && t.RefreshToken == "" {
		return nil, errors.New("empty delegate token")
	}
	return &t, nil
}

func setSessionCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
