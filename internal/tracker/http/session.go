package http

import (
	"net/http"
	"time"

	"github.com/balco/tracker/internal/tracker/service"
	"github.com/balco/tracker/pkg/httpx"
	"github.com/balco/tracker/pkg/slogx"
	"github.com/balco/tracker/pkg/trackersdk"
)

const msgInvalidCredentials = "invalid credentials"

type SessionHandler struct {
	Authenticator *service.Authenticator
	Sessions      *service.SessionService
	CookieName    string
	CookieSecure  bool
}

// HandleLogin exchanges credentials for a session.
//
//	@Summary		Sign in
//	@Description	Verifies the credentials and returns a signed session token, also set as an HttpOnly cookie. Failures never say whether the email exists.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	trackersdk.LoginResponse	"Session token, expiry and user"
//	@Failure		400		{object}	trackersdk.ErrorResponse	"Malformed body"
//	@Failure		401		{object}	trackersdk.ErrorResponse	"Invalid credentials"
//	@Failure		429		{object}	trackersdk.ErrorResponse	"Too many requests"
//	@Router			/v1/session [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req trackersdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	id, ok := h.Authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	token, expiresAt, err := h.Sessions.Issue(id)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to issue session", "user_id", id.ID, "err", err)
		httpx.WriteError(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.WriteJSON(w, http.StatusOK, trackersdk.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
		User:      toUser(id),
	})
}

// HandleGet returns the identity bound into the session token.
//
//	@Summary		Current session
//	@Description	Returns the user the session was issued for. The role is the one bound at sign-in.
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	trackersdk.SessionResponse	"Session user"
//	@Failure		401	{object}	trackersdk.ErrorResponse	"Missing or invalid session"
//	@Router			/v1/session [get].
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := service.IdentityFromClaims(claims)
	if err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, trackersdk.SessionResponse{User: toUser(id)})
}

// HandleLogout clears the session cookie.
//
//	@Summary		Sign out
//	@Description	Clears the session cookie. Tokens are stateless and stay valid until they expire.
//	@Tags			Session
//	@Success		204
//	@Router			/v1/session [delete].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
