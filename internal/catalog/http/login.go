package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/internal/catalog/service"
	"github.com/areyesfig/AppAdminProductos/pkg/httpx"
	"github.com/areyesfig/AppAdminProductos/pkg/slogx"
)

type LoginHandler struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
	TokenService   *service.TokenService

	// SecureCookies marks session cookies Secure; disabled for local dev.
	SecureCookies bool
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Account     domain.AccountView `json:"account"`
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	ExpiresIn   int64              `json:"expires_in"`
}

// ServeHTTP handles login for both flows at once: on success it rotates the
// server-side session cookie and returns a bearer token for API use.
//
//	@Summary		Log in
//	@Description	Validates credentials, rotates the session cookie, and issues a short-lived bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	loginResponse	"Account, bearer token and session cookie"
//	@Failure		401		{object}	httpx.ErrorBody	"Invalid credentials"
//	@Failure		403		{object}	httpx.ErrorBody	"Account deactivated"
//	@Failure		423		{object}	httpx.ErrorBody	"Account locked"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}

	view, err := h.AuthService.Authenticate(ctx, req.Email, req.Password, httpx.ClientIP(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	// Rotate: any session the browser presented dies with this login.
	if cookie, cerr := r.Cookie(SessionCookieName); cerr == nil {
		if err := h.SessionService.Revoke(ctx, cookie.Value); err != nil {
			slogx.FromContext(ctx).Warn("failed to revoke previous session", "err", err)
		}
	}

	handle, err := h.SessionService.Issue(ctx, view)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, expiresAt, err := h.TokenService.Issue(ctx, view)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(handle.ID, handle.ExpiresAt))
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Account:     view,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
	})
}

func (h *LoginHandler) sessionCookie(rawID string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    rawID,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
