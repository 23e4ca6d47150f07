package http

import (
	"net/http"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/service"
	"github.com/areyesfig/AppAdminProductos/pkg/httpx"
	"github.com/areyesfig/AppAdminProductos/pkg/slogx"
)

type LogoutHandler struct {
	SessionService *service.SessionService
	SecureCookies  bool
}

// ServeHTTP destroys the presented session. Logging out twice is fine.
//
//	@Summary		Log out
//	@Description	Revokes the server-side session and clears the cookie. Idempotent.
//	@Tags			Auth
//	@Produce		json
//	@Success		204	"Session revoked"
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if rerr := h.SessionService.Revoke(r.Context(), cookie.Value); rerr != nil {
			slogx.FromContext(r.Context()).Warn("failed to revoke session", "err", rerr)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
