package http

import (
	"net/http"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/service"
	"github.com/areyesfig/AppAdminProductos/pkg/httpx"
)

type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP returns the authenticated account's current profile. The lookup
// always hits the store, so an account deactivated after a token was issued
// shows its live state here.
//
//	@Summary		Current account
//	@Description	Returns the authenticated account's profile.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.AccountView	"Account profile"
//	@Failure		401	{object}	httpx.ErrorBody		"Not authenticated"
//	@Router			/v1/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrSessionInvalid)
		return
	}

	view, err := h.AuthService.GetAccount(r.Context(), p.AccountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, view)
}
