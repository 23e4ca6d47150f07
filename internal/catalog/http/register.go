package http

import (
	"encoding/json"
	"net/http"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/internal/catalog/service"
	"github.com/areyesfig/AppAdminProductos/pkg/httpx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles self-service registration.
//
//	@Summary		Register a new account
//	@Description	Creates an active account with the user role. Privileged roles are only assigned by an admin afterwards.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest		true	"Registration payload"
//	@Success		201		{object}	domain.AccountView	"Created account"
//	@Failure		400		{object}	httpx.ErrorBody		"Malformed payload or weak password"
//	@Failure		409		{object}	httpx.ErrorBody		"Email already registered"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}
	if req.Name == "" {
		req.Name = domain.NormalizeEmail(req.Email)
	}

	view, err := h.AuthService.Register(r.Context(), service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, view)
}
