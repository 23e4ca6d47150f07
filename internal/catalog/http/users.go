package http

import (
	"encoding/json"
	"net/http"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/internal/catalog/service"
	"github.com/areyesfig/AppAdminProductos/pkg/httpx"
)

type UsersHandler struct {
	UserAdminService *service.UserAdminService
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

// HandleList godoc
//
//	@Summary	List accounts
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		domain.AccountView	"All accounts"
//	@Failure	403	{object}	httpx.ErrorBody		"Admin role required"
//	@Router		/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.UserAdminService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, views)
}

// HandleCreate godoc
//
//	@Summary	Create an account
//	@Description	Admin account creation with an explicit role.
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		createUserRequest	true	"Account payload"
//	@Success	201		{object}	domain.AccountView
//	@Failure	409		{object}	httpx.ErrorBody	"Email already registered"
//	@Router		/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}

	view, err := h.UserAdminService.Create(r.Context(), service.CreateRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, view)
}

// HandleUpdate godoc
//
//	@Summary	Update an account profile
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	string				true	"Account id"
//	@Param		request	body	updateUserRequest	true	"Profile payload"
//	@Success	204		"Profile updated"
//	@Failure	404		{object}	httpx.ErrorBody	"Unknown account"
//	@Failure	409		{object}	httpx.ErrorBody	"Email already registered"
//	@Router		/v1/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}
	if req.Email == "" {
		writeBadRequest(w, "email is required")
		return
	}

	if err := h.UserAdminService.UpdateProfile(r.Context(), r.PathValue("id"), req.Name, req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetActive godoc
//
//	@Summary	Activate or deactivate an account
//	@Description	Deactivation revokes the account's sessions immediately; outstanding bearer tokens last until expiry.
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	string				true	"Account id"
//	@Param		request	body	setActiveRequest	true	"Desired active flag"
//	@Success	204		"Flag updated"
//	@Failure	404		{object}	httpx.ErrorBody	"Unknown account"
//	@Failure	409		{object}	httpx.ErrorBody	"Self deactivation"
//	@Router		/v1/users/{id}/active [put].
func (h *UsersHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrSessionInvalid)
		return
	}

	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	if err := h.UserAdminService.SetActive(r.Context(), principal.AccountID, r.PathValue("id"), req.Active); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
