package http

import (
	"errors"
	"net/http"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/internal/catalog/service"
	"github.com/areyesfig/AppAdminProductos/pkg/httpx"
	"github.com/areyesfig/AppAdminProductos/pkg/slogx"
)

// writeServiceError maps service sentinels onto HTTP status codes. Anything
// unmapped is an internal error; its detail is logged, never echoed back.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
	case errors.Is(err, service.ErrAccountLocked):
		httpx.WriteError(w, http.StatusLocked, "account_locked", "too many failed attempts, try again later")
	case errors.Is(err, service.ErrAccountInactive):
		httpx.WriteError(w, http.StatusForbidden, "account_inactive", "account has been deactivated")
	case errors.Is(err, service.ErrDuplicateEmail):
		httpx.WriteError(w, http.StatusConflict, "duplicate_email", "email is already registered")
	case errors.Is(err, service.ErrWeakPassword):
		httpx.WriteError(w, http.StatusBadRequest, "weak_password", err.Error())
	case errors.Is(err, service.ErrInvalidCurrentPassword):
		httpx.WriteError(w, http.StatusForbidden, "invalid_current_password", "current password is incorrect")
	case errors.Is(err, service.ErrSelfDeactivation):
		httpx.WriteError(w, http.StatusConflict, "self_deactivation", "admins cannot deactivate their own account")
	case errors.Is(err, service.ErrInvalidProduct):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_product", err.Error())
	case errors.Is(err, domain.ErrUnknownRole):
		httpx.WriteError(w, http.StatusBadRequest, "unknown_role", "role must be admin, moderator, or user")
	case errors.Is(err, service.ErrTokenExpired):
		httpx.WriteError(w, http.StatusUnauthorized, "token_expired", "bearer token has expired")
	case errors.Is(err, service.ErrTokenInvalid), errors.Is(err, service.ErrSessionInvalid):
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "resource does not exist")
	default:
		slogx.FromContext(r.Context()).Error("internal error", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
	}
}

func writeBadRequest(w http.ResponseWriter, description string) {
	httpx.WriteError(w, http.StatusBadRequest, "invalid_request", description)
}
