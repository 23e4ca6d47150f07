package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/areyesfig/AppAdminProductos/internal/catalog/domain"
	"github.com/areyesfig/AppAdminProductos/internal/catalog/service"
	"github.com/areyesfig/AppAdminProductos/pkg/httpx"
)

type principalKey struct{}

// PrincipalFromContext returns the authenticated principal resolved by
// AuthnMiddleware, if any.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// SessionCookieName is the HttpOnly cookie carrying the raw session id.
const SessionCookieName = "catalog_session"

// AuthnMiddleware resolves the request principal exactly once at the
// boundary. A Bearer token wins over a session cookie; handlers downstream
// only ever see the resolved principal.
func AuthnMiddleware(tokens *service.TokenService, sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var (
				principal domain.Principal
				err       error
			)

			if bearer := bearerToken(r); bearer != "" {
				principal, err = tokens.Verify(ctx, bearer)
			} else if cookie, cerr := r.Cookie(SessionCookieName); cerr == nil {
				principal, err = sessions.Resolve(ctx, cookie.Value)
			} else {
				err = service.ErrSessionInvalid
			}

			if err != nil {
				writeServiceError(w, r, err)
				return
			}

			ctx = context.WithValue(ctx, principalKey{}, principal)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, principal.AccountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a handler on the admin role. Must run after
// AuthnMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok {
			writeServiceError(w, r, service.ErrSessionInvalid)
			return
		}
		if !p.IsAdmin() {
			httpx.WriteError(w, http.StatusForbidden, "forbidden", "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return auth[len(prefix):]
	}
	return ""
}
