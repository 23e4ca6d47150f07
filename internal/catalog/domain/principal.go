package domain

// PrincipalSource records which issuer authenticated the request.
type PrincipalSource string

const (
	// PrincipalFromSession marks a browser flow backed by a server-side session.
	PrincipalFromSession PrincipalSource = "session"
	// PrincipalFromToken marks an API flow backed by a signed bearer token.
	PrincipalFromToken PrincipalSource = "token"
)

// Principal is the resolved authenticated identity for one request. It is
// resolved exactly once at the request boundary and passed explicitly;
// downstream code never inspects transport-specific session or token state.
type Principal struct {
	AccountID string          `json:"account_id"`
	Email     string          `json:"email"`
	Role      Role            `json:"role"`
	Source    PrincipalSource `json:"source"`
}

// IsAdmin reports whether the principal may perform user administration.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }
