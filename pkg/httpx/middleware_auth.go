package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/hrms/pkg/jwtx"
	"github.com/aussiebroadwan/hrms/pkg/slogx"
)

const bearerPrefix = "Bearer "

// Rejection is the reason the gate refused a request.
type Rejection int

const (
	// RejectMissingToken: no Authorization header, or one without the
	// "Bearer " prefix.
	RejectMissingToken Rejection = iota + 1
	// RejectInvalidToken: the verifier refused the token.
	RejectInvalidToken
	// RejectForbidden: the token is valid but its role is not allowed.
	RejectForbidden
)

func (r Rejection) String() string {
	switch r {
	case RejectMissingToken:
		return "missing_token"
	case RejectInvalidToken:
		return "invalid_token"
	case RejectForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Status is the HTTP status written for the rejection.
func (r Rejection) Status() int {
	if r == RejectForbidden {
		return http.StatusForbidden
	}
	return http.StatusUnauthorized
}

// Message is the client facing message written for the rejection.
func (r Rejection) Message() string {
	switch r {
	case RejectMissingToken:
		return "No token provided"
	case RejectInvalidToken:
		return "Invalid or expired token"
	default:
		return "Forbidden"
	}
}

// Gate authorizes requests with a bearer token. A Gate holds no mutable
// state; one instance is shared by every protected route.
type Gate struct {
	Verifier jwtx.Verifier
	// OnReject, when set, is called once for every rejected request.
	OnReject func(r *http.Request, reason Rejection)
}

// NewGate returns a Gate backed by v.
func NewGate(v jwtx.Verifier) *Gate {
	return &Gate{Verifier: v}
}

// Authorize is shorthand for NewGate(v).Require(roles).
func Authorize(v jwtx.Verifier, roles RoleSet) Middleware {
	return NewGate(v).Require(roles)
}

// Require returns middleware that forwards a request only when it carries a
// valid token whose role is in roles. An empty roles set admits any valid
// token. Forwarded requests carry the claims in their context; see
// ClaimsFromContext.
func (g *Gate) Require(roles RoleSet) Middleware {
	allowed := NewRoleSet(roles.Roles()...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				g.reject(w, r, RejectMissingToken)
				return
			}

			claims, err := g.Verifier.Verify(token)
			if err != nil {
				log.Warn("token rejected", "error", err.Error())
				g.reject(w, r, RejectInvalidToken)
				return
			}

			if !allowed.Allows(claims.Role) {
				log.Warn("role not permitted",
					"employee_id", claims.Subject,
					"role", claims.Role,
					"allowed", allowed.String(),
				)
				g.reject(w, r, RejectForbidden)
				return
			}

			ctx := ContextWithClaims(r.Context(), claims)
			ctx = slogx.With(ctx, "employee_id", claims.Subject, "role", claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (g *Gate) reject(w http.ResponseWriter, r *http.Request, reason Rejection) {
	if g.OnReject != nil {
		g.OnReject(r, reason)
	}
	WriteError(w, reason.Status(), reason.Message())
}

// bearerToken extracts the token from an Authorization header value. The
// prefix match is exact; "bearer x" or "Token x" are treated as absent. A
// present prefix with nothing after it yields an empty token, which the
// verifier rejects.
func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(bearerPrefix):]), true
}
