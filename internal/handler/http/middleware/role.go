package middleware

import (
	"net/http"

	"github.com/corehr/hrms-backend-go/internal/domain/account"
	"github.com/corehr/hrms-backend-go/internal/handler/http/response"
	appjwt "github.com/corehr/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRoles compares the verified token's role against an allow-list and
// rejects with 403 on mismatch. A valid signature is not enough.
func RequireRoles(allowed ...account.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			_, role, err := appjwt.ClaimsIdentity(claims)
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			for _, a := range allowed {
				if role == a {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w, "Insufficient permissions: role '"+string(role)+"' is not allowed")
		})
	}
}

// RequireAdmin allows admin and super_admin.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRoles(account.RoleAdmin, account.RoleSuperAdmin)(next)
}

// RequireSuperAdmin allows only the highest-privilege role.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return RequireRoles(account.RoleSuperAdmin)(next)
}
