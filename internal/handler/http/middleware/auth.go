package middleware

import (
	"net/http"

	"github.com/corehr/hrms-backend-go/internal/domain/auth"
	"github.com/corehr/hrms-backend-go/internal/handler/http/response"
	appjwt "github.com/corehr/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose bearer token failed verification in the
// jwtauth.Verifier ahead of it. Every request is independently authenticated;
// no session state exists server-side.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		if _, _, err := appjwt.ClaimsIdentity(claims); err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
