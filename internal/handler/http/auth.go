package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/corehr/hrms-backend-go/internal/domain/account"
	"github.com/corehr/hrms-backend-go/internal/domain/auth"
	"github.com/corehr/hrms-backend-go/internal/handler/http/response"
	appjwt "github.com/corehr/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// identity pulls the verified caller out of the request context. Handlers
// behind AuthRequired can rely on it succeeding.
func identity(r *http.Request) (int64, account.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, "", auth.ErrInvalidToken
	}
	return appjwt.ClaimsIdentity(claims)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login error", "email", loginReq.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := a.authService.Me(r.Context(), accountID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
