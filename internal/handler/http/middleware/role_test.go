package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corehr/hrms-backend-go/internal/domain/account"
	appjwt "github.com/corehr/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

// requestWithRole runs a request carrying a verified token for the given role
// through the middleware chain and returns the recorder.
func requestWithRole(t *testing.T, role account.Role, mw func(http.Handler) http.Handler) *httptest.ResponseRecorder {
	t.Helper()

	svc := appjwt.NewJWTService(testSecret, "1h")
	token, _, err := svc.GenerateToken(1, role)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler := mw(next)
	verifier := jwtauth.Verifier(svc.JWTAuth())
	verifier(handler).ServeHTTP(rec, req)
	return rec
}

func TestRequireAdmin(t *testing.T) {
	assert.Equal(t, http.StatusOK, requestWithRole(t, account.RoleAdmin, RequireAdmin).Code)
	assert.Equal(t, http.StatusOK, requestWithRole(t, account.RoleSuperAdmin, RequireAdmin).Code)
	assert.Equal(t, http.StatusForbidden, requestWithRole(t, account.RoleEmployee, RequireAdmin).Code)
}

func TestRequireSuperAdmin(t *testing.T) {
	assert.Equal(t, http.StatusOK, requestWithRole(t, account.RoleSuperAdmin, RequireSuperAdmin).Code)
	assert.Equal(t, http.StatusForbidden, requestWithRole(t, account.RoleAdmin, RequireSuperAdmin).Code)
	assert.Equal(t, http.StatusForbidden, requestWithRole(t, account.RoleEmployee, RequireSuperAdmin).Code)
}

func TestRequireRolesWithoutToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	RequireAdmin(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthRequiredRejectsUnverified(t *testing.T) {
	svc := appjwt.NewJWTService(testSecret, "1h")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.Background())
	rec := httptest.NewRecorder()

	verifier := jwtauth.Verifier(svc.JWTAuth())
	verifier(AuthRequired(next)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	svc := appjwt.NewJWTService(testSecret, "1h")
	token, _, err := svc.GenerateToken(5, account.RoleEmployee)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	verifier := jwtauth.Verifier(svc.JWTAuth())
	verifier(AuthRequired(next)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
