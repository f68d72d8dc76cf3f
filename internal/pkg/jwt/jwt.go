package jwt

import (
	"fmt"
	"time"

	"github.com/corehr/hrms-backend-go/internal/domain/account"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateToken(accountID int64, role account.Role) (token string, expiresAt int64, err error)
	DecodeToken(tokenString string) (accountID int64, role account.Role, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateToken issues a signed token carrying the account id and role. Every
// token gets an exp claim from the configured expiration time; there are no
// unbounded tokens.
func (j *JWTService) GenerateToken(accountID int64, role account.Role) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"id":   accountID,
		"role": string(role),
		"exp":  expiresAt,
	})
	return tokenString, expiresAt, err
}

// DecodeToken verifies the signature and expiry and returns the identity claims.
func (j *JWTService) DecodeToken(tokenString string) (int64, account.Role, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return 0, "", err
	}
	if err := jwt.Validate(token); err != nil {
		return 0, "", err
	}

	idVal, ok := token.Get("id")
	if !ok {
		return 0, "", fmt.Errorf("token missing id claim")
	}
	id, err := claimToInt64(idVal)
	if err != nil {
		return 0, "", err
	}

	roleVal, ok := token.Get("role")
	if !ok {
		return 0, "", fmt.Errorf("token missing role claim")
	}
	roleStr, ok := roleVal.(string)
	if !ok || !account.IsValidRole(roleStr) {
		return 0, "", fmt.Errorf("token role claim is invalid")
	}

	return id, account.Role(roleStr), nil
}

// claimToInt64 normalizes the numeric claim; jwx decodes JSON numbers as float64.
func claimToInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	}
	return 0, fmt.Errorf("token id claim is not numeric")
}

// ClaimsIdentity extracts the id and role from already-verified middleware
// claims. Handlers use this instead of re-decoding the bearer token.
func ClaimsIdentity(claims map[string]interface{}) (int64, account.Role, error) {
	idVal, ok := claims["id"]
	if !ok {
		return 0, "", fmt.Errorf("claims missing id")
	}
	id, err := claimToInt64(idVal)
	if err != nil {
		return 0, "", err
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !account.IsValidRole(roleStr) {
		return 0, "", fmt.Errorf("claims role is invalid")
	}
	return id, account.Role(roleStr), nil
}
