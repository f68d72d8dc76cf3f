package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/corehr/hrms-backend-go/internal/domain/account"
	"github.com/corehr/hrms-backend-go/internal/domain/auth"
	"github.com/corehr/hrms-backend-go/internal/domain/employee"
	"github.com/corehr/hrms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	account.AccountRepository
	employee.ProfileRepository
	jwt.Service
}

func NewAuthService(accountRepository account.AccountRepository, profileRepository employee.ProfileRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		AccountRepository: accountRepository,
		ProfileRepository: profileRepository,
		Service:           jwtService,
	}
}

// isBcryptHash reports whether the stored secret is a bcrypt digest. Rows
// migrated from the legacy system still hold plain-text passwords.
func isBcryptHash(secret string) bool {
	return strings.HasPrefix(secret, "$2a$") || strings.HasPrefix(secret, "$2b$") || strings.HasPrefix(secret, "$2y$")
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	accountData, err := a.AccountRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if accountData.PasswordHash == "" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if isBcryptHash(accountData.PasswordHash) {
		if err := bcrypt.CompareHashAndPassword([]byte(accountData.PasswordHash), []byte(req.Password)); err != nil {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
	} else {
		// Legacy plain-text row: compare directly, then re-store as bcrypt so
		// the next login takes the hashed path.
		if accountData.PasswordHash != req.Password {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to hash legacy password: %w", err)
		}
		if err := a.AccountRepository.UpdatePasswordHash(ctx, accountData.ID, string(hash)); err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to upgrade legacy password: %w", err)
		}
	}

	if accountData.Status != account.StatusActive {
		return auth.TokenResponse{}, auth.ErrAccountNotActive
	}

	token, expiresAt, err := a.Service.GenerateToken(accountData.ID, accountData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create token: %w", err)
	}

	return auth.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		AccountID: accountData.ID,
		Role:      string(accountData.Role),
	}, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, accountID int64) (auth.MeResponse, error) {
	accountData, err := a.AccountRepository.GetByID(ctx, accountID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	resp := auth.MeResponse{
		AccountID: accountData.ID,
		Email:     accountData.Email,
		FirstName: accountData.FirstName,
		LastName:  accountData.LastName,
		Role:      string(accountData.Role),
		Status:    string(accountData.Status),
	}

	// Admin accounts may have no employment profile.
	profileData, err := a.ProfileRepository.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, employee.ErrProfileNotFound) {
			return resp, nil
		}
		return auth.MeResponse{}, fmt.Errorf("failed to get profile for account %d: %w", accountID, err)
	}

	joined, err := a.ProfileRepository.GetByIDWithAccount(ctx, profileData.ID)
	if err != nil {
		return auth.MeResponse{}, fmt.Errorf("failed to get joined profile %d: %w", profileData.ID, err)
	}

	resp.EmployeeID = &joined.ID
	resp.EmployeeCode = &joined.EmployeeCode
	resp.Designation = joined.DesignationName
	resp.Department = joined.DepartmentName
	return resp, nil
}
