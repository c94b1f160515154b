package services

import (
	"context"
	"errors"
	"fmt"

	"pizza-shop/models"
	"pizza-shop/repositories"
	"pizza-shop/utils"
)

type AuthService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user with an argon2-hashed password. The plaintext is
// never persisted.
func (s *AuthService) Register(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", models.ErrValidation)
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateIdentity
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleCustomer,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues an access and a refresh token, both
// carrying the username as subject. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenPairResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		// Only an unknown email becomes InvalidCredentials; a store
		// failure surfaces as-is so it reaches the caller as a 500.
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, models.ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, err
	}

	refreshToken, err := utils.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &models.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. Access
// tokens are rejected with a distinguishable error.
func (s *AuthService) Refresh(refreshToken string) (*models.AccessTokenResponse, error) {
	claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return nil, models.ErrInvalidToken
	}

	if claims.TokenType != utils.TokenTypeRefresh {
		return nil, models.ErrWrongTokenType
	}

	accessToken, err := utils.GenerateAccessToken(claims.Subject)
	if err != nil {
		return nil, err
	}

	return &models.AccessTokenResponse{AccessToken: accessToken}, nil
}

// ResolveIdentity returns the username carried by a valid access token.
// Token validation is stateless: signature, expiry and type claim only.
func (s *AuthService) ResolveIdentity(accessToken string) (string, error) {
	claims, err := utils.ParseToken(accessToken)
	if err != nil {
		return "", models.ErrUnauthenticated
	}

	if claims.TokenType != utils.TokenTypeAccess {
		return "", models.ErrUnauthenticated
	}

	return claims.Subject, nil
}

// CurrentUser loads the full user record behind a resolved identity.
func (s *AuthService) CurrentUser(ctx context.Context, username string) (*models.User, error) {
	return s.users.FindByUsername(ctx, username)
}
