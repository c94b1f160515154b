package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza-shop/models"
	"pizza-shop/utils"
)

func signupReq() models.SignupRequest {
	return models.SignupRequest{
		Username: "testuser",
		Email:    "testuser@test.com",
		Password: "test",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo)

		user, err := svc.Register(ctx, signupReq())
		require.NoError(t, err)

		assert.Equal(t, "testuser", user.Username)
		assert.Equal(t, "testuser@test.com", user.Email)
		assert.Equal(t, models.RoleCustomer, user.Role)
		assert.NotZero(t, user.ID)

		stored, err := repo.FindByEmail(ctx, "testuser@test.com")
		require.NoError(t, err)
		assert.NotEqual(t, "test", stored.Password)

		ok, err := utils.VerifyPassword(stored.Password, "test")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo)

		_, err := svc.Register(ctx, signupReq())
		require.NoError(t, err)

		req := signupReq()
		req.Email = "other@test.com"
		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, models.ErrDuplicateIdentity)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAuthService(repo)

		_, err := svc.Register(ctx, signupReq())
		require.NoError(t, err)

		req := signupReq()
		req.Username = "otheruser"
		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, models.ErrDuplicateIdentity)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		for _, req := range []models.SignupRequest{
			{Email: "a@test.com", Password: "x"},
			{Username: "a", Password: "x"},
			{Username: "a", Email: "a@test.com"},
		} {
			_, err := svc.Register(ctx, req)
			assert.ErrorIs(t, err, models.ErrValidation)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *AuthService {
		t.Helper()
		svc := NewAuthService(newFakeUserRepo())
		_, err := svc.Register(ctx, signupReq())
		require.NoError(t, err)
		return svc
	}

	t.Run("issues tokens that resolve to the username", func(t *testing.T) {
		svc := setup(t)

		tokens, err := svc.Login(ctx, models.LoginRequest{Email: "testuser@test.com", Password: "test"})
		require.NoError(t, err)
		require.NotEmpty(t, tokens.AccessToken)
		require.NotEmpty(t, tokens.RefreshToken)

		username, err := svc.ResolveIdentity(tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "testuser", username)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.Login(ctx, models.LoginRequest{Email: "testuser@test.com", Password: "wrong"})
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.Login(ctx, models.LoginRequest{Email: "nobody@test.com", Password: "test"})
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("store failure is not masked as invalid credentials", func(t *testing.T) {
		errStoreDown := errors.New("connection refused")
		svc := NewAuthService(&unavailableUserRepo{fakeUserRepo: newFakeUserRepo(), err: errStoreDown})

		_, err := svc.Login(ctx, models.LoginRequest{Email: "testuser@test.com", Password: "test"})
		require.Error(t, err)
		assert.ErrorIs(t, err, errStoreDown)
		assert.NotErrorIs(t, err, models.ErrInvalidCredentials)
	})
}

// unavailableUserRepo simulates a credential store outage on lookups.
type unavailableUserRepo struct {
	*fakeUserRepo
	err error
}

func (r *unavailableUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, r.err
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	svc := NewAuthService(newFakeUserRepo())
	_, err := svc.Register(ctx, signupReq())
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, models.LoginRequest{Email: "testuser@test.com", Password: "test"})
	require.NoError(t, err)

	t.Run("rejects access token", func(t *testing.T) {
		_, err := svc.Refresh(tokens.AccessToken)
		assert.ErrorIs(t, err, models.ErrWrongTokenType)
	})

	t.Run("issues new access token from refresh token", func(t *testing.T) {
		resp, err := svc.Refresh(tokens.RefreshToken)
		require.NoError(t, err)

		username, err := svc.ResolveIdentity(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "testuser", username)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		_, err := svc.Refresh("not-a-token")
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	ctx := context.Background()

	svc := NewAuthService(newFakeUserRepo())
	_, err := svc.Register(ctx, signupReq())
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, models.LoginRequest{Email: "testuser@test.com", Password: "test"})
	require.NoError(t, err)

	t.Run("rejects refresh token on protected calls", func(t *testing.T) {
		_, err := svc.ResolveIdentity(tokens.RefreshToken)
		assert.ErrorIs(t, err, models.ErrUnauthenticated)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ResolveIdentity("garbage")
		assert.ErrorIs(t, err, models.ErrUnauthenticated)
	})
}
