package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pizza-shop/config"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims holds the typed JWT payload. The subject is the username;
// TokenType discriminates access from refresh tokens.
type TokenClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

func GenerateAccessToken(username string) (string, error) {
	return generateToken(username, TokenTypeAccess, config.AppConfig.AccessTokenTTL)
}

func GenerateRefreshToken(username string) (string, error) {
	return generateToken(username, TokenTypeRefresh, config.AppConfig.RefreshTokenTTL)
}

func generateToken(username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseToken verifies the signature and expiry of a token of either type.
func ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
