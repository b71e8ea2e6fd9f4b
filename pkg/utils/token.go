package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RefreshClaims binds a refresh credential to a user ID
type RefreshClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateRefreshToken issues a signed refresh token for the user
func GenerateRefreshToken(secret string, userID int64, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseRefreshToken validates a refresh token and returns the bound user ID
func ParseRefreshToken(secret, tokenString string) (int64, error) {
	claims := &RefreshClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("parse refresh token: %w", err)
	}

	if !token.Valid {
		return 0, fmt.Errorf("invalid refresh token")
	}

	return claims.UserID, nil
}
