package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims hasil verifikasi token
type TokenClaims struct {
	UserID int64
	Role   string
}

// GenerateToken membuat signed JWT dengan identity + role
func GenerateToken(userID int64, role string, cfg JWTConfig) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(time.Duration(cfg.ExpiryHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// VerifyToken memvalidasi signature + expiry dan mengembalikan claims
func VerifyToken(tokenStr string, cfg JWTConfig) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	// JSON numbers datang sebagai float64
	userIDVal, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing user_id claim")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("missing role claim")
	}

	return &TokenClaims{
		UserID: int64(userIDVal),
		Role:   role,
	}, nil
}
