package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const tokenLifetime = 24 * time.Hour

// Claims carries the authenticated user's identity and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64          `json:"user_id"`
	Role   models.UserRole `json:"role"`
}

// GenerateToken issues an HS256 bearer token for the user.
func GenerateToken(userID uint64, role models.UserRole, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken validates a bearer token and returns its claims.
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
