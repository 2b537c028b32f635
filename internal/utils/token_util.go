package utils

import (
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims carries the authenticated identity inside the JWT.
type TokenClaims struct {
	// Claim holds the identity payload (id, firstName, emailId).
	Claim interface{} `json:"claim"`

	jwt.RegisteredClaims
}

// GenerateJWTToken signs an HS256 token carrying the identity claim. The jti
// is a fresh UUID; it doubles as the session ID recorded in the session
// cache. Returns the token and its session ID.
func GenerateJWTToken(secret []byte, claim interface{}, expireOffsetHour int64) (string, string, error) {
	sessionID, err := uuid.NewV4()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := time.Now()
	claims := TokenClaims{
		Claim: claim,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireOffsetHour) * time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, sessionID.String(), nil
}

// ValidateToken parses and verifies an HS256 token, returning its claims.
func ValidateToken(secret []byte, token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("token claim is not valid")
	}
	return claims, nil
}
