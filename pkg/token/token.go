// pkg/token/token.go
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Type distinguishes access tokens from refresh tokens signed by the same code.
type Type string

const (
	TypeAccess  Type = "access"
	TypeRefresh Type = "refresh"
)

var (
	ErrEmptyToken       = errors.New("token string is empty")
	ErrEmptySecret      = errors.New("jwt secret key is empty")
	ErrExpired          = errors.New("token has expired")
	ErrNotValidYet      = errors.New("token is not yet valid")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrInvalid          = errors.New("token is invalid")
	ErrWrongType        = errors.New("token has wrong type")
)

// Claims defines the structure of the JWT claims the API issues.
// RegisteredClaims.ID carries a unique jti used for blacklisting.
type Claims struct {
	UserID    uint `json:"user_id"`
	TokenType Type `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a short-lived access token for userID.
func GenerateJWT(userID uint, secretKey string, expiryMinutes int, issuer string) (string, error) {
	signed, _, err := generate(userID, TypeAccess, secretKey, time.Duration(expiryMinutes)*time.Minute, issuer)
	return signed, err
}

// GenerateRefreshToken signs a refresh token and returns its claims so the
// caller can record the jti and expiry.
func GenerateRefreshToken(userID uint, secretKey string, expiryDays int, issuer string) (string, *Claims, error) {
	return generate(userID, TypeRefresh, secretKey, time.Duration(expiryDays)*24*time.Hour, issuer)
}

func generate(userID uint, typ Type, secretKey string, ttl time.Duration, issuer string) (string, *Claims, error) {
	if secretKey == "" {
		return "", nil, ErrEmptySecret
	}
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
	if err != nil {
		return "", nil, fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, claims, nil
}

// ValidateJWT parses, validates, and returns claims from a JWT string.
func ValidateJWT(tokenString string, secretKey string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}
	if secretKey == "" {
		return nil, ErrEmptySecret
	}

	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrNotValidYet
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		}
		return nil, fmt.Errorf("could not parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, ErrInvalid
	}
	if claims.UserID == 0 {
		return nil, errors.New("user_id claim is missing or zero")
	}
	if claims.ExpiresAt == nil {
		return nil, ErrExpired
	}

	return claims, nil
}

// ValidateTyped validates tokenString and checks it was issued as typ, so a
// refresh token cannot be replayed as an access token.
func ValidateTyped(tokenString, secretKey string, typ Type) (*Claims, error) {
	claims, err := ValidateJWT(tokenString, secretKey)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != typ {
		return nil, ErrWrongType
	}
	return claims, nil
}
