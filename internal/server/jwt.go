package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService issues and validates the admin bearer tokens. There are no
// user accounts: a token is minted from the shared secret via the CLI and
// proves admin access to the contact message listing.
type JWTService struct {
	secret     []byte
	expiration time.Duration
}

// NewJWTService creates a JWT service signing with the given secret.
func NewJWTService(secret string, expiration time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret must not be empty")
	}
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &JWTService{secret: []byte(secret), expiration: expiration}, nil
}

// GenerateToken mints a signed admin token.
func (s *JWTService) GenerateToken() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks the signature, expiry, and subject of a token.
// It implements the middleware.TokenValidator interface.
func (s *JWTService) ValidateToken(tokenString string) error {
	if tokenString == "" {
		return fmt.Errorf("token string is empty")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	if claims.Subject != "admin" {
		return fmt.Errorf("unexpected token subject")
	}
	return nil
}
