package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrMissingSubject = errors.New("token has no subject")
)

// StaffClaims are the claims issued by the hosted auth provider for back-office staff
type StaffClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// StaffID returns the authenticated staff member's identity
func (c *StaffClaims) StaffID() string {
	return c.Subject
}

type TokenManager interface {
	// GenerateAccessToken signs a token the same way the auth provider does. Used by dev tooling and tests.
	GenerateAccessToken(staffID, email string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*StaffClaims, error)
}

type tokenManager struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenManager builds a manager for HS256 tokens. Empty issuer or audience disables that check.
func NewTokenManager(secret, issuer, audience string) TokenManager {
	return &tokenManager{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

func (m *tokenManager) GenerateAccessToken(staffID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := StaffClaims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staffID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	if m.issuer != "" {
		claims.Issuer = m.issuer
	}
	if m.audience != "" {
		claims.Audience = jwt.ClaimStrings{m.audience}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*StaffClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if m.audience != "" {
		opts = append(opts, jwt.WithAudience(m.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &StaffClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, opts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*StaffClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}
