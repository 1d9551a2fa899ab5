package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager(t *testing.T) {
	m := NewTokenManager(testSecret, "https://auth.example.test", "authenticated")

	t.Run("Success", func(t *testing.T) {
		token, err := m.GenerateAccessToken("staff-1", "desk@example.test", time.Hour)
		require.NoError(t, err)

		claims, err := m.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "staff-1", claims.StaffID())
		assert.Equal(t, "desk@example.test", claims.Email)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := m.GenerateAccessToken("staff-1", "desk@example.test", -time.Minute)
		require.NoError(t, err)

		_, err = m.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("ffffffffffffffffffffffffffffffff", "https://auth.example.test", "authenticated")
		token, err := other.GenerateAccessToken("staff-1", "", time.Hour)
		require.NoError(t, err)

		_, err = m.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongAudience", func(t *testing.T) {
		other := NewTokenManager(testSecret, "https://auth.example.test", "anon")
		token, err := other.GenerateAccessToken("staff-1", "", time.Hour)
		require.NoError(t, err)

		_, err = m.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("MissingSubject", func(t *testing.T) {
		claims := StaffClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				Issuer:    "https://auth.example.test",
				Audience:  jwt.ClaimStrings{"authenticated"},
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = m.ValidateToken(token)
		assert.ErrorIs(t, err, ErrMissingSubject)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := m.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
