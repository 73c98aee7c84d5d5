package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(42, "zhangsan", "student")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "zhangsan", claims.Username)
	assert.Equal(t, "student", claims.Role)

	// 有效期为24小时
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, TokenLifetime.Seconds(), remaining.Seconds(), 60)
}

func TestExtractClaimsRejectsTampered(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(1, "admin", "admin")
	require.NoError(t, err)

	_, err = svc.ExtractClaims(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ExtractClaims("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractClaimsRejectsWrongKey(t *testing.T) {
	other := NewJWTService(newTestConfig())
	claims := &JWTClaims{
		UserID:   1,
		Username: "admin",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = other.ExtractClaims(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractClaimsRejectsExpired(t *testing.T) {
	cfg := newTestConfig()
	svc := NewJWTService(cfg)

	claims := &JWTClaims{
		UserID:   7,
		Username: "lisi",
		Role:     "teacher",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecretKey))
	require.NoError(t, err)

	_, err = svc.ExtractClaims(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
