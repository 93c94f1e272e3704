package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "prediksiku_backend/internals/features/users/user/model"
)

func TestBuildAccessClaims(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	user := userModel.UserModel{
		ID:          12,
		NamaLengkap: "Budi Santoso",
		Email:       "budi@example.com",
	}

	claims := BuildAccessClaims(user, now)

	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, float64(12), claims["sub"])
	assert.Equal(t, float64(12), claims["id"])
	assert.Equal(t, "Budi Santoso", claims["nama_lengkap"])
	assert.Equal(t, "budi@example.com", claims["email"])
	assert.Equal(t, now.Unix(), claims["iat"])
	assert.Equal(t, now.Add(24*time.Hour).Unix(), claims["exp"])
}

func TestBuildRefreshClaims(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	claims := BuildRefreshClaims(12, now)

	assert.Equal(t, "refresh", claims["typ"])
	assert.Equal(t, float64(12), claims["sub"])
	assert.Equal(t, now.Add(7*24*time.Hour).Unix(), claims["exp"])
	assert.NotEmpty(t, claims["jti"])
}

func TestBuildRefreshClaimsUniquePerCall(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := BuildRefreshClaims(1, now)
	b := BuildRefreshClaims(1, now)
	assert.NotEqual(t, a["jti"], b["jti"])
}

func TestSignClaimsRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	signed, err := signClaims(BuildAccessClaims(userModel.UserModel{ID: 3, Email: "a@b.co"}, now), "secret-untuk-test")
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tok.Method)
		return []byte("secret-untuk-test"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, float64(3), claims["id"])
}

func TestSignClaimsWrongSecretRejected(t *testing.T) {
	signed, err := signClaims(BuildRefreshClaims(1, time.Now().UTC()), "secret-benar")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret-salah"), nil
	})
	assert.Error(t, err)
}

func TestComputeRefreshHash(t *testing.T) {
	h1 := ComputeRefreshHash("token-a", "secret")
	h2 := ComputeRefreshHash("token-a", "secret")
	h3 := ComputeRefreshHash("token-b", "secret")
	h4 := ComputeRefreshHash("token-a", "secret-lain")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.NotEqual(t, h1, h4)
	assert.Len(t, h1, 32) // SHA-256
}
