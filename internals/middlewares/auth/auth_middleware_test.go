package auth

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"prediksiku_backend/internals/configs"
	userModel "prediksiku_backend/internals/features/users/user/model"
)

const testSecret = "secret-untuk-test-middleware"

func setupAuthMiddlewareApp(t *testing.T, active bool) (*fiber.App, uint) {
	t.Helper()
	configs.JWTSecret = testSecret
	t.Cleanup(func() { configs.JWTSecret = "" })

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}))

	user := userModel.UserModel{
		NamaLengkap: "Budi Santoso",
		NIS:         "12345",
		Kelas:       "XII IPA 1",
		Email:       "budi@example.com",
		Password:    "hash",
		IsActive:    active,
	}
	require.NoError(t, db.Create(&user).Error)

	app := fiber.New()
	app.Get("/protected", AuthMiddleware(db), func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(uint)
		return c.JSON(fiber.Map{"user_id": uid})
	})
	return app, user.ID
}

func signTestToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func accessClaims(userID uint, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "access",
		"id":  float64(userID),
		"sub": float64(userID),
		"exp": float64(exp.Unix()),
	}
}

func getWithToken(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app, userID := setupAuthMiddlewareApp(t, true)
	token := signTestToken(t, accessClaims(userID, time.Now().Add(time.Hour)), testSecret)

	assert.Equal(t, fiber.StatusOK, getWithToken(t, app, token))
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app, _ := setupAuthMiddlewareApp(t, true)

	assert.Equal(t, fiber.StatusUnauthorized, getWithToken(t, app, ""))
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app, userID := setupAuthMiddlewareApp(t, true)
	token := signTestToken(t, accessClaims(userID, time.Now().Add(-time.Hour)), testSecret)

	assert.Equal(t, fiber.StatusUnauthorized, getWithToken(t, app, token))
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	app, userID := setupAuthMiddlewareApp(t, true)
	token := signTestToken(t, accessClaims(userID, time.Now().Add(time.Hour)), "secret-lain")

	assert.Equal(t, fiber.StatusUnauthorized, getWithToken(t, app, token))
}

func TestAuthMiddlewareRefreshTokenRejected(t *testing.T) {
	app, userID := setupAuthMiddlewareApp(t, true)
	claims := accessClaims(userID, time.Now().Add(time.Hour))
	claims["typ"] = "refresh"
	token := signTestToken(t, claims, testSecret)

	assert.Equal(t, fiber.StatusUnauthorized, getWithToken(t, app, token))
}

func TestAuthMiddlewareUnknownUser(t *testing.T) {
	app, _ := setupAuthMiddlewareApp(t, true)
	token := signTestToken(t, accessClaims(9999, time.Now().Add(time.Hour)), testSecret)

	assert.Equal(t, fiber.StatusUnauthorized, getWithToken(t, app, token))
}

func TestAuthMiddlewareInactiveUser(t *testing.T) {
	app, userID := setupAuthMiddlewareApp(t, false)
	token := signTestToken(t, accessClaims(userID, time.Now().Add(time.Hour)), testSecret)

	assert.Equal(t, fiber.StatusForbidden, getWithToken(t, app, token))
}

func TestAuthMiddlewareCookieFallback(t *testing.T) {
	app, userID := setupAuthMiddlewareApp(t, true)
	token := signTestToken(t, accessClaims(userID, time.Now().Add(time.Hour)), testSecret)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
