package service

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"prediksiku_backend/internals/configs"
	authHelper "prediksiku_backend/internals/features/users/auth/helper"
	authModel "prediksiku_backend/internals/features/users/auth/model"
	authRepo "prediksiku_backend/internals/features/users/auth/repository"
	userDTO "prediksiku_backend/internals/features/users/user/dto"
	userModel "prediksiku_backend/internals/features/users/user/model"
	helpers "prediksiku_backend/internals/helpers"
)

/* ==========================
   Small Helpers
========================== */

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

// isConnectionErr memisahkan "tidak ketemu" dari koneksi putus —
// koneksi putus dilaporkan sebagai 503 (boleh retry), bukan 401.
func isConnectionErr(err error) bool {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	return true
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	// DTO khusus register: field lain di UserModel (id_user, google_id,
	// is_active) tidak boleh bisa diisi dari body.
	var input struct {
		NamaLengkap string `json:"nama_lengkap"`
		NIS         string `json:"nis"`
		Kelas       string `json:"kelas"`
		Email       string `json:"email"`
		Password    string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Email = strings.TrimSpace(input.Email)

	if err := authHelper.ValidateRegisterInput(input.NamaLengkap, input.NIS, input.Kelas, input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user := userModel.UserModel{
		NamaLengkap: input.NamaLengkap,
		NIS:         input.NIS,
		Kelas:       input.Kelas,
		Email:       input.Email,
		Password:    input.Password,
		IsActive:    true,
	}
	if err := user.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Cek awal untuk pesan yang ramah; unik email tetap ditegakkan di DB.
	taken, err := authRepo.IsEmailTaken(db, user.Email)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusServiceUnavailable, "Koneksi database terputus. Silakan coba lagi.")
	}
	if taken {
		return helpers.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	// Hash password
	passwordHash, err := authHelper.HashPassword(user.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	user.Password = passwordHash

	if err := authRepo.CreateUser(db, &user); err != nil {
		if isDuplicateErr(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	// Akun yang baru dibuat langsung dapat sesi, tanpa lookup kedua
	return issueTokens(c, db, user, fiber.StatusCreated, "Registrasi berhasil")
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(input.Email)

	if err := authHelper.ValidateLoginInput(input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Minimal user
	userLight, err := authRepo.FindUserByEmailLight(db, input.Email)
	if err != nil {
		if isConnectionErr(err) {
			log.Printf("[ERROR] login lookup: %v", err)
			return helpers.JsonError(c, fiber.StatusServiceUnavailable, "Koneksi database terputus. Silakan coba lagi.")
		}
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !userLight.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := authHelper.CheckPasswordHash(userLight.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	// Full user
	userFull, err := authRepo.FindUserByID(db, userLight.ID)
	if err != nil {
		if isConnectionErr(err) {
			return helpers.JsonError(c, fiber.StatusServiceUnavailable, "Koneksi database terputus. Silakan coba lagi.")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return issueTokens(c, db, *userFull, fiber.StatusOK, "Login berhasil")
}

/* ==========================
   ISSUE TOKENS + Response
========================== */

func issueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel, status int, message string) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	accessToken, err := signClaims(BuildAccessClaims(user, now), jwtSecret)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := signClaims(BuildRefreshClaims(user.ID, now), refreshSecret)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// Simpan refresh token (hashed)
	tokenHash := ComputeRefreshHash(refreshToken, refreshSecret)
	ua, ip := c.Get("User-Agent"), c.IP()
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     tokenHash,
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(ua),
		IP:        strptr(ip),
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	body := fiber.Map{
		"user":         userDTO.ToUserDTO(user),
		"access_token": accessToken,
	}
	if status == fiber.StatusCreated {
		return helpers.JsonCreated(c, message, body)
	}
	return helpers.JsonOK(c, message, body)
}

/* ==========================
   REFRESH TOKEN (rotasi)
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		var input struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&input); err == nil {
			raw = strings.TrimSpace(input.RefreshToken)
		}
	}
	if raw == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(refreshSecret), nil
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	// Harus masih tercatat di DB (belum dicabut)
	tokenHash := ComputeRefreshHash(raw, refreshSecret)
	stored, err := authRepo.FindRefreshTokenByHash(db, tokenHash)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token sudah dicabut")
	}
	if stored.ExpiresAt.Before(nowUTC()) {
		_ = authRepo.DeleteRefreshTokenByHash(db, tokenHash)
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token kedaluwarsa")
	}

	user, err := authRepo.FindUserByID(db, stored.UserID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	// Rotasi: token lama dicabut, token baru diterbitkan
	_ = authRepo.DeleteRefreshTokenByHash(db, tokenHash)
	return issueTokens(c, db, *user, fiber.StatusOK, "Token diperbarui")
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	// Cari by google_id; belum ada -> tautkan akun lama by email, atau buat baru
	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		if existing, emailErr := authRepo.FindUserByEmail(db, email); emailErr == nil {
			// Akun email/password lama login pertama kali via Google.
			if err := authRepo.UpdateUserGoogleID(db, existing.ID, googleID); err != nil {
				return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to link Google account")
			}
			existing.GoogleID = &googleID
			user = existing
		} else {
			newUser := userModel.UserModel{
				NamaLengkap: name,
				NIS:         "-",
				Kelas:       "-",
				Email:       email,
				Password:    generateDummyPassword(),
				GoogleID:    &googleID,
				IsActive:    true,
			}
			if err := authRepo.CreateUser(db, &newUser); err != nil {
				if isDuplicateErr(err) {
					return helpers.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
				}
				return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
			}
			user = &newUser
		}
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueTokens(c, db, *user, fiber.StatusOK, "Login berhasil")
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	if raw := strings.TrimSpace(c.Cookies("refresh_token")); raw != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			if err := authRepo.DeleteRefreshTokenByHash(db, ComputeRefreshHash(raw, refreshSecret)); err != nil {
				log.Printf("[WARN] Failed to revoke refresh token: %v", err)
			}
		}
	}
	clearAuthCookies(c)
	return helpers.JsonOK(c, "Logout successful", nil)
}

/* ==========================
   UTIL
========================== */

func generateDummyPassword() string {
	hash, _ := authHelper.HashPassword("RandomDummyPassword123!")
	return hash
}
