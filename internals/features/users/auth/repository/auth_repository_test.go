package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authModel "prediksiku_backend/internals/features/users/auth/model"
	userModel "prediksiku_backend/internals/features/users/user/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}, &authModel.RefreshTokenModel{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *userModel.UserModel {
	t.Helper()
	user := &userModel.UserModel{
		NamaLengkap: "Budi Santoso",
		NIS:         "12345",
		Kelas:       "XII IPA 1",
		Email:       email,
		Password:    "$2a$10$abcdefghijklmnopqrstuv",
		IsActive:    true,
	}
	require.NoError(t, CreateUser(db, user))
	require.NotZero(t, user.ID)
	return user
}

func TestCreateAndFindUserByEmail(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedUser(t, db, "budi@example.com")

	found, err := FindUserByEmail(db, "budi@example.com")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)
	assert.Equal(t, "Budi Santoso", found.NamaLengkap)

	_, err = FindUserByEmail(db, "tidak-ada@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "budi@example.com")

	dup := &userModel.UserModel{
		NamaLengkap: "Budi Kedua",
		NIS:         "67890",
		Kelas:       "XII IPA 2",
		Email:       "budi@example.com",
		Password:    "hash",
		IsActive:    true,
	}
	err := CreateUser(db, dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")
}

func TestIsEmailTaken(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "budi@example.com")

	taken, err := IsEmailTaken(db, "budi@example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = IsEmailTaken(db, "lain@example.com")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUpdateUserPassword(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "budi@example.com")

	require.NoError(t, UpdateUserPassword(db, user.ID, "hash-baru"))

	found, err := FindUserByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash-baru", found.Password)
}

func TestUpdateUserGoogleIDLinksAccount(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "budi@example.com")

	// Akun email/password lama belum punya identitas Google.
	_, err := FindUserByGoogleID(db, "google-sub-123")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, UpdateUserGoogleID(db, user.ID, "google-sub-123"))

	linked, err := FindUserByGoogleID(db, "google-sub-123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, linked.ID)
	assert.Equal(t, "budi@example.com", linked.Email)
}

func TestRefreshTokenLifecycle(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "budi@example.com")
	hash := []byte("hmac-hash-32-byte-dummy-value-01")

	rt := &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     hash,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	require.NoError(t, CreateRefreshToken(db, rt))

	found, err := FindRefreshTokenByHash(db, hash)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)

	require.NoError(t, DeleteRefreshTokenByHash(db, hash))
	_, err = FindRefreshTokenByHash(db, hash)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCleanupExpiredRefreshTokens(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "budi@example.com")
	now := time.Now().UTC()

	require.NoError(t, CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID: user.ID, Token: []byte("kedaluwarsa"), ExpiresAt: now.Add(-time.Minute),
	}))
	require.NoError(t, CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID: user.ID, Token: []byte("masih-hidup"), ExpiresAt: now.Add(time.Hour),
	}))

	removed, err := CleanupExpiredRefreshTokens(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	_, err = FindRefreshTokenByHash(db, []byte("masih-hidup"))
	assert.NoError(t, err)
}

func TestDeleteRefreshTokensByUser(t *testing.T) {
	db := setupTestDB(t)
	userA := seedUser(t, db, "a@example.com")
	userB := seedUser(t, db, "b@example.com")
	exp := time.Now().UTC().Add(time.Hour)

	require.NoError(t, CreateRefreshToken(db, &authModel.RefreshTokenModel{UserID: userA.ID, Token: []byte("token-a"), ExpiresAt: exp}))
	require.NoError(t, CreateRefreshToken(db, &authModel.RefreshTokenModel{UserID: userB.ID, Token: []byte("token-b"), ExpiresAt: exp}))

	require.NoError(t, DeleteRefreshTokensByUser(db, userA.ID))

	_, err := FindRefreshTokenByHash(db, []byte("token-a"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = FindRefreshTokenByHash(db, []byte("token-b"))
	assert.NoError(t, err)
}
