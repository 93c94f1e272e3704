// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"gorm.io/gorm"

	authModel "prediksiku_backend/internals/features/users/auth/model"
	userModel "prediksiku_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByEmailLight hanya mengambil kolom yang dibutuhkan hot path login.
func FindUserByEmailLight(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Select("id_user", "password", "is_active").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uint) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id_user = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uint, newPassword string) error {
	return db.Model(&userModel.UserModel{}).Where("id_user = ?", userID).Update("password", newPassword).Error
}

// UpdateUserGoogleID menautkan akun lama ke identitas Google-nya.
func UpdateUserGoogleID(db *gorm.DB, userID uint, googleID string) error {
	return db.Model(&userModel.UserModel{}).Where("id_user = ?", userID).Update("google_id", googleID).Error
}

// IsEmailTaken — cek apakah email sudah terdaftar
func IsEmailTaken(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshTokenModel) error {
	return db.Create(token).Error
}

func FindRefreshTokenByHash(db *gorm.DB, tokenHash []byte) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.Where("token = ?", tokenHash).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func DeleteRefreshTokenByHash(db *gorm.DB, tokenHash []byte) error {
	return db.Where("token = ?", tokenHash).Delete(&authModel.RefreshTokenModel{}).Error
}

func DeleteRefreshTokensByUser(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&authModel.RefreshTokenModel{}).Error
}

func CleanupExpiredRefreshTokens(db *gorm.DB) (int64, error) {
	res := db.Where("expires_at <= ?", time.Now().UTC()).Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}
