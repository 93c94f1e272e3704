package service

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authHelper "prediksiku_backend/internals/features/users/auth/helper"
	authRepo "prediksiku_backend/internals/features/users/auth/repository"
	helper "prediksiku_backend/internals/helpers"
)

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	// Ambil user_id dari Locals dengan aman
	userID, ok := c.Locals("user_id").(uint)
	if !ok || userID == 0 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if len(input.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Password minimal 8 karakter")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	// Cek password lama
	if err := authHelper.CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	// Hash password baru
	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}

	if err := authRepo.UpdateUserPassword(db, userID, newHash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	// Ganti password mencabut semua sesi refresh yang masih hidup.
	if err := authRepo.DeleteRefreshTokensByUser(db, userID); err != nil {
		log.Printf("[WARN] Failed to revoke sessions for user %d: %v", userID, err)
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
