package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "prediksiku_backend/internals/features/users/auth/repository"
)

// StartRefreshTokenCleanupScheduler menghapus refresh token kedaluwarsa
// secara berkala supaya tabel tidak membengkak.
func StartRefreshTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(6 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			n, err := authRepo.CleanupExpiredRefreshTokens(db)
			if err != nil {
				log.Printf("[WARN] refresh token cleanup: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("[INFO] refresh token cleanup: %d baris dihapus", n)
			}
		}
	}()
}
