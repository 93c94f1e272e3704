package helpers

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validasi Email (regex simple)
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidateRegisterInput(namaLengkap, nis, kelas, email, password string) error {
	if strings.TrimSpace(namaLengkap) == "" || strings.TrimSpace(nis) == "" ||
		strings.TrimSpace(kelas) == "" || strings.TrimSpace(email) == "" || password == "" {
		return errors.New("Mohon isi semua field")
	}
	if !isValidEmail(email) {
		return errors.New("Format email tidak valid")
	}
	if len(password) < 8 {
		return errors.New("Password minimal 8 karakter")
	}
	return nil
}

func ValidateLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return errors.New("Email dan password wajib diisi")
	}
	if !isValidEmail(email) {
		return errors.New("Format email tidak valid")
	}
	return nil
}

/* ====================== PASSWORD ====================== */

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
