package dto

import (
	"time"

	"prediksiku_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================

type UserDTO struct {
	ID          uint      `json:"id_user"`
	NamaLengkap string    `json:"nama_lengkap"`
	NIS         string    `json:"nis"`
	Kelas       string    `json:"kelas"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:          m.ID,
		NamaLengkap: m.NamaLengkap,
		NIS:         m.NIS,
		Kelas:       m.Kelas,
		Email:       m.Email,
		CreatedAt:   m.CreatedAt,
	}
}
