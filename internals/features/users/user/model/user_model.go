package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel login_users di database
type UserModel struct {
	ID          uint      `gorm:"column:id_user;primaryKey;autoIncrement" json:"id_user"`
	NamaLengkap string    `gorm:"column:nama_lengkap;size:100;not null" json:"nama_lengkap" validate:"required,min=3,max=100"`
	NIS         string    `gorm:"column:nis;size:30;not null" json:"nis" validate:"required,min=3,max=30"`
	Kelas       string    `gorm:"column:kelas;size:30;not null" json:"kelas" validate:"required,max=30"`
	Email       string    `gorm:"column:email;size:255;unique;not null" json:"email" validate:"required,email"`
	Password    string    `gorm:"column:password;not null" json:"password,omitempty" validate:"required,min=8"`
	GoogleID    *string   `gorm:"column:google_id;size:255;unique" json:"google_id,omitempty"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "login_users"
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi format yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make(map[string]string)
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " wajib diisi."
			case "email":
				errorMessages[fieldErr.Field()] = "Format email tidak valid."
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus minimal " + fieldErr.Param() + " karakter."
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus kurang dari " + fieldErr.Param() + " karakter."
			default:
				errorMessages[fieldErr.Field()] = "Format tidak valid."
			}
		}
		return errors.New(formatErrorMessage(errorMessages))
	}
	return err
}

func formatErrorMessage(errors map[string]string) string {
	var msg string
	for field, errorMsg := range errors {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}
