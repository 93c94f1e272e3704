package model

import "time"

// RefreshTokenModel menyimpan refresh token (hash HMAC, bukan plaintext).
type RefreshTokenModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Token     []byte    `gorm:"column:token;type:bytea;not null;uniqueIndex" json:"-"`
	UserAgent *string   `gorm:"column:user_agent;size:400" json:"user_agent,omitempty"`
	IP        *string   `gorm:"column:ip;size:64" json:"ip,omitempty"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
