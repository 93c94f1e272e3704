package model

import (
	"time"

	"gorm.io/datatypes"
)

// HasilPrediksiModel merepresentasikan tabel hasil_prediksi.
// ModelInfo menyimpan versi artefak + urutan fitur yang dipakai saat
// prediksi, supaya kontrak urutan fitur terversi bersama datanya.
type HasilPrediksiModel struct {
	ID               uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID           uint           `gorm:"column:user_id;not null;index" json:"user_id"`
	IDInput          uint           `gorm:"column:id_input;not null" json:"id_input"`
	NilaiPrediksi    float64        `gorm:"column:nilai_prediksi;not null" json:"nilai_prediksi"`
	Grade            string         `gorm:"column:grade;size:2;not null" json:"grade"`
	ModelInfo        datatypes.JSON `gorm:"column:model_info" json:"model_info,omitempty"`
	TanggalPrediksi  time.Time      `gorm:"column:tanggal_prediksi;autoCreateTime" json:"tanggal_prediksi"`
}

func (HasilPrediksiModel) TableName() string {
	return "hasil_prediksi"
}
