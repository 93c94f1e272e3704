package model

import "time"

// DataInputModel merepresentasikan tabel data_input: nilai mentah
// yang dikirim siswa pada satu submission.
type DataInputModel struct {
	ID         uint      `gorm:"column:id_input;primaryKey;autoIncrement" json:"id_input"`
	UserID     uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Presensi   float64   `gorm:"column:presensi;not null" json:"presensi"`
	NilaiUTS   float64   `gorm:"column:nilai_uts;not null" json:"nilai_uts"`
	NilaiUAS   float64   `gorm:"column:nilai_uas;not null" json:"nilai_uas"`
	NilaiTugas float64   `gorm:"column:nilai_tugas;not null" json:"nilai_tugas"`
	JamBelajar float64   `gorm:"column:jam_belajar;not null" json:"jam_belajar"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DataInputModel) TableName() string {
	return "data_input"
}
