// internals/features/predictions/repository/prediction_repository.go
package repository

import (
	"time"

	"gorm.io/gorm"

	"prediksiku_backend/internals/features/predictions/model"
)

// HistoryRow adalah hasil join hasil_prediksi × data_input untuk satu user.
type HistoryRow struct {
	ID              uint      `gorm:"column:id"`
	TanggalPrediksi time.Time `gorm:"column:tanggal_prediksi"`
	Presensi        float64   `gorm:"column:presensi"`
	NilaiUTS        float64   `gorm:"column:nilai_uts"`
	NilaiUAS        float64   `gorm:"column:nilai_uas"`
	NilaiTugas      float64   `gorm:"column:nilai_tugas"`
	JamBelajar      float64   `gorm:"column:jam_belajar"`
	NilaiAkhir      float64   `gorm:"column:nilai_prediksi"`
	Grade           string    `gorm:"column:grade"`
}

// SavePrediction menyimpan satu record logis yang terpecah di dua tabel:
// baris input mentah + baris hasil prediksi yang mereferensikannya.
// Keduanya satu transaksi — commit dua-duanya atau tidak sama sekali.
// Mengembalikan id baris hasil_prediksi.
func SavePrediction(db *gorm.DB, input *model.DataInputModel, hasil *model.HasilPrediksiModel) (uint, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(input).Error; err != nil {
			return err
		}
		hasil.UserID = input.UserID
		hasil.IDInput = input.ID
		return tx.Create(hasil).Error
	})
	if err != nil {
		return 0, err
	}
	return hasil.ID, nil
}

// FindHistoryByUser: join prediksi ke inputnya, terbaru dulu.
// User tanpa record mendapat slice kosong, bukan error.
func FindHistoryByUser(db *gorm.DB, userID uint, limit, offset int) ([]HistoryRow, error) {
	rows := make([]HistoryRow, 0)
	err := db.
		Table("hasil_prediksi AS h").
		Select("h.id, h.tanggal_prediksi, d.presensi, d.nilai_uts, d.nilai_uas, d.nilai_tugas, d.jam_belajar, h.nilai_prediksi, h.grade").
		Joins("JOIN data_input AS d ON h.id_input = d.id_input").
		Where("h.user_id = ?", userID).
		Order("h.tanggal_prediksi DESC, h.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func CountHistoryByUser(db *gorm.DB, userID uint) (int64, error) {
	var total int64
	err := db.Model(&model.HasilPrediksiModel{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}
