package dto

import "time"

// ============================
// Create Request DTO
// ============================

type PredictionRequest struct {
	Presensi   float64 `json:"presensi" validate:"gte=0,lte=100"`
	NilaiUTS   float64 `json:"nilai_uts" validate:"gte=0,lte=40"`
	NilaiUAS   float64 `json:"nilai_uas" validate:"gte=0,lte=40"`
	NilaiTugas float64 `json:"nilai_tugas" validate:"gte=0,lte=10"`
	JamBelajar float64 `json:"jam_belajar" validate:"gte=0,lte=24"`
}

// ============================
// Response DTO
// ============================

type PredictionResponse struct {
	ID         uint    `json:"id"`
	NilaiAkhir float64 `json:"nilai_akhir"`
	Grade      string  `json:"grade"`
}

// HistoryItemDTO adalah satu baris riwayat: hasil prediksi + input mentahnya.
type HistoryItemDTO struct {
	ID              uint      `json:"id"`
	TanggalPrediksi time.Time `json:"tanggal_prediksi"`
	Presensi        float64   `json:"presensi"`
	NilaiUTS        float64   `json:"nilai_uts"`
	NilaiUAS        float64   `json:"nilai_uas"`
	NilaiTugas      float64   `json:"nilai_tugas"`
	JamBelajar      float64   `json:"jam_belajar"`
	NilaiAkhir      float64   `json:"nilai_akhir"`
	Grade           string    `json:"grade"`
}
