package scoring

// Input adalah satu submission nilai. Range terdokumentasi:
// presensi 0–100, UTS/UAS 0–40, tugas 0–10, jam belajar 0–24.
// Validasi range dilakukan pemanggil sebelum Compute.
type Input struct {
	Presensi   float64 `json:"presensi"`
	NilaiUTS   float64 `json:"nilai_uts"`
	NilaiUAS   float64 `json:"nilai_uas"`
	NilaiTugas float64 `json:"nilai_tugas"`
	JamBelajar float64 `json:"jam_belajar"`
}

// HasNoScores: UTS, UAS, dan tugas semuanya nol dianggap "belum isi data".
// Guard ini ditegakkan di controller, bukan di pipeline.
func (in Input) HasNoScores() bool {
	return in.NilaiUTS == 0 && in.NilaiUAS == 0 && in.NilaiTugas == 0
}

// Result adalah hasil prediksi: skor final [0,100] dan grade huruf.
type Result struct {
	NilaiAkhir float64 `json:"nilai_akhir"`
	Grade      string  `json:"grade"`
}

// Pipeline menggabungkan artefak model dengan post-processing
// (clamp + bucketing). Immutable setelah dibuat, aman dipakai konkuren.
type Pipeline struct {
	art *Artifact
}

func NewPipeline(art *Artifact) *Pipeline {
	return &Pipeline{art: art}
}

func (p *Pipeline) ModelVersion() string   { return p.art.ModelVersion }
func (p *Pipeline) FeatureOrder() []string { return append([]string(nil), p.art.FeatureOrder...) }

// Compute menjalankan pipeline penuh: susun vektor fitur sesuai urutan
// artefak, ekspansi polinomial, prediksi linear, clamp ke [0,100], grade.
// Murni: tanpa side effect, deterministik terhadap input.
func (p *Pipeline) Compute(in Input) (Result, error) {
	// Urutan ini mengikuti feature_order artefak:
	// presensi, nilai_uts, nilai_uas, jam_belajar, nilai_tugas.
	// Urutan SALAH = prediksi salah; model di-fit pada urutan ini.
	vector := []float64{in.Presensi, in.NilaiUTS, in.NilaiUAS, in.JamBelajar, in.NilaiTugas}

	expanded := Expand(vector, p.art.Degree, p.art.IncludeBias)
	raw, err := p.art.Predict(expanded)
	if err != nil {
		return Result{}, err
	}

	final := clamp(raw, 0, 100)
	return Result{
		NilaiAkhir: final,
		Grade:      GradeFor(final),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GradeFor membucket skor final ke grade huruf. Threshold tetap,
// dievaluasi dari tinggi ke rendah.
func GradeFor(final float64) string {
	switch {
	case final >= 90:
		return "A"
	case final >= 80:
		return "B"
	case final >= 70:
		return "C"
	case final >= 60:
		return "D"
	default:
		return "E"
	}
}
