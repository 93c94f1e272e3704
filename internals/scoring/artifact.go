// Package scoring membungkus artefak regresi polinomial hasil training
// offline: load sekali saat startup, transform + predict untuk setiap
// submission, lalu clamp dan bucket ke grade huruf.
package scoring

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrModelUnavailable: artefak model tidak bisa dimuat. Fatal saat startup —
// tanpa model tidak ada pipeline yang bisa jalan.
var ErrModelUnavailable = errors.New("scoring: model artifact unavailable")

//go:embed artifacts/final_grade_v1.json
var embeddedArtifact []byte

// Artifact adalah kontrak artefak model. Urutan feature_order adalah bagian
// dari kontrak: harus sama persis dengan urutan saat model di-fit.
type Artifact struct {
	ModelVersion string    `json:"model_version"`
	FeatureOrder []string  `json:"feature_order"`
	Degree       int       `json:"degree"`
	IncludeBias  bool      `json:"include_bias"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// LoadArtifact memuat artefak default yang di-embed di binary.
func LoadArtifact() (*Artifact, error) {
	return ParseArtifact(embeddedArtifact)
}

// ParseArtifact mem-parse dan memvalidasi artefak dari JSON mentah.
func ParseArtifact(raw []byte) (*Artifact, error) {
	var art Artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if err := art.validate(); err != nil {
		return nil, err
	}
	return &art, nil
}

func (a *Artifact) validate() error {
	if a.ModelVersion == "" {
		return fmt.Errorf("%w: model_version kosong", ErrModelUnavailable)
	}
	if len(a.FeatureOrder) == 0 {
		return fmt.Errorf("%w: feature_order kosong", ErrModelUnavailable)
	}
	if a.Degree < 1 {
		return fmt.Errorf("%w: degree %d tidak valid", ErrModelUnavailable, a.Degree)
	}
	want := ExpandedDim(len(a.FeatureOrder), a.Degree, a.IncludeBias)
	if len(a.Coefficients) != want {
		return fmt.Errorf("%w: jumlah koefisien %d, seharusnya %d untuk %d fitur degree %d",
			ErrModelUnavailable, len(a.Coefficients), want, len(a.FeatureOrder), a.Degree)
	}
	return nil
}

// Predict menghitung skor mentah dari vektor fitur yang SUDAH diekspansi.
func (a *Artifact) Predict(expanded []float64) (float64, error) {
	if len(expanded) != len(a.Coefficients) {
		return 0, fmt.Errorf("scoring: dimensi fitur %d tidak cocok dengan koefisien %d",
			len(expanded), len(a.Coefficients))
	}
	sum := a.Intercept
	for i, v := range expanded {
		sum += a.Coefficients[i] * v
	}
	return sum, nil
}
