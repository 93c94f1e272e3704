package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArtifactEmbedded(t *testing.T) {
	art, err := LoadArtifact()
	require.NoError(t, err)

	assert.Equal(t, "final_grade_v1", art.ModelVersion)
	assert.Equal(t, []string{"presensi", "nilai_uts", "nilai_uas", "jam_belajar", "nilai_tugas"}, art.FeatureOrder)
	assert.Equal(t, 2, art.Degree)
	assert.True(t, art.IncludeBias)
	assert.Len(t, art.Coefficients, ExpandedDim(len(art.FeatureOrder), art.Degree, art.IncludeBias))
}

func TestParseArtifactInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"json rusak", `{"model_version":`},
		{"tanpa versi", `{"feature_order":["a"],"degree":1,"include_bias":true,"intercept":0,"coefficients":[0,0]}`},
		{"feature_order kosong", `{"model_version":"v1","feature_order":[],"degree":1,"include_bias":true,"intercept":0,"coefficients":[0]}`},
		{"degree nol", `{"model_version":"v1","feature_order":["a"],"degree":0,"include_bias":true,"intercept":0,"coefficients":[0]}`},
		{"koefisien kurang", `{"model_version":"v1","feature_order":["a","b"],"degree":2,"include_bias":true,"intercept":0,"coefficients":[1,2,3]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			art, err := ParseArtifact([]byte(tc.raw))
			assert.Nil(t, art)
			assert.ErrorIs(t, err, ErrModelUnavailable)
		})
	}
}

func TestPredictDimensionMismatch(t *testing.T) {
	art, err := ParseArtifact([]byte(`{"model_version":"v1","feature_order":["a"],"degree":1,"include_bias":true,"intercept":0,"coefficients":[0.5,2]}`))
	require.NoError(t, err)

	_, err = art.Predict([]float64{1, 2, 3})
	assert.Error(t, err)
}

func TestPredictLinear(t *testing.T) {
	// y = 10 + 0.5*1 + 2*x
	art, err := ParseArtifact([]byte(`{"model_version":"v1","feature_order":["x"],"degree":1,"include_bias":true,"intercept":10,"coefficients":[0.5,2]}`))
	require.NoError(t, err)

	got, err := art.Predict([]float64{1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 16.5, got, 1e-9)
}
