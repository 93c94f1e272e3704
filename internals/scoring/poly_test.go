package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandedDim(t *testing.T) {
	tests := []struct {
		name        string
		nFeatures   int
		degree      int
		includeBias bool
		want        int
	}{
		{"dua fitur degree 2 dengan bias", 2, 2, true, 6},
		{"dua fitur degree 2 tanpa bias", 2, 2, false, 5},
		{"lima fitur degree 2 dengan bias", 5, 2, true, 21},
		{"lima fitur degree 1 dengan bias", 5, 1, true, 6},
		{"tiga fitur degree 3 dengan bias", 3, 3, true, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExpandedDim(tc.nFeatures, tc.degree, tc.includeBias))
		})
	}
}

func TestExpandOrdering(t *testing.T) {
	a, b := 3.0, 5.0

	got := Expand([]float64{a, b}, 2, true)

	// [1, a, b, a², ab, b²]
	want := []float64{1, a, b, a * a, a * b, b * b}
	assert.Equal(t, want, got)
}

func TestExpandWithoutBias(t *testing.T) {
	got := Expand([]float64{2, 4}, 2, false)
	assert.Equal(t, []float64{2, 4, 4, 8, 16}, got)
}

func TestExpandDegreeThree(t *testing.T) {
	a, b := 2.0, 3.0

	got := Expand([]float64{a, b}, 3, true)

	// [1, a, b, a², ab, b², a³, a²b, ab², b³]
	want := []float64{1, a, b, a * a, a * b, b * b, a * a * a, a * a * b, a * b * b, b * b * b}
	assert.Equal(t, want, got)
}

func TestExpandMatchesExpandedDim(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	got := Expand(x, 2, true)
	assert.Len(t, got, ExpandedDim(len(x), 2, true))
}
