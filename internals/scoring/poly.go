package scoring

// ExpandedDim menghitung dimensi hasil ekspansi polinomial:
// jumlah kombinasi-dengan-pengulangan C(n+d-1, d) untuk d = 1..degree,
// plus satu kolom bias bila diminta.
func ExpandedDim(nFeatures, degree int, includeBias bool) int {
	dim := 0
	if includeBias {
		dim = 1
	}
	for d := 1; d <= degree; d++ {
		dim += combWithRep(nFeatures, d)
	}
	return dim
}

func combWithRep(n, k int) int {
	// C(n+k-1, k)
	num, den := 1, 1
	for i := 0; i < k; i++ {
		num *= n + i
		den *= i + 1
	}
	return num / den
}

// Expand menerapkan ekspansi fitur polinomial dengan urutan term yang sama
// seperti transformer saat training: untuk tiap derajat 1..degree, semua
// monomial dalam urutan leksikografis indeks tidak-menurun
// (deg 2 atas [a,b]: [1, a, b, a², ab, b²]).
func Expand(x []float64, degree int, includeBias bool) []float64 {
	out := make([]float64, 0, ExpandedDim(len(x), degree, includeBias))
	if includeBias {
		out = append(out, 1)
	}

	// prev menyimpan term derajat d-1 beserta indeks fitur terakhirnya,
	// supaya derajat berikutnya bisa dibangun tanpa duplikat.
	type term struct {
		val  float64
		last int
	}
	prev := make([]term, 0, len(x))
	for i, v := range x {
		prev = append(prev, term{val: v, last: i})
		out = append(out, v)
	}

	for d := 2; d <= degree; d++ {
		next := make([]term, 0, combWithRep(len(x), d))
		for _, t := range prev {
			for j := t.last; j < len(x); j++ {
				nt := term{val: t.val * x[j], last: j}
				next = append(next, nt)
				out = append(out, nt.val)
			}
		}
		prev = next
	}
	return out
}
