package mat

import (
	"math/cmplx"
)

// Gerschgorin returns lower and upper bounds on the eigenvalues of a
// Hermitian matrix.
//
// Theorem A3, Bounds for the eigenvalues of a matrix, Kenneth R. Garren.
func (m *COO) Gerschgorin() (float64, float64) {
	type circle struct {
		center complex64
		radius float32
	}
	circles := make([]circle, 0, m.rows)

	if len(m.Data) == 0 {
		return 0, 0
	}
	var curRow int = m.Data[0].row
	var curCenter complex64
	var curRadius float32
	for _, v := range m.Data {
		if v.row != curRow {
			circles = append(circles, circle{center: curCenter, radius: curRadius})

			curRow = v.row
			curCenter = 0
			curRadius = 0
		}

		if v.row == v.col {
			curCenter = v.v
		} else {
			curRadius += abs(v.v)
		}
	}
	// Last current row.
	circles = append(circles, circle{center: curCenter, radius: curRadius})

	lo := float64(real(circles[0].center) - circles[0].radius)
	hi := float64(real(circles[0].center) + circles[0].radius)
	for _, c := range circles[1:] {
		if v := float64(real(c.center) - c.radius); v < lo {
			lo = v
		}
		if v := float64(real(c.center) + c.radius); v > hi {
			hi = v
		}
	}
	// Rows with no entries contribute the zero circle.
	if len(circles) < m.rows {
		lo = min(lo, 0)
		hi = max(hi, 0)
	}
	return lo, hi
}

func abs(c complex64) float32 {
	return float32(cmplx.Abs(complex128(c)))
}
