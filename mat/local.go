package mat

import (
	"fmt"
	"math"

	"github.com/fumin/tensor"
)

var (
	PauliX = [][]complex64{
		{0, 1},
		{1, 0},
	}
	PauliY = [][]complex64{
		{0, -1i},
		{1i, 0},
	}
	PauliZ = [][]complex64{
		{1, 0},
		{0, -1},
	}
)

// Destroy returns the bosonic annihilation operator truncated to d levels.
func Destroy(d int) [][]complex64 {
	a := zeros(d)
	for n := 1; n < d; n++ {
		a[n-1][n] = complex(float32(math.Sqrt(float64(n))), 0)
	}
	return a
}

// Create returns the bosonic creation operator truncated to d levels.
func Create(d int) [][]complex64 {
	return Adjoint(Destroy(d))
}

// Number returns the occupation number operator diag(0, 1, ..., d-1).
func Number(d int) [][]complex64 {
	n := zeros(d)
	for i := 0; i < d; i++ {
		n[i][i] = complex(float32(i), 0)
	}
	return n
}

// SpinJ returns the angular momentum operator of spin length j along the
// given axis ('x', 'y' or 'z'), on the (2j+1)-dimensional space whose basis
// runs from m = j down to m = -j.
func SpinJ(j float64, axis byte) [][]complex64 {
	d := int(math.Round(2*j)) + 1

	// jp is the raising operator J+.
	jp := zeros(d)
	for i := 0; i < d-1; i++ {
		m := j - float64(i+1)
		jp[i][i+1] = complex(float32(math.Sqrt(j*(j+1)-m*(m+1))), 0)
	}

	switch axis {
	case 'z':
		jz := zeros(d)
		for i := 0; i < d; i++ {
			jz[i][i] = complex(float32(j-float64(i)), 0)
		}
		return jz
	case 'x':
		// Jx = (J+ + J-)/2.
		s := M(jp)
		s.Add(1, M(Adjoint(jp)))
		return Scaled(0.5, s.Dense())
	case 'y':
		// Jy = (J+ - J-)/2i.
		s := M(jp)
		s.Add(-1, M(Adjoint(jp)))
		return Scaled(-0.5i, s.Dense())
	default:
		panic(fmt.Sprintf("%q", axis))
	}
}

// Scaled returns c*x.
func Scaled(c complex64, x [][]complex64) [][]complex64 {
	return tensor.T2(x).Mul(c).ToSlice2()
}

// Adjoint returns the conjugate transpose of x.
func Adjoint(x [][]complex64) [][]complex64 {
	return tensor.T2(x).H().ToSlice2()
}

func zeros(d int) [][]complex64 {
	z := make([][]complex64, d)
	for i := range z {
		z[i] = make([]complex64, d)
	}
	return z
}
